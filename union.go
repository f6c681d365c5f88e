// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package countries

import (
	"m4o.io/countries/model"
)

// Union lists every country visited by any of tracks, each once, in order of
// first entry: tracks in order, and visits in order within a track.
func Union(tracks []TrackVisits) model.VisitSequence {
	all := make(model.VisitSequence, 0)
	seen := make(map[string]struct{})

	for _, t := range tracks {
		for _, label := range t.Visits {
			if _, ok := seen[label]; ok {
				continue
			}

			seen[label] = struct{}{}
			all = append(all, label)
		}
	}

	return all
}
