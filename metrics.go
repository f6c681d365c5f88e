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

// ItinerarySummary holds the statistics of a single visit sequence.
type ItinerarySummary struct {
	Total   int // visits, i.e. runs of points in one country
	Unique  int // distinct countries
	Borders int // crossings between consecutive visits
}

// Summarize computes the statistics of seq.  Borders is Total-1, clamped to
// zero for an empty sequence.
func Summarize(seq model.VisitSequence) ItinerarySummary {
	return ItinerarySummary{
		Total:   len(seq),
		Unique:  len(seq.Distinct()),
		Borders: max(len(seq)-1, 0),
	}
}
