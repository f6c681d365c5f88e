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
	"context"
	"log/slog"

	"github.com/destel/rill"

	"m4o.io/countries/model"
)

// AttributeAll attributes tracks concurrently, using the number of CPUs set
// with WithNCpus.  The result is in the order of tracks regardless of the
// number of CPUs.  Each track keeps its event log.  r must be safe for concurrent use, as IndexResolver is.
func AttributeAll(ctx context.Context, r Resolver, tracks []model.Track, opts ...AttributeOption) ([]TrackVisits, error) {
	cfg := newAttributeOptions(opts)

	in := rill.FromSlice(tracks, nil)

	out := rill.OrderedMap(in, int(max(cfg.nCPU, 1)), func(t model.Track) (TrackVisits, error) {
		if err := ctx.Err(); err != nil {
			return TrackVisits{}, err
		}

		a := attribute(t, r, cfg)

		return TrackVisits{Name: t.Name, Visits: a.Visits, Events: a.Events}, nil
	})

	visits, err := rill.ToSlice(out)
	if err != nil {
		slog.Error("attributing tracks", "error", err)

		return nil, err
	}

	return visits, nil
}
