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
	"log/slog"
	"maps"
	"slices"

	"m4o.io/countries/internal/extrema"
	"m4o.io/countries/model"
)

// TrackVisits is the visit sequence of a named track.  Events, when set,
// is the event log the sequence was built with; Aggregate ignores it.
type TrackVisits struct {
	Name   string
	Visits model.VisitSequence
	Events []Event
}

// Extremum is an extremal statistic and every track attaining it.
type Extremum struct {
	Value  int
	Tracks []string
}

// AggregateResult holds the extrema of the itinerary statistics across a set
// of tracks.  The maxima cover every track.  The minima cover only complete
// tracks and are nil when there are none.
type AggregateResult struct {
	Tracks   int // tracks aggregated
	Complete int // tracks eligible for the minima

	MaxBorders Extremum
	MaxTotal   Extremum
	MaxUnique  Extremum

	MinBorders *Extremum
	MinTotal   *Extremum
	MinUnique  *Extremum
}

// metric selects one statistic from a summary.
type metric func(ItinerarySummary) int

var (
	borders metric = func(s ItinerarySummary) int { return s.Borders }
	total   metric = func(s ItinerarySummary) int { return s.Total }
	unique  metric = func(s ItinerarySummary) int { return s.Unique }

	metrics = []metric{borders, total, unique}
)

// Aggregate finds the tracks with the most and fewest borders, visits and
// unique countries.  Ties are kept in the order of tracks.  Only tracks
// satisfying the anchor predicate, DefaultAnchors unless configured
// otherwise, count towards the minima, so truncated recordings do not
// produce spuriously small journeys.
func Aggregate(tracks []TrackVisits, opts ...AggregateOption) (*AggregateResult, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	cfg := defaultAggregateConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	maxima := make([]*extrema.Tracker[string, int], len(metrics))
	minima := make([]*extrema.Tracker[string, int], len(metrics))

	for i := range metrics {
		maxima[i] = extrema.NewMax[string, int]()
		minima[i] = extrema.NewMin[string, int]()
	}

	result := &AggregateResult{Tracks: len(tracks)}

	for _, t := range tracks {
		summary := Summarize(t.Visits)
		complete := cfg.complete(t.Visits)

		if complete {
			result.Complete++
		}

		for i, m := range metrics {
			maxima[i].Observe(t.Name, m(summary))

			if complete {
				minima[i].Observe(t.Name, m(summary))
			}
		}
	}

	result.MaxBorders = *extremum(maxima[0], cfg.sortedTies)
	result.MaxTotal = *extremum(maxima[1], cfg.sortedTies)
	result.MaxUnique = *extremum(maxima[2], cfg.sortedTies)

	result.MinBorders = extremum(minima[0], cfg.sortedTies)
	result.MinTotal = extremum(minima[1], cfg.sortedTies)
	result.MinUnique = extremum(minima[2], cfg.sortedTies)

	slog.Debug("aggregated tracks", "tracks", result.Tracks, "complete", result.Complete)

	return result, nil
}

// AggregateMap aggregates tracks keyed by name, taking them in name order.
func AggregateMap(tracks map[string]model.VisitSequence, opts ...AggregateOption) (*AggregateResult, error) {
	names := slices.Sorted(maps.Keys(tracks))

	ordered := make([]TrackVisits, len(names))
	for i, name := range names {
		ordered[i] = TrackVisits{Name: name, Visits: tracks[name]}
	}

	return Aggregate(ordered, opts...)
}

func extremum(t *extrema.Tracker[string, int], sorted bool) *Extremum {
	value, names, ok := t.Result()
	if !ok {
		return nil
	}

	names = slices.Clone(names)
	if sorted {
		slices.Sort(names)
	}

	return &Extremum{Value: value, Tracks: names}
}
