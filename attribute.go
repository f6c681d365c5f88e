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

// Event records entry into a country at a run transition.
type Event struct {
	Total   int    // 1-based position of the visit in the sequence
	Unique  int    // countries seen so far, this one included
	Time    string // the Time label of the point that started the run
	Country string
	New     bool // first visit to Country on this track
}

// Attribution is the outcome of walking a track through a Resolver.
type Attribution struct {
	Visits model.VisitSequence
	Events []Event
}

// Summary summarizes the visit sequence.
func (a Attribution) Summary() ItinerarySummary {
	return Summarize(a.Visits)
}

// runs is the accumulator for run compression over resolved labels.
type runs struct {
	uniqueOnly bool

	last    string
	started bool
	seen    map[string]struct{}

	Attribution
}

func (r *runs) add(p model.Point, label string) {
	if r.started && label == r.last {
		return
	}

	r.started = true
	r.last = label

	_, visited := r.seen[label]
	if !visited {
		r.seen[label] = struct{}{}
	}

	r.Visits = append(r.Visits, label)

	if r.uniqueOnly && visited {
		return
	}

	r.Events = append(r.Events, Event{
		Total:   len(r.Visits),
		Unique:  len(r.seen),
		Time:    p.Time,
		Country: label,
		New:     !visited,
	})
}

// Attribute resolves each point of track in order and collapses consecutive
// points in the same country into a single visit.
func Attribute(track model.Track, r Resolver, opts ...AttributeOption) Attribution {
	return attribute(track, r, newAttributeOptions(opts))
}

func attribute(track model.Track, r Resolver, cfg attributeOptions) Attribution {
	acc := runs{
		uniqueOnly: cfg.uniqueOnly,
		seen:       make(map[string]struct{}),
		Attribution: Attribution{
			Visits: model.VisitSequence{},
			Events: []Event{},
		},
	}

	for _, p := range track.Points {
		label := r.Resolve(p)
		if cfg.skipUnknown && label == model.Unknown {
			continue
		}

		acc.add(p, label)
	}

	return acc.Attribution
}
