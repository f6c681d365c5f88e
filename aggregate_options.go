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

// Anchors are the two countries a track must visit to count as a complete
// journey, typically where it starts and where it ends.
type Anchors struct {
	Start string
	End   string
}

// DefaultAnchors is the start and finish of a Geraardsbergen to Meteora
// Transcontinental Race route.
var DefaultAnchors = Anchors{Start: "Belgium", End: "Greece"}

// Satisfied reports whether seq visits both anchors.
func (a Anchors) Satisfied(seq model.VisitSequence) bool {
	return seq.Contains(a.Start) && seq.Contains(a.End)
}

// aggregateOptions provides optional configuration parameters for Aggregate.
type aggregateOptions struct {
	complete   func(model.VisitSequence) bool // tracks eligible for minima
	sortedTies bool                           // sort tie-lists by track name
}

// AggregateOption configures how track statistics are aggregated.
type AggregateOption func(*aggregateOptions)

// WithAnchors restricts the minima to tracks visiting both start and end.
func WithAnchors(start, end string) AggregateOption {
	return func(o *aggregateOptions) {
		o.complete = Anchors{Start: start, End: end}.Satisfied
	}
}

// WithAnchorPredicate restricts the minima to tracks for which complete
// returns true.
func WithAnchorPredicate(complete func(model.VisitSequence) bool) AggregateOption {
	return func(o *aggregateOptions) {
		o.complete = complete
	}
}

// WithoutAnchors lets every track take part in the minima.
func WithoutAnchors() AggregateOption {
	return func(o *aggregateOptions) {
		o.complete = func(model.VisitSequence) bool { return true }
	}
}

// WithSortedTies sorts every tie-list by track name instead of leaving it in
// iteration order.
func WithSortedTies(sorted bool) AggregateOption {
	return func(o *aggregateOptions) {
		o.sortedTies = sorted
	}
}

// defaultAggregateConfig provides a default configuration for Aggregate.
var defaultAggregateConfig = aggregateOptions{
	complete: DefaultAnchors.Satisfied,
}
