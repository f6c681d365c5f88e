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

// Package extrema folds observations into an extremal value together with
// every key attaining it.
package extrema

import (
	"golang.org/x/exp/constraints"
)

// Tracker keeps the best value seen so far and its tie-list.  A strictly
// better value resets the tie-list; an equal value appends to it.
type Tracker[K any, V constraints.Ordered] struct {
	better func(a, b V) bool
	value  V
	keys   []K
	set    bool
}

// NewMax creates a Tracker for the largest value.
func NewMax[K any, V constraints.Ordered]() *Tracker[K, V] {
	return &Tracker[K, V]{better: func(a, b V) bool { return a > b }}
}

// NewMin creates a Tracker for the smallest value.
func NewMin[K any, V constraints.Ordered]() *Tracker[K, V] {
	return &Tracker[K, V]{better: func(a, b V) bool { return a < b }}
}

// Observe folds a single keyed value into the tracker.
func (t *Tracker[K, V]) Observe(key K, value V) {
	switch {
	case !t.set || t.better(value, t.value):
		t.value = value
		t.keys = []K{key}
		t.set = true
	case value == t.value:
		t.keys = append(t.keys, key)
	}
}

// Result returns the extremal value and its keys in observation order.  ok
// is false when nothing has been observed.
func (t *Tracker[K, V]) Result() (value V, keys []K, ok bool) {
	return t.value, t.keys, t.set
}
