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

package countries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/countries"
	"m4o.io/countries/model"
)

func TestSummarize(t *testing.T) {
	test_cases := []struct {
		name     string
		visits   model.VisitSequence
		expected countries.ItinerarySummary
	}{
		{"nil", nil, countries.ItinerarySummary{}},
		{"empty", model.VisitSequence{}, countries.ItinerarySummary{}},
		{"single", model.VisitSequence{"France"}, countries.ItinerarySummary{Total: 1, Unique: 1, Borders: 0}},
		{"revisit", model.VisitSequence{"France", "Italy", "France"}, countries.ItinerarySummary{Total: 3, Unique: 2, Borders: 2}},
		{"unknown", model.VisitSequence{"France", model.Unknown}, countries.ItinerarySummary{Total: 2, Unique: 2, Borders: 1}},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, countries.Summarize(tc.visits))
		})
	}
}
