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

package model

// Unknown is the label of a point that no country geometry contains.
const Unknown = "unknown"

// VisitSequence holds one country label per run of consecutive points in the
// same country.  No two adjacent entries are equal.
type VisitSequence []string

// Contains reports whether label appears anywhere in the sequence.
func (s VisitSequence) Contains(label string) bool {
	for _, l := range s {
		if l == label {
			return true
		}
	}

	return false
}

// Distinct returns each label once, in order of first appearance.
func (s VisitSequence) Distinct() []string {
	seen := make(map[string]struct{}, len(s))
	distinct := make([]string, 0, len(s))

	for _, l := range s {
		if _, ok := seen[l]; ok {
			continue
		}

		seen[l] = struct{}{}
		distinct = append(distinct, l)
	}

	return distinct
}

// Compressed reports whether no two adjacent entries are equal.
func (s VisitSequence) Compressed() bool {
	for i := 1; i < len(s); i++ {
		if s[i] == s[i-1] {
			return false
		}
	}

	return true
}
