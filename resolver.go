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

// Resolver maps a point to a country label.
type Resolver interface {
	Resolve(p model.Point) string
}

// IndexResolver resolves points against an Index.  When several countries
// contain a point, as happens with overlapping or disputed geometries, the
// first in the index's enumeration order wins.  The winner is stable for a
// given build order and carries no geographic meaning.
type IndexResolver struct {
	idx *Index
}

var _ Resolver = (*IndexResolver)(nil)

// NewResolver creates a resolver over idx.
func NewResolver(idx *Index) *IndexResolver {
	return &IndexResolver{idx: idx}
}

// Resolve returns the country containing p, or model.Unknown when there is
// none or p is not a valid coordinate.
func (r *IndexResolver) Resolve(p model.Point) string {
	if !p.Valid() {
		return model.Unknown
	}

	matches := r.idx.Contains(p.Orb())
	if len(matches) == 0 {
		return model.Unknown
	}

	return matches[0]
}
