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

// Package countries attributes GPS tracks to the countries they pass through
// and derives itinerary statistics from the result.
package countries

import (
	"errors"
	"log/slog"
	"slices"

	humanize "github.com/dustin/go-humanize"
	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"

	"m4o.io/countries/internal/prepared"
)

var errEmptyName = errors.New("empty country name")

// CountryGeometry is a named polygon or multi-polygon, as decoded from a
// geometry source.
type CountryGeometry struct {
	Name     string
	Geometry orb.Geometry
}

type entry struct {
	name     string
	geometry *prepared.Geometry
}

// partRef locates one polygon part of an indexed entry.
type partRef struct {
	entry int
	part  int
}

// Index answers point containment queries over a fixed set of country
// geometries.  It is immutable once built and safe for concurrent use.
type Index struct {
	entries  []entry
	tree     rtree.RTreeG[partRef]
	rejected []*InvalidGeometryError
}

// Build prepares geometries for containment queries.  Invalid geometries are
// logged and skipped; they can be retrieved with Rejected.  Build fails only
// when no geometry is usable.
//
// A repeated name replaces the geometry of the earlier entry but keeps its
// position in the enumeration order.  A rejected geometry never replaces a
// valid one.
func Build(geometries []CountryGeometry) (*Index, error) {
	idx := &Index{}
	positions := make(map[string]int, len(geometries))

	for _, cg := range geometries {
		g, err := prepare(cg)
		if err != nil {
			invalid := &InvalidGeometryError{Name: cg.Name, Err: err}
			slog.Warn("rejecting country geometry", "country", cg.Name, "error", err)
			idx.rejected = append(idx.rejected, invalid)

			continue
		}

		if i, ok := positions[cg.Name]; ok {
			idx.entries[i].geometry = g
		} else {
			positions[cg.Name] = len(idx.entries)
			idx.entries = append(idx.entries, entry{name: cg.Name, geometry: g})
		}
	}

	if len(idx.entries) == 0 {
		errs := []error{ErrNoGeometry}
		for _, r := range idx.rejected {
			errs = append(errs, r)
		}

		return nil, errors.Join(errs...)
	}

	for i, e := range idx.entries {
		for j, part := range e.geometry.Parts {
			idx.tree.Insert([2]float64(part.Bound.Min), [2]float64(part.Bound.Max), partRef{entry: i, part: j})
		}
	}

	slog.Debug("built country index",
		"countries", humanize.Comma(int64(len(idx.entries))),
		"parts", humanize.Comma(int64(idx.tree.Len())),
		"rejected", len(idx.rejected))

	return idx, nil
}

func prepare(cg CountryGeometry) (*prepared.Geometry, error) {
	if cg.Name == "" {
		return nil, errEmptyName
	}

	return prepared.New(cg.Geometry)
}

// Len returns the number of countries in the index.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Names returns the country names in enumeration order.
func (idx *Index) Names() []string {
	names := make([]string, len(idx.entries))
	for i, e := range idx.entries {
		names[i] = e.name
	}

	return names
}

// Rejected returns the geometries that were skipped while building.
func (idx *Index) Rejected() []*InvalidGeometryError {
	return idx.rejected
}

// Contains returns the names of every country containing pt, in enumeration
// order.  A point inside a hole is not contained.  A point on an edge counts
// as being on the ring it lies on.
func (idx *Index) Contains(pt orb.Point) []string {
	var matches []int

	p := [2]float64(pt)
	idx.tree.Search(p, p, func(_, _ [2]float64, ref partRef) bool {
		if idx.entries[ref.entry].geometry.Parts[ref.part].Contains(pt) {
			matches = append(matches, ref.entry)
		}

		return true
	})

	if len(matches) == 0 {
		return nil
	}

	slices.Sort(matches)
	matches = slices.Compact(matches)

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = idx.entries[m].name
	}

	return names
}
