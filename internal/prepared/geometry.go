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

// Package prepared holds polygons pre-processed for repeated containment tests.
package prepared

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const minDistinctVertices = 3

var (
	// ErrUnsupportedType is returned for geometries that are neither a
	// polygon nor a multi-polygon.
	ErrUnsupportedType = errors.New("geometry is not a polygon or multi-polygon")

	// ErrEmpty is returned for a polygon without rings or a multi-polygon
	// without polygons.
	ErrEmpty = errors.New("geometry has no rings")

	// ErrDegenerateRing is returned for a ring with fewer than three distinct
	// vertices.
	ErrDegenerateRing = errors.New("degenerate ring")
)

// Part is one polygon of a prepared geometry, outer ring first followed by
// its holes.
type Part struct {
	Bound   orb.Bound
	polygon orb.Polygon
}

// Contains checks if the part contains the point.  Points inside a hole are
// not contained.
func (p Part) Contains(pt orb.Point) bool {
	return p.Bound.Contains(pt) && planar.PolygonContains(p.polygon, pt)
}

// Geometry is a polygon or multi-polygon split into parts, each with its
// bounding box computed up front.
type Geometry struct {
	Parts []Part
}

// New validates g and prepares it.
func New(g orb.Geometry) (*Geometry, error) {
	var polygons []orb.Polygon

	switch g := g.(type) {
	case orb.Polygon:
		polygons = []orb.Polygon{g}
	case orb.MultiPolygon:
		polygons = g
	case nil:
		return nil, ErrUnsupportedType
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, g.GeoJSONType())
	}

	if len(polygons) == 0 {
		return nil, ErrEmpty
	}

	prepared := &Geometry{Parts: make([]Part, 0, len(polygons))}

	for i, polygon := range polygons {
		if len(polygon) == 0 {
			return nil, fmt.Errorf("polygon %d: %w", i, ErrEmpty)
		}

		for j, ring := range polygon {
			if n := distinctVertices(ring); n < minDistinctVertices {
				return nil, fmt.Errorf("polygon %d ring %d has %d distinct vertices: %w", i, j, n, ErrDegenerateRing)
			}
		}

		prepared.Parts = append(prepared.Parts, Part{Bound: polygon.Bound(), polygon: polygon})
	}

	return prepared, nil
}

func distinctVertices(ring orb.Ring) int {
	seen := make(map[orb.Point]struct{}, len(ring))
	for _, pt := range ring {
		seen[pt] = struct{}{}
	}

	return len(seen)
}
