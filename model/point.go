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

// Package model contains the shared model for attributing tracks to countries.
package model

import (
	"github.com/golang/geo/s2"
	"github.com/paulmach/orb"
)

// Point is a single track position.  Time is an opaque label carried through
// to event logs; it never takes part in geometry.
type Point struct {
	Lon  Degrees
	Lat  Degrees
	Time string
}

// NewPoint creates a Point from raw longitude and latitude.
func NewPoint(lon, lat float64, time string) Point {
	return Point{Lon: Degrees(lon), Lat: Degrees(lat), Time: time}
}

// Valid reports whether the point has a latitude in [-90, 90] and a
// longitude in [-180, 180].
func (p Point) Valid() bool {
	return s2.LatLngFromDegrees(float64(p.Lat), float64(p.Lon)).IsValid()
}

// Orb returns the planar orb.Point for the position, longitude first.
func (p Point) Orb() orb.Point {
	return orb.Point{float64(p.Lon), float64(p.Lat)}
}

// Track is an ordered sequence of points identified by the label of its
// source, typically a file name.
type Track struct {
	Name   string
	Points []Point
}
