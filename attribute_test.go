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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/countries"
	"m4o.io/countries/model"
)

// stubResolver resolves a point by its longitude alone.
type stubResolver map[model.Degrees]string

func (s stubResolver) Resolve(p model.Point) string {
	if label, ok := s[p.Lon]; ok {
		return label
	}

	return model.Unknown
}

var europe = stubResolver{1: "France", 2: "Switzerland", 3: "Italy"}

// stubTrack builds a track whose points sit at the given longitudes, timed
// t1, t2, ...
func stubTrack(lons ...float64) model.Track {
	points := make([]model.Point, len(lons))
	for i, lon := range lons {
		points[i] = model.NewPoint(lon, 0, "t"+strconv.Itoa(i+1))
	}

	return model.Track{Name: "stub", Points: points}
}

func TestAttribute_TwoSquares(t *testing.T) {
	r := countries.NewResolver(testIndex(t))
	track := model.Track{
		Name: "squares.gpx",
		Points: []model.Point{
			model.NewPoint(0.5, 0.5, "t1"),
			model.NewPoint(0.5, 0.5, "t2"),
			model.NewPoint(2.5, 0.5, "t3"),
			model.NewPoint(5, 5, "t4"),
		},
	}

	a := countries.Attribute(track, r)

	assert.Equal(t, model.VisitSequence{"Testland", "Otherland", model.Unknown}, a.Visits)
	assert.Equal(t, countries.ItinerarySummary{Total: 3, Unique: 3, Borders: 2}, a.Summary())
	assert.Equal(t, []countries.Event{
		{Total: 1, Unique: 1, Time: "t1", Country: "Testland", New: true},
		{Total: 2, Unique: 2, Time: "t3", Country: "Otherland", New: true},
		{Total: 3, Unique: 3, Time: "t4", Country: model.Unknown, New: true},
	}, a.Events)
}

func TestAttribute_SkipUnknown(t *testing.T) {
	track := stubTrack(1, 9, 1)

	kept := countries.Attribute(track, europe)
	assert.Equal(t, model.VisitSequence{"France", model.Unknown, "France"}, kept.Visits)
	assert.Equal(t, 2, kept.Summary().Borders)

	skipped := countries.Attribute(track, europe, countries.WithSkipUnknown(true))
	assert.Equal(t, model.VisitSequence{"France"}, skipped.Visits)
	assert.Equal(t, 0, skipped.Summary().Borders)
	assert.Len(t, skipped.Events, 1)
}

func TestAttribute_SkipUnknownLeading(t *testing.T) {
	a := countries.Attribute(stubTrack(9, 9, 2, 9, 3), europe, countries.WithSkipUnknown(true))

	assert.Equal(t, model.VisitSequence{"Switzerland", "Italy"}, a.Visits)
	assert.Equal(t, "t3", a.Events[0].Time)
	assert.Equal(t, 1, a.Events[0].Total)
}

func TestAttribute_RepeatedPointIsIdempotent(t *testing.T) {
	once := countries.Attribute(stubTrack(1, 2), europe)
	repeated := countries.Attribute(stubTrack(1, 1, 1, 2, 2), europe)

	assert.Equal(t, once.Visits, repeated.Visits)
	assert.Len(t, repeated.Events, len(once.Events))
}

func TestAttribute_Events(t *testing.T) {
	track := stubTrack(1, 2, 1, 3)

	all := countries.Attribute(track, europe)
	assert.Equal(t, model.VisitSequence{"France", "Switzerland", "France", "Italy"}, all.Visits)
	assert.Equal(t, []countries.Event{
		{Total: 1, Unique: 1, Time: "t1", Country: "France", New: true},
		{Total: 2, Unique: 2, Time: "t2", Country: "Switzerland", New: true},
		{Total: 3, Unique: 2, Time: "t3", Country: "France", New: false},
		{Total: 4, Unique: 3, Time: "t4", Country: "Italy", New: true},
	}, all.Events)

	unique := countries.Attribute(track, europe, countries.WithUniqueOnly(true))
	assert.Equal(t, all.Visits, unique.Visits)
	assert.Equal(t, []countries.Event{
		{Total: 1, Unique: 1, Time: "t1", Country: "France", New: true},
		{Total: 2, Unique: 2, Time: "t2", Country: "Switzerland", New: true},
		{Total: 4, Unique: 3, Time: "t4", Country: "Italy", New: true},
	}, unique.Events)
}

func TestAttribute_EmptyTrack(t *testing.T) {
	a := countries.Attribute(model.Track{Name: "empty.gpx"}, europe)

	assert.Empty(t, a.Visits)
	assert.Empty(t, a.Events)
	assert.Equal(t, countries.ItinerarySummary{}, a.Summary())
}

func TestAttribute_RunCompressionInvariant(t *testing.T) {
	track := stubTrack(1, 1, 2, 9, 9, 2, 3, 3, 1, 9, 1)

	for _, skip := range []bool{false, true} {
		a := countries.Attribute(track, europe, countries.WithSkipUnknown(skip))
		s := a.Summary()

		assert.True(t, a.Visits.Compressed())
		assert.LessOrEqual(t, s.Unique, s.Total)
		assert.Equal(t, s.Total-1, s.Borders)
		assert.Equal(t, skip, !a.Visits.Contains(model.Unknown))
	}
}
