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
	"errors"
	"fmt"
)

var (
	// ErrNoGeometry is returned by Build when not a single geometry could be
	// loaded.
	ErrNoGeometry = errors.New("no usable country geometry")

	// ErrNoTracks is returned by Aggregate when given no tracks.
	ErrNoTracks = errors.New("no tracks to aggregate")
)

// InvalidGeometryError describes a country geometry rejected while building
// an Index.
type InvalidGeometryError struct {
	Name string
	Err  error
}

func (e *InvalidGeometryError) Error() string {
	return fmt.Sprintf("invalid geometry for %q: %v", e.Name, e.Err)
}

func (e *InvalidGeometryError) Unwrap() error {
	return e.Err
}
