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

func TestUnion(t *testing.T) {
	assert.Equal(t,
		model.VisitSequence{"Belgium", "France", "Germany", "Austria", "Italy", "Greece"},
		countries.Union(raceTracks()))

	assert.Empty(t, countries.Union(nil))
}
