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
	"runtime"
)

// DefaultNCpu provides the default number of CPUs.
func DefaultNCpu() uint16 {
	cpus := uint16(runtime.GOMAXPROCS(-1))

	return max(cpus-1, 1)
}

// attributeOptions provides optional configuration parameters for track
// attribution.
type attributeOptions struct {
	skipUnknown bool   // drop points no country contains
	uniqueOnly  bool   // only log the first visit of each country
	nCPU        uint16 // the number of CPUs to use by AttributeAll
}

// AttributeOption configures how tracks are attributed.
type AttributeOption func(*attributeOptions)

// WithSkipUnknown lets you drop points resolving to model.Unknown.  Skipped
// points neither start nor break a run.
func WithSkipUnknown(skip bool) AttributeOption {
	return func(o *attributeOptions) {
		o.skipUnknown = skip
	}
}

// WithUniqueOnly restricts the event log to the first visit of each country.
// The visit sequence is unaffected.
func WithUniqueOnly(unique bool) AttributeOption {
	return func(o *attributeOptions) {
		o.uniqueOnly = unique
	}
}

// WithNCpus lets you set the number of CPUs AttributeAll uses.
func WithNCpus(n uint16) AttributeOption {
	return func(o *attributeOptions) {
		o.nCPU = n
	}
}

// defaultAttributeConfig provides a default configuration for attribution.
var defaultAttributeConfig = attributeOptions{
	nCPU: DefaultNCpu(),
}

func newAttributeOptions(opts []AttributeOption) attributeOptions {
	cfg := defaultAttributeConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
