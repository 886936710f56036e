// Copyright 2025 The Rivaas Authors
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

package linkable

import "sync"

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// Default returns the process-wide registry. It is created on first use and
// is the registry used when no other is configured.
func Default() *Registry {
	return defaultRegistry()
}

// Lazy returns a function that builds a registry on first call, freezes it
// and returns the same registry (or the same error) on every later call.
// Construction runs exactly once even under concurrent first access.
//
//	registry := linkable.Lazy(func(r *linkable.Registry) error {
//	    return r.Map(resources...)
//	})
//	reg, err := registry()
func Lazy(build func(*Registry) error, opts ...Option) func() (*Registry, error) {
	return sync.OnceValues(func() (*Registry, error) {
		r := NewRegistry(opts...)
		if err := build(r); err != nil {
			return nil, err
		}
		r.Freeze()
		return r, nil
	})
}
