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

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"rivaas.dev/hateoas/expand"
)

// Registry maps endpoint identifiers to descriptors.
//
// Registration is serialized by a mutex. After [Registry.Freeze] the registry
// is read-only and lookups take no lock.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Descriptor
	order   []string // identifiers in first-registration order
	frozen  atomic.Bool
	logger  *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]Descriptor),
		logger:  noopLogger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts d under d.ID, replacing any earlier descriptor with the
// same identifier. A replacement keeps the identifier's original position in
// [Registry.Entries] and is logged as a warning.
//
// Empty media type lists default to [DefaultMediaType], an empty path becomes
// "/" and a trailing slash is removed. It fails for an empty identifier, an
// unsupported method, a malformed path template, or a frozen registry.
func (r *Registry) Register(d Descriptor) error {
	d, err := d.normalize()
	if err != nil {
		return err
	}
	if _, err := expand.Parse(d.Path); err != nil {
		return fmt.Errorf("%w: endpoint %q: %w", ErrInvalidDescriptor, d.ID, err)
	}
	d = d.clone()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return fmt.Errorf("%w: cannot register %q", ErrFrozen, d.ID)
	}

	if prev, exists := r.entries[d.ID]; exists {
		r.logger.Warn("endpoint registered twice, replacing previous descriptor",
			"id", d.ID,
			"previous_method", string(prev.Method),
			"previous_path", prev.Path,
			"method", string(d.Method),
			"path", d.Path,
		)
	} else {
		r.order = append(r.order, d.ID)
	}
	r.entries[d.ID] = d

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Lookup returns the descriptor registered under id.
// It fails with an error matching [ErrUnknownEndpoint] if id is absent.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	d, ok := r.entries[id]
	if !ok {
		return Descriptor{}, &UnknownEndpointError{ID: id}
	}
	return d.clone(), nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	_, ok := r.entries[id]
	return ok
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	return len(r.entries)
}

// Entries returns a snapshot of all descriptors in registration order.
func (r *Registry) Entries() []Descriptor {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.entries[id].clone())
	}
	return out
}

// Freeze ends the registration phase. Later calls to Register fail with
// [ErrFrozen]. Freeze is idempotent.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen.Store(true)
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// String lists every descriptor, one per line, in registration order.
// It is meant for diagnostics.
func (r *Registry) String() string {
	var b strings.Builder
	for _, d := range r.Entries() {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}
