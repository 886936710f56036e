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
	"bytes"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type customerDto struct {
	Name string `json:"name"`
}

func customerDetails() Descriptor {
	return Descriptor{
		ID:          "CUSTOMER_DETAILS",
		Path:        "/library/customers/{id}",
		Rel:         "customer",
		Method:      MethodGet,
		Consumes:    []string{DefaultMediaType},
		Produces:    []string{"application/vnd.demo.library.customer+json"},
		Label:       "Customer",
		Description: "A single customer",
		Template:    TemplateOf[customerDto](),
	}
}

func TestRegistry_RegisterThenLookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	d := customerDetails()

	require.NoError(t, reg.Register(d))

	got, err := reg.Lookup("CUSTOMER_DETAILS")
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestRegistry_LastWriteWins(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	reg := NewRegistry(WithLogger(logger))

	first := customerDetails()
	second := customerDetails()
	second.Path = "/library/v2/customers/{id}"
	second.Method = MethodPut

	require.NoError(t, reg.Register(first))
	require.NoError(t, reg.Register(second))

	got, err := reg.Lookup("CUSTOMER_DETAILS")
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.Equal(t, 1, reg.Len())
	assert.Len(t, reg.Entries(), 1)

	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "id=CUSTOMER_DETAILS")
	assert.Contains(t, logs.String(), "previous_path=/library/customers/{id}")
}

func TestRegistry_OverwriteKeepsPosition(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.MustRegister(Descriptor{ID: "a", Path: "/a", Method: MethodGet})
	reg.MustRegister(Descriptor{ID: "b", Path: "/b", Method: MethodGet})
	reg.MustRegister(Descriptor{ID: "a", Path: "/a2", Method: MethodGet})

	entries := reg.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "/a2", entries[0].Path)
	assert.Equal(t, "b", entries[1].ID)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	_, err := reg.Lookup("NOPE")

	require.ErrorIs(t, err, ErrUnknownEndpoint)
	var unknown *UnknownEndpointError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "NOPE", unknown.ID)
	assert.Equal(t, "unknown_endpoint", unknown.Code())
	assert.Equal(t, `unknown endpoint: "NOPE"`, err.Error())
	assert.False(t, reg.Has("NOPE"))
}

func TestRegistry_Defaults(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.NoError(t, reg.Register(Descriptor{ID: "root", Method: "get"}))
	require.NoError(t, reg.Register(Descriptor{ID: "list", Path: "/library/customers/", Method: MethodGet}))

	root, err := reg.Lookup("root")
	require.NoError(t, err)
	assert.Equal(t, "/", root.Path)
	assert.Equal(t, MethodGet, root.Method)
	assert.Equal(t, []string{DefaultMediaType}, root.Consumes)
	assert.Equal(t, []string{DefaultMediaType}, root.Produces)

	list, err := reg.Lookup("list")
	require.NoError(t, err)
	assert.Equal(t, "/library/customers", list.Path)
}

func TestRegistry_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		d    Descriptor
	}{
		{name: "empty id", d: Descriptor{Path: "/x", Method: MethodGet}},
		{name: "blank id", d: Descriptor{ID: "  ", Path: "/x", Method: MethodGet}},
		{name: "missing method", d: Descriptor{ID: "x", Path: "/x"}},
		{name: "unsupported method", d: Descriptor{ID: "x", Path: "/x", Method: "PATCH"}},
		{name: "malformed template", d: Descriptor{ID: "x", Path: "/x/{id", Method: MethodGet}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := NewRegistry()
			err := reg.Register(tt.d)

			require.ErrorIs(t, err, ErrInvalidDescriptor)
			assert.Zero(t, reg.Len())
			assert.Panics(t, func() { reg.MustRegister(tt.d) })
		})
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	d := customerDetails()
	reg.MustRegister(d)

	d.Produces[0] = "text/plain"
	got, err := reg.Lookup(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.demo.library.customer+json", got.Produces[0])

	got.Produces[0] = "text/html"
	again, err := reg.Lookup(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.demo.library.customer+json", again.Produces[0])
}

func TestRegistry_Freeze(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.MustRegister(customerDetails())
	reg.Freeze()
	reg.Freeze()

	assert.True(t, reg.Frozen())
	err := reg.Register(Descriptor{ID: "late", Path: "/late", Method: MethodGet})
	require.ErrorIs(t, err, ErrFrozen)

	_, err = reg.Lookup("CUSTOMER_DETAILS")
	require.NoError(t, err)
	assert.False(t, reg.Has("late"))
}

func TestRegistry_ConcurrentReadsAfterFreeze(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for i := range 50 {
		reg.MustRegister(Descriptor{ID: fmt.Sprintf("e%d", i), Path: fmt.Sprintf("/e/%d", i), Method: MethodGet})
	}
	reg.Freeze()

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				d, err := reg.Lookup(fmt.Sprintf("e%d", (i+g)%50))
				assert.NoError(t, err)
				assert.NotEmpty(t, d.Path)
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_ConcurrentRegistration(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()

	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 20 {
				assert.NoError(t, reg.Register(Descriptor{ID: fmt.Sprintf("e%d", i), Path: fmt.Sprintf("/g/%d", g), Method: MethodGet}))
				_ = reg.Has(fmt.Sprintf("e%d", i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, reg.Len())
}

func TestRegistry_String(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.MustRegister(Descriptor{ID: "a", Path: "/a", Method: MethodGet})
	reg.MustRegister(customerDetails())

	out := reg.String()

	assert.Equal(t,
		"a GET /a consumes=[*/*] produces=[*/*]\n"+
			`CUSTOMER_DETAILS GET /library/customers/{id} rel=customer consumes=[*/*] produces=[application/vnd.demo.library.customer+json] label="Customer" template=linkable.customerDto`+"\n",
		out)
}

func TestDescriptor_ContentType(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Descriptor{Produces: []string{"*/*"}}.ContentType())
	assert.Empty(t, Descriptor{}.ContentType())
	assert.Equal(t, "application/json", Descriptor{Produces: []string{"application/*", "application/json"}}.ContentType())
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"GET", "get", " Post ", "put", "DELETE", "options"} {
		m, err := ParseMethod(in)
		require.NoError(t, err, in)
		assert.True(t, m.Valid())
	}

	_, err := ParseMethod("PATCH")
	require.ErrorIs(t, err, ErrInvalidDescriptor)
}
