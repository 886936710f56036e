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
	"net/http"
	"reflect"
	"strings"
)

// Method is an HTTP method an endpoint can be linked with.
type Method string

// Supported methods.
const (
	MethodGet     Method = http.MethodGet
	MethodPost    Method = http.MethodPost
	MethodPut     Method = http.MethodPut
	MethodDelete  Method = http.MethodDelete
	MethodOptions Method = http.MethodOptions
)

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodOptions:
		return true
	default:
		return false
	}
}

// ParseMethod parses a method name case-insensitively.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: unsupported method %q", ErrInvalidDescriptor, s)
	}
	return m, nil
}

// DefaultMediaType is used when an endpoint declares no media types.
const DefaultMediaType = "*/*"

// Descriptor describes one linkable endpoint.
// Descriptors are values; the registry keeps its own copy.
type Descriptor struct {
	ID          string       // Unique identifier links refer to
	Path        string       // Path template, e.g. /library/customers/{id}
	Rel         string       // Default relation (optional)
	Method      Method       // HTTP method
	Consumes    []string     // Accepted media types, default */*
	Produces    []string     // Produced media types, default */*
	Label       string       // Human-readable label (optional)
	Description string       // Human-readable description (optional)
	Template    reflect.Type // Structural template of the expected request body (optional)
}

// TemplateOf returns the structural template marker for T.
//
//	linkable.Descriptor{ID: "customers.new", Template: linkable.TemplateOf[CustomerDto]()}
func TemplateOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// ContentType returns the first concrete media type the endpoint produces,
// or "" when it only declares wildcards.
func (d Descriptor) ContentType() string {
	for _, p := range d.Produces {
		if !strings.Contains(p, "*") {
			return p
		}
	}
	return ""
}

// String returns a one-line summary of the descriptor.
func (d Descriptor) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", d.ID, d.Method, d.Path)
	if d.Rel != "" {
		fmt.Fprintf(&b, " rel=%s", d.Rel)
	}
	fmt.Fprintf(&b, " consumes=[%s] produces=[%s]",
		strings.Join(d.Consumes, ","), strings.Join(d.Produces, ","))
	if d.Label != "" {
		fmt.Fprintf(&b, " label=%q", d.Label)
	}
	if d.Template != nil {
		fmt.Fprintf(&b, " template=%s", d.Template)
	}
	return b.String()
}

func (d Descriptor) clone() Descriptor {
	d.Consumes = append([]string(nil), d.Consumes...)
	d.Produces = append([]string(nil), d.Produces...)
	return d
}

// normalize validates d and fills defaults.
func (d Descriptor) normalize() (Descriptor, error) {
	d.ID = strings.TrimSpace(d.ID)
	if d.ID == "" {
		return d, fmt.Errorf("%w: empty id", ErrInvalidDescriptor)
	}
	m, err := ParseMethod(string(d.Method))
	if err != nil {
		return d, fmt.Errorf("endpoint %q: %w", d.ID, err)
	}
	d.Method = m

	d.Path = cleanPath(d.Path)
	d.Consumes = mediaTypes(d.Consumes)
	d.Produces = mediaTypes(d.Produces)
	return d, nil
}

// cleanPath makes an empty path the root and drops a trailing slash.
func cleanPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func mediaTypes(types []string) []string {
	out := make([]string, 0, len(types))
	seen := make(map[string]bool, len(types))
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return []string{DefaultMediaType}
	}
	return out
}
