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

package hateoas

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"rivaas.dev/hateoas/expand"
	"rivaas.dev/hateoas/linkable"
)

// Link relations used by the builder's self variants and common in responses.
const (
	RelSelf     = "self"
	RelVia      = "via"
	RelRelated  = "related"
	RelEdit     = "edit"
	RelNext     = "next"
	RelPrevious = "previous"
)

// Linker holds the build-time configuration for responses: the registry links
// are resolved against, the verbosity and an optional base URL.
// It is immutable once created and safe for concurrent use.
type Linker struct {
	registry  *linkable.Registry
	verbosity Verbosity
	baseURL   string
	logger    *slog.Logger
}

// New creates a Linker with the given options.
// It returns an error if the base URL is not an absolute URL.
func New(opts ...Option) (*Linker, error) {
	l := &Linker{
		verbosity: Maximum,
		logger:    noopLogger,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.registry == nil {
		l.registry = linkable.Default()
	}
	if l.verbosity != Maximum && l.verbosity != Minimal {
		return nil, fmt.Errorf("invalid verbosity %d", int(l.verbosity))
	}
	if l.baseURL != "" {
		u, err := url.Parse(l.baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", l.baseURL, err)
		}
		if !u.IsAbs() || u.Host == "" {
			return nil, fmt.Errorf("invalid base URL %q: must be absolute", l.baseURL)
		}
		l.baseURL = strings.TrimSuffix(l.baseURL, "/")
	}

	return l, nil
}

// MustNew creates a Linker and panics on error.
func MustNew(opts ...Option) *Linker {
	l, err := New(opts...)
	if err != nil {
		panic(fmt.Sprintf("hateoas: %v", err))
	}
	return l
}

// Registry returns the registry links are resolved against.
func (l *Linker) Registry() *linkable.Registry {
	return l.registry
}

// Verbosity returns the configured verbosity.
func (l *Linker) Verbosity() Verbosity {
	return l.verbosity
}

// BaseURL returns the configured base URL without a trailing slash.
func (l *Linker) BaseURL() string {
	return l.baseURL
}

// Response starts an empty response. Its status defaults to 200.
func (l *Linker) Response() *Builder {
	return &Builder{linker: l, baseURL: l.baseURL}
}

// OK starts a 200 response with body.
func (l *Linker) OK(body any) *Builder {
	return l.Response().OK(body)
}

// Created starts a 201 response whose Location points at the endpoint id,
// expanded with sources. Field sources read from the entity, so set it with
// [Builder.Entity] first or pass literal values.
func (l *Linker) Created(id string, sources ...expand.Source) *Builder {
	return l.Response().Created(id, sources...)
}

var defaultLinker = sync.OnceValue(func() *Linker {
	return MustNew()
})

// Response starts an empty response on a Linker backed by [linkable.Default]
// with [Maximum] verbosity.
func Response() *Builder {
	return defaultLinker().Response()
}

// OK starts a 200 response with body on the default Linker.
func OK(body any) *Builder {
	return defaultLinker().OK(body)
}

// Created starts a 201 response on the default Linker.
func Created(id string, sources ...expand.Source) *Builder {
	return defaultLinker().Created(id, sources...)
}

func statusOrDefault(status int) int {
	if status == 0 {
		return http.StatusOK
	}
	return status
}
