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
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"rivaas.dev/hateoas/expand"
	"rivaas.dev/hateoas/internal/accessor"
	"rivaas.dev/hateoas/linkable"
)

// scope is where a directive attaches its link.
type scope uint8

const (
	scopeRoot scope = iota
	scopeEach
	scopeField
)

// directive is a link request recorded by the builder and resolved by Build.
type directive struct {
	scope   scope
	id      string
	rel     string
	path    FieldPath
	sources []expand.Source
}

// Builder accumulates the status, body and link directives of one response.
//
// Builder methods return the builder for chaining. The first error raised by
// any of them is recorded, later calls become no-ops and [Builder.Build]
// returns the error. Calls after Build record [ErrAlreadyBuilt]; when the
// build failed, [Builder.Err] then matches both the build error and
// ErrAlreadyBuilt.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	linker     *Linker
	status     int
	body       any
	baseURL    string
	location   string
	directives []directive
	built      bool
	err        error
}

// mutable reports whether the builder accepts another call.
func (b *Builder) mutable() bool {
	if b.built {
		b.afterBuild()
		return false
	}
	return b.err == nil
}

// afterBuild records a call made after Build. A failed build keeps its
// error alongside ErrAlreadyBuilt.
func (b *Builder) afterBuild() {
	switch {
	case b.err == nil:
		b.err = ErrAlreadyBuilt
	case !errors.Is(b.err, ErrAlreadyBuilt):
		b.err = errors.Join(b.err, ErrAlreadyBuilt)
	}
}

// Err returns the first error recorded by the builder, if any.
func (b *Builder) Err() error {
	return b.err
}

// Status sets the HTTP status code, which must be in the range 100-599.
func (b *Builder) Status(code int) *Builder {
	if !b.mutable() {
		return b
	}
	if code < 100 || code > 599 {
		b.err = fmt.Errorf("invalid status code %d", code)
		return b
	}
	b.status = code
	return b
}

// OK sets status 200 and the body.
func (b *Builder) OK(body any) *Builder {
	if !b.mutable() {
		return b
	}
	b.status = http.StatusOK
	b.body = body
	return b
}

// Entity sets the body without changing the status.
func (b *Builder) Entity(body any) *Builder {
	if !b.mutable() {
		return b
	}
	b.body = body
	return b
}

// Created sets status 201 and resolves the endpoint id with sources into the
// Location value right away. Field sources read from the current body.
func (b *Builder) Created(id string, sources ...expand.Source) *Builder {
	if !b.mutable() {
		return b
	}
	desc, err := b.linker.registry.Lookup(id)
	if err != nil {
		b.err = fmt.Errorf("location: %w", err)
		return b
	}
	location, err := expand.Expand(desc.Path, b.body, sources...)
	if err != nil {
		b.err = fmt.Errorf("location %q: %w", id, err)
		return b
	}
	b.status = http.StatusCreated
	b.location = location
	return b
}

// BaseURL overrides the Linker's base URL for this response. An empty value
// produces relative links.
func (b *Builder) BaseURL(baseURL string) *Builder {
	if !b.mutable() {
		return b
	}
	b.baseURL = strings.TrimSuffix(baseURL, "/")
	return b
}

// SelfLink adds a root link with rel "self".
func (b *Builder) SelfLink(id string, sources ...expand.Source) *Builder {
	return b.Link(id, RelSelf, sources...)
}

// Link adds a root link. Field sources read from the body. An empty rel falls
// back to the descriptor's rel, then to the endpoint id.
func (b *Builder) Link(id, rel string, sources ...expand.Source) *Builder {
	return b.add(directive{scope: scopeRoot, id: id, rel: rel, sources: sources})
}

// SelfEach adds a link with rel "self" to every item of a sequence body.
func (b *Builder) SelfEach(id string, sources ...expand.Source) *Builder {
	return b.Each(id, RelSelf, sources...)
}

// Each adds a link to every item of a sequence body. Field sources read from
// the item. The body must be a slice or array when Build runs.
func (b *Builder) Each(id, rel string, sources ...expand.Source) *Builder {
	return b.add(directive{scope: scopeEach, id: id, rel: rel, sources: sources})
}

// LinkAt adds a link to the object found at path. On a sequence body the path
// is resolved from each item. Field sources read from the object at the path.
func (b *Builder) LinkAt(path FieldPath, id, rel string, sources ...expand.Source) *Builder {
	return b.add(directive{scope: scopeField, id: id, rel: rel, path: path, sources: sources})
}

func (b *Builder) add(d directive) *Builder {
	if !b.mutable() {
		return b
	}
	d.sources = slices.Clone(d.sources)
	b.directives = append(b.directives, d)
	return b
}

// Build resolves every link directive, in the order they were added, and
// returns the envelope. It fails on the first unknown endpoint, expansion
// failure or unresolvable field path. Build can be called once.
func (b *Builder) Build() (*Envelope, error) {
	if b.built {
		b.afterBuild()
		return nil, ErrAlreadyBuilt
	}
	b.built = true
	if b.err != nil {
		return nil, b.err
	}

	env, err := b.resolve()
	if err != nil {
		b.err = err
		b.linker.logger.Debug("link resolution failed", "error", err)
		return nil, err
	}
	return env, nil
}

func (b *Builder) resolve() (*Envelope, error) {
	env := &Envelope{
		Status:    statusOrDefault(b.status),
		Body:      b.body,
		Links:     []Link{},
		Verbosity: b.linker.verbosity,
	}
	if b.location != "" {
		env.Location = b.absolute(b.location)
	}

	isSeq := accessor.IsSequence(b.body)
	var items []any
	if isSeq {
		items = accessor.Items(b.body)
	}

	// Field links are grouped by item and path, in order of first use.
	groups := make(map[string]int)
	addField := func(item int, path FieldPath, keys []string, link Link) {
		k := fmt.Sprintf("%d\x00%s", item, strings.Join(keys, "\x00"))
		i, ok := groups[k]
		if !ok {
			i = len(env.Fields)
			groups[k] = i
			env.Fields = append(env.Fields, FieldLinks{Item: item, Path: path, keys: keys})
		}
		env.Fields[i].Links = append(env.Fields[i].Links, link)
	}

	for _, d := range b.directives {
		desc, err := b.linker.registry.Lookup(d.id)
		if err != nil {
			return nil, err
		}

		switch d.scope {
		case scopeRoot:
			link, err := b.link(desc, d, b.body)
			if err != nil {
				return nil, err
			}
			env.Links = append(env.Links, link)

		case scopeEach:
			if !isSeq {
				return nil, fmt.Errorf("link %q on each item: %w", d.id, ErrNotSequence)
			}
			if env.Items == nil {
				env.Items = make([][]Link, len(items))
				for i := range env.Items {
					env.Items[i] = []Link{}
				}
			}
			for i, item := range items {
				link, err := b.link(desc, d, item)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
				env.Items[i] = append(env.Items[i], link)
			}

		case scopeField:
			if !isSeq {
				target, keys, err := d.path.resolve(b.body, -1)
				if err != nil {
					return nil, err
				}
				link, err := b.link(desc, d, target)
				if err != nil {
					return nil, err
				}
				addField(-1, d.path, keys, link)
				continue
			}
			for i, item := range items {
				target, keys, err := d.path.resolve(item, i)
				if err != nil {
					return nil, err
				}
				link, err := b.link(desc, d, target)
				if err != nil {
					return nil, fmt.Errorf("item %d: %w", i, err)
				}
				addField(i, d.path, keys, link)
			}
		}
	}

	return env, nil
}

// link expands one directive against target.
func (b *Builder) link(desc linkable.Descriptor, d directive, target any) (Link, error) {
	href, err := expand.Expand(desc.Path, target, d.sources...)
	if err != nil {
		return Link{}, fmt.Errorf("link %q: %w", d.id, err)
	}

	rel := d.rel
	if rel == "" {
		rel = desc.Rel
	}
	if rel == "" {
		rel = desc.ID
	}

	return Link{
		Rel:         rel,
		Href:        b.absolute(href),
		Method:      desc.Method,
		Consumes:    desc.Consumes,
		Produces:    desc.Produces,
		Label:       desc.Label,
		Description: desc.Description,
		Template:    desc.Template,
	}, nil
}

func (b *Builder) absolute(href string) string {
	if b.baseURL == "" {
		return href
	}
	return b.baseURL + href
}
