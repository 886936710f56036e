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
	"bytes"
	"fmt"
	"reflect"

	"github.com/goccy/go-json"

	"rivaas.dev/hateoas/internal/accessor"
	"rivaas.dev/hateoas/linkable"
)

// Keys used when a links array cannot be added to the rendered value itself.
const (
	linksKey = "links"
	rowsKey  = "rows"
	valueKey = "value"
)

// Link is a resolved hypermedia link.
type Link struct {
	Rel         string
	Href        string
	Method      linkable.Method
	Consumes    []string
	Produces    []string
	Label       string
	Description string
	Template    reflect.Type
}

// LinkView is the rendered form of a [Link] at a given verbosity.
type LinkView struct {
	Rel         string   `json:"rel"`
	Href        string   `json:"href"`
	Method      string   `json:"method,omitempty"`
	Consumes    []string `json:"consumes,omitempty"`
	Produces    []string `json:"produces,omitempty"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	Template    any      `json:"template,omitempty"`
}

// View returns the link as rendered under v. [Minimal] keeps rel and href.
func (l Link) View(v Verbosity) LinkView {
	view := LinkView{Rel: l.Rel, Href: l.Href}
	if v == Minimal {
		return view
	}
	view.Method = string(l.Method)
	view.Consumes = l.Consumes
	view.Produces = l.Produces
	view.Label = l.Label
	view.Description = l.Description
	if l.Template != nil {
		t := l.Template
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		view.Template = reflect.New(t).Interface()
	}
	return view
}

// FieldLinks are the links attached to the object at a field path.
type FieldLinks struct {
	Item  int       // Index of the sequence item the path starts from, or -1 for the root
	Path  FieldPath // Path from the item or root to the object
	Links []Link

	keys []string // JSON keys along Path, recorded by Build
}

// Envelope is a built response: status, optional Location, the body and the
// links resolved for it. Render it with [Envelope.Document] or encode it as
// JSON directly.
type Envelope struct {
	Status    int
	Location  string
	Body      any
	Links     []Link       // Root links
	Items     [][]Link     // Per-item links of a sequence body, in body order; nil without Each
	Fields    []FieldLinks // Links at field paths
	Verbosity Verbosity
}

// Document returns the hypermedia document: the body converted to generic
// JSON values with the links inserted.
//
// Objects get a "links" member. A sequence body becomes
// {"rows": [...], "links": [...]}, any other non-object value becomes
// {"value": v, "links": [...]} and a nil body becomes {"links": [...]}.
// Item links land in each rendered item, field links on the object at the
// path, wrapped the same way when it is not an object.
func (e Envelope) Document() (any, error) {
	doc, err := tree(e.Body)
	if err != nil {
		return nil, err
	}
	if doc == nil && accessor.IsSequence(e.Body) {
		// A nil slice encodes as null but is still an empty collection.
		doc = []any{}
	}

	seq, isSeq := doc.([]any)

	for _, f := range e.Fields {
		keys := f.keys
		if len(keys) == 0 {
			keys = f.Path.segments
		}
		views := e.views(f.Links)

		if f.Item < 0 {
			doc, err = attach(doc, keys, views)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Path.String(), err)
			}
			seq, isSeq = doc.([]any)
			continue
		}
		if !isSeq || f.Item >= len(seq) {
			return nil, fmt.Errorf("field %q: item %d: %w", f.Path.String(), f.Item, ErrNotSequence)
		}
		seq[f.Item], err = attach(seq[f.Item], keys, views)
		if err != nil {
			return nil, fmt.Errorf("field %q: item %d: %w", f.Path.String(), f.Item, err)
		}
	}

	if e.Items != nil {
		if !isSeq {
			return nil, ErrNotSequence
		}
		for i := range seq {
			if i >= len(e.Items) {
				break
			}
			seq[i] = withLinks(seq[i], e.views(e.Items[i]))
		}
	}

	if doc == nil {
		return map[string]any{linksKey: e.views(e.Links)}, nil
	}
	return withLinks(doc, e.views(e.Links)), nil
}

// MarshalJSON renders the hypermedia document.
func (e Envelope) MarshalJSON() ([]byte, error) {
	doc, err := e.Document()
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// views renders links at the envelope's verbosity. The result is never nil
// so empty link lists encode as [].
func (e Envelope) views(links []Link) []LinkView {
	views := make([]LinkView, 0, len(links))
	for _, l := range links {
		views = append(views, l.View(e.Verbosity))
	}
	return views
}

// tree converts v to generic JSON values: map[string]any, []any, json.Number,
// string, bool and nil.
func tree(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode body: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode body: %w", err)
	}
	return out, nil
}

// attach adds links to the value found by following keys from node.
func attach(node any, keys []string, links []LinkView) (any, error) {
	if len(keys) == 0 {
		return withLinks(node, links), nil
	}
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an object member", ErrFieldPath, keys[0])
	}
	child, ok := obj[keys[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not rendered", ErrFieldPath, keys[0])
	}
	child, err := attach(child, keys[1:], links)
	if err != nil {
		return nil, err
	}
	obj[keys[0]] = child
	return obj, nil
}

// withLinks sets the links member of an object, or wraps any other value.
func withLinks(node any, links []LinkView) any {
	switch v := node.(type) {
	case map[string]any:
		v[linksKey] = links
		return v
	case []any:
		return map[string]any{rowsKey: v, linksKey: links}
	default:
		return map[string]any{valueKey: v, linksKey: links}
	}
}
