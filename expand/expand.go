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

package expand

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/spf13/cast"

	"rivaas.dev/hateoas/internal/accessor"
)

// Expand parses template and expands it. See [Template.Expand].
func Expand(template string, target any, sources ...Source) (string, error) {
	t, err := Parse(template)
	if err != nil {
		return "", err
	}
	return t.Expand(target, sources...)
}

// Expand builds a URI from the template.
//
// Sources are consumed in order. A [FieldSource] or [ValueSource] fills the
// next unfilled placeholder; once none is left it is appended to the query
// string. A [QuerySource] is always appended to the query string. Field
// sources are resolved against target, which may be nil when no field source
// is used.
//
// It fails if a placeholder is left unfilled, a field cannot be found on
// target, or a value cannot be written into a URI.
func (t *Template) Expand(target any, sources ...Source) (string, error) {
	values := make(map[string]string, len(t.names))
	next := 0
	var query []string

	for _, src := range sources {
		switch s := src.(type) {
		case FieldSource, ValueSource:
			sc := s.(scalar)
			v, err := t.resolve(target, sc)
			if err != nil {
				return "", err
			}
			if next < len(t.names) {
				values[t.names[next]] = url.PathEscape(v)
				next++
				continue
			}
			name := scalarName(sc)
			if name == "" {
				return "", &Error{Template: t.raw, Err: fmt.Errorf("%w: %v", ErrUnnamedValue, v)}
			}
			query = append(query, url.QueryEscape(name)+"="+url.QueryEscape(v))
		case QuerySource:
			if s.Value == nil {
				return "", &Error{Template: t.raw, Err: fmt.Errorf("%w: query parameter %q has no value", ErrUnsupportedValue, s.Name)}
			}
			v, err := t.resolve(target, s.Value)
			if err != nil {
				return "", err
			}
			query = append(query, url.QueryEscape(s.Name)+"="+url.QueryEscape(v))
		default:
			return "", &Error{Template: t.raw, Err: fmt.Errorf("%w: source %T", ErrUnsupportedValue, src)}
		}
	}

	if next < len(t.names) {
		return "", &Error{Template: t.raw, Placeholder: t.names[next], Err: ErrUnfilledPlaceholder}
	}

	var buf strings.Builder
	buf.Grow(len(t.raw) + 16)
	for _, tok := range t.tokens {
		if tok.param {
			buf.WriteString(values[tok.value])
		} else {
			buf.WriteString(tok.value)
		}
	}

	if len(query) > 0 {
		if strings.Contains(buf.String(), "?") {
			buf.WriteByte('&')
		} else {
			buf.WriteByte('?')
		}
		buf.WriteString(strings.Join(query, "&"))
	}

	return buf.String(), nil
}

func (t *Template) resolve(target any, s scalar) (string, error) {
	switch s := s.(type) {
	case FieldSource:
		v, _, ok := accessor.Field(target, s.Name)
		if !ok {
			return "", &Error{Template: t.raw, Field: s.Name, Err: ErrFieldNotFound}
		}
		str, err := stringify(v)
		if err != nil {
			return "", &Error{Template: t.raw, Field: s.Name, Err: err}
		}
		return str, nil
	case ValueSource:
		str, err := stringify(s.Value)
		if err != nil {
			return "", &Error{Template: t.raw, Err: err}
		}
		return str, nil
	default:
		return "", &Error{Template: t.raw, Err: fmt.Errorf("%w: source %T", ErrUnsupportedValue, s)}
	}
}

func scalarName(s scalar) string {
	switch s := s.(type) {
	case FieldSource:
		return s.Name
	case ValueSource:
		return s.Name
	default:
		return ""
	}
}

// stringify converts a parameter value to its string form.
// nil, nil pointers and composite values are rejected.
func stringify(v any) (string, error) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			break
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return "", fmt.Errorf("%w: nil", ErrUnsupportedValue)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
	return s, nil
}
