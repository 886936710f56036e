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

// Source supplies one parameter during expansion.
// The set of sources is closed: [FieldSource], [ValueSource] and [QuerySource].
type Source interface {
	source()
}

// scalar is a source that resolves to a single value: a field or a literal.
type scalar interface {
	Source
	scalar()
}

// FieldSource reads a named field from the object being linked.
type FieldSource struct {
	Name string
}

// Field returns a source that reads the named field from the target object.
// The name is matched against JSON tag names, Go field names and map keys.
func Field(name string) FieldSource {
	return FieldSource{Name: name}
}

func (FieldSource) source() {}
func (FieldSource) scalar() {}

// ValueSource supplies a fixed value.
type ValueSource struct {
	Value any
	Name  string // Query parameter name used when no placeholder is left
}

// Value returns a source with a fixed value. Numbers, booleans, strings and
// fmt.Stringer values are accepted.
func Value(v any) ValueSource {
	return ValueSource{Value: v}
}

// As names the value so it can be appended to the query string when every
// placeholder is already filled.
func (s ValueSource) As(name string) ValueSource {
	s.Name = name
	return s
}

func (ValueSource) source() {}
func (ValueSource) scalar() {}

// QuerySource contributes a name=value pair to the query string.
// It is never matched against placeholders.
type QuerySource struct {
	Name  string
	Value scalar
}

// Query returns a source that appends name=value to the query string.
func Query(name string, value any) QuerySource {
	return QuerySource{Name: name, Value: Value(value)}
}

// QueryField returns a source that appends name=<field value> to the query
// string, reading the field from the target object.
func QueryField(name, field string) QuerySource {
	return QuerySource{Name: name, Value: Field(field)}
}

func (QuerySource) source() {}
