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

// Package accessor reads named fields out of arbitrary Go values.
//
// Fields are matched against struct fields (by JSON tag name, Go name, then
// case-insensitive Go name) and string-keyed map entries. Every successful
// lookup also reports the key the field is rendered under by encoding/json
// compatible encoders, so callers can find the same field again in the
// encoded document.
package accessor

import (
	"reflect"
	"strings"
)

// Field returns the value of the field called name on v.
//
// key is the JSON object key the field is rendered under; it is empty when
// the field is left out of v's encoding: tagged json:"-", an omitempty field
// holding an empty value, or a field of an embedded struct that has a JSON
// name of its own and so is not promoted. ok is false when v has no such
// field or v is nil.
func Field(v any, name string) (value any, key string, ok bool) {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return nil, "", false
	}

	switch rv.Kind() {
	case reflect.Struct:
		return structField(rv, name)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, "", false
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, "", false
		}
		return mv.Interface(), name, true
	default:
		return nil, "", false
	}
}

// IsSequence reports whether v is a slice or array (byte slices excluded,
// they encode as strings).
func IsSequence(v any) bool {
	rv, ok := indirect(reflect.ValueOf(v))
	if !ok {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice:
		return rv.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	default:
		return false
	}
}

// Items returns the elements of a sequence in order, or nil when v is not a
// sequence.
func Items(v any) []any {
	if !IsSequence(v) {
		return nil
	}
	rv, _ := indirect(reflect.ValueOf(v))
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items
}

func indirect(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, rv.IsValid()
}

type candidate struct {
	field reflect.StructField
	key   string
	rank  int // 0 JSON name, 1 Go name, 2 case-insensitive Go name
}

func structField(rv reflect.Value, name string) (any, string, bool) {
	var best *candidate

	for _, f := range reflect.VisibleFields(rv.Type()) {
		if !f.IsExported() {
			continue
		}
		tagName, omitted := jsonName(f)
		if f.Anonymous && tagName == "" {
			// Untagged embedded structs are flattened; their fields are visited separately.
			continue
		}
		key := tagName
		if key == "" && !omitted {
			key = f.Name
		}

		rank := -1
		switch {
		case tagName != "" && tagName == name:
			rank = 0
		case f.Name == name:
			rank = 1
		case strings.EqualFold(f.Name, name):
			rank = 2
		}
		if rank < 0 {
			continue
		}
		if best == nil || rank < best.rank {
			best = &candidate{field: f, key: key, rank: rank}
		}
	}

	if best == nil {
		return nil, "", false
	}

	fv, err := rv.FieldByIndexErr(best.field.Index)
	if err != nil {
		// Promoted through a nil embedded pointer.
		return nil, "", false
	}

	key := best.key
	if !promoted(rv.Type(), best.field.Index) || (omitEmpty(best.field) && isEmpty(fv)) {
		key = ""
	}
	return fv.Interface(), key, true
}

// promoted reports whether encoders flatten the field at index into the
// outer object. Embedded structs with a JSON name are rendered as a nested
// object instead.
func promoted(t reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		f := t.Field(i)
		if name, omitted := jsonName(f); name != "" || omitted {
			return false
		}
		t = f.Type
		if t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	return true
}

func omitEmpty(f reflect.StructField) bool {
	_, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "omitempty" {
			return true
		}
	}
	return false
}

// isEmpty matches the omitempty rule of encoding/json.
func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	default:
		return false
	}
}

// jsonName returns the name from the field's json tag and whether the field
// is excluded from encoding.
func jsonName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		return "", false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}
