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
	"strings"

	"rivaas.dev/hateoas/internal/accessor"
)

// FieldPath names a nested field of a response body, one segment per level.
// Segments match JSON names, Go field names and map keys.
type FieldPath struct {
	segments []string
}

// Path parses a dotted path such as "rows" or "customer.address".
func Path(path string) FieldPath {
	if path == "" {
		return FieldPath{}
	}
	return FieldPath{segments: strings.Split(path, ".")}
}

// PathOf builds a path from individual segments, which may contain dots.
func PathOf(segments ...string) FieldPath {
	return FieldPath{segments: append([]string(nil), segments...)}
}

// Segments returns the path segments.
func (p FieldPath) Segments() []string {
	return append([]string(nil), p.segments...)
}

// IsZero reports whether the path has no segments.
func (p FieldPath) IsZero() bool {
	return len(p.segments) == 0
}

// String returns the dotted form of the path.
func (p FieldPath) String() string {
	return strings.Join(p.segments, ".")
}

// resolve follows the path from v. It returns the value found and the JSON
// keys leading to it. item is only used for error reporting.
func (p FieldPath) resolve(v any, item int) (any, []string, error) {
	if p.IsZero() {
		return nil, nil, &FieldPathError{Path: p, Item: item, Reason: "empty path"}
	}

	keys := make([]string, 0, len(p.segments))
	current := v
	for _, seg := range p.segments {
		next, key, ok := accessor.Field(current, seg)
		if !ok {
			return nil, nil, &FieldPathError{Path: p, Segment: seg, Item: item}
		}
		if key == "" {
			return nil, nil, &FieldPathError{Path: p, Segment: seg, Item: item, Reason: "field is not rendered"}
		}
		keys = append(keys, key)
		current = next
	}
	return current, keys, nil
}
