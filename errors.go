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
)

var (
	// ErrAlreadyBuilt indicates a builder was used after Build.
	ErrAlreadyBuilt = errors.New("response already built")

	// ErrNotSequence indicates an item-scoped link on a body that is not a sequence.
	ErrNotSequence = errors.New("response body is not a sequence")

	// ErrFieldPath indicates a field path that does not resolve on the body.
	ErrFieldPath = errors.New("field path does not resolve")
)

// FieldPathError describes a field path that could not be followed.
type FieldPathError struct {
	Path    FieldPath // The path being resolved
	Segment string    // The segment that failed (empty for an empty path)
	Item    int       // Index of the sequence element resolved from, or -1 for the root
	Reason  string    // Why the segment failed (optional)
}

// Error returns the error message.
func (e *FieldPathError) Error() string {
	msg := fmt.Sprintf("%v: %q", ErrFieldPath, e.Path.String())
	if e.Segment != "" {
		msg += fmt.Sprintf(" at %q", e.Segment)
	}
	if e.Item >= 0 {
		msg += fmt.Sprintf(" (item %d)", e.Item)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is reports whether target is ErrFieldPath.
func (e *FieldPathError) Is(target error) bool {
	return target == ErrFieldPath
}

// Code returns a machine-readable error code.
func (e *FieldPathError) Code() string {
	return "field_path_resolution_error"
}
