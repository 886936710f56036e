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
	"errors"
	"fmt"
)

var (
	// ErrTemplateExpansion is matched by every error returned from this package.
	ErrTemplateExpansion = errors.New("template expansion failed")

	// ErrMalformedTemplate indicates a template with an unterminated or empty placeholder.
	ErrMalformedTemplate = errors.New("malformed template")

	// ErrUnfilledPlaceholder indicates that sources ran out before every placeholder was filled.
	ErrUnfilledPlaceholder = errors.New("unfilled placeholder")

	// ErrFieldNotFound indicates that a field source names a field the target does not have.
	ErrFieldNotFound = errors.New("field not found")

	// ErrUnnamedValue indicates that a value had to go to the query string but has no name.
	ErrUnnamedValue = errors.New("value has no query parameter name")

	// ErrUnsupportedValue indicates a value that cannot be written into a URI.
	ErrUnsupportedValue = errors.New("unsupported parameter value")
)

// Error describes a failed expansion.
type Error struct {
	Template    string // The template being expanded
	Placeholder string // The placeholder involved (optional)
	Field       string // The field source involved (optional)
	Err         error  // One of the Err* sentinels, possibly wrapped
}

// Error returns a message naming the template and the offending placeholder or field.
func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("expand %q: field %q: %v", e.Template, e.Field, e.Err)
	case e.Placeholder != "":
		return fmt.Sprintf("expand %q: placeholder {%s}: %v", e.Template, e.Placeholder, e.Err)
	default:
		return fmt.Sprintf("expand %q: %v", e.Template, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTemplateExpansion.
func (e *Error) Is(target error) bool {
	return target == ErrTemplateExpansion
}

// Code returns a machine-readable error code.
func (e *Error) Code() string {
	return "template_expansion_error"
}
