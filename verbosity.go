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
	"strings"
)

// Verbosity controls how much metadata each rendered link carries.
type Verbosity int

const (
	// Maximum renders rel, href, method, media types, label, description and
	// the structural template. It is the default.
	Maximum Verbosity = iota

	// Minimal renders rel and href only.
	Minimal
)

// ParseVerbosity parses "maximum" or "minimal", case-insensitively.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maximum", "max", "":
		return Maximum, nil
	case "minimal", "min":
		return Minimal, nil
	default:
		return Maximum, fmt.Errorf("unknown verbosity %q (expected maximum or minimal)", s)
	}
}

// String returns "maximum" or "minimal".
func (v Verbosity) String() string {
	switch v {
	case Maximum:
		return "maximum"
	case Minimal:
		return "minimal"
	default:
		return fmt.Sprintf("Verbosity(%d)", int(v))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v Verbosity) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Verbosity) UnmarshalText(text []byte) error {
	parsed, err := ParseVerbosity(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
