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

// Package codec decodes endpoint tables from the file formats supported by
// [rivaas.dev/hateoas/linkable.LoadFile].
//
// Decoders are kept in a registry keyed by [Type]. JSON, YAML and TOML are
// registered at init; the format of a file is detected from its extension.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Type identifies a decoder.
type Type string

// Decoder converts encoded bytes into the value pointed to by v.
// Implementations must be safe for concurrent use.
type Decoder interface {
	Decode(data []byte, v any) error
}

var decoders = make(map[Type]Decoder)

// extensions maps file extensions to decoder types.
var extensions = map[string]Type{
	".yaml": TypeYAML,
	".yml":  TypeYAML,
	".json": TypeJSON,
	".toml": TypeTOML,
}

// Register registers a decoder for the given type, replacing any previous one.
// It is meant to be called from init functions.
func Register(name Type, decoder Decoder) {
	decoders[name] = decoder
}

// Get returns the decoder registered for the given type.
func Get(name Type) (Decoder, error) {
	decoder, exists := decoders[name]
	if !exists {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}

	return decoder, nil
}

// Detect returns the decoder type for a file path based on its extension.
func Detect(path string) (Type, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if t, ok := extensions[ext]; ok {
		return t, nil
	}
	return "", fmt.Errorf("cannot detect format from extension %q", ext)
}
