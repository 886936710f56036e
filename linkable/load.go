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

package linkable

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"

	"rivaas.dev/hateoas/internal/codec"
)

// table is the document layout of an endpoint file.
type table struct {
	Resources []Resource `mapstructure:"resources"`
}

// LoadFile reads resource tables from a JSON, YAML or TOML file. The format is
// detected from the file extension. The document has a top-level
// "resources" list:
//
//	resources:
//	  - path: /library/customers
//	    endpoints:
//	      - id: customers.details
//	        path: /{id}
//	        method: GET
//	        produces: [application/vnd.demo.library.customer+json]
func LoadFile(path string) ([]Resource, error) {
	format, err := codec.Detect(path)
	if err != nil {
		return nil, fmt.Errorf("load endpoints %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load endpoints: failed to read file: %w", err)
	}

	resources, err := Load(data, string(format))
	if err != nil {
		return nil, fmt.Errorf("load endpoints %s: %w", path, err)
	}
	return resources, nil
}

// Load decodes resource tables from data in the given format
// ("json", "yaml" or "toml") and validates them.
func Load(data []byte, format string) ([]Resource, error) {
	decoder, err := codec.Get(codec.Type(format))
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := decoder.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}

	var t table
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &t,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to bind: %w", err)
	}

	for _, res := range t.Resources {
		if err := res.Validate(); err != nil {
			return nil, err
		}
	}
	return t.Resources, nil
}
