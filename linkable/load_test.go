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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlTable = `
resources:
  - path: /library/customers
    endpoints:
      - id: CUSTOMER_LIST
        method: GET
        produces: application/vnd.demo.library.list.customer+json
      - id: CUSTOMER_DETAILS
        path: /{id}
        method: get
        label: Customer
        produces:
          - application/vnd.demo.library.customer+json
`

const jsonTable = `{
  "resources": [
    {"path": "/library/customers", "endpoints": [
      {"id": "CUSTOMER_LIST", "method": "GET", "produces": ["application/vnd.demo.library.list.customer+json"]},
      {"id": "CUSTOMER_DETAILS", "path": "/{id}", "method": "GET", "label": "Customer",
       "produces": ["application/vnd.demo.library.customer+json"]}
    ]}
  ]
}`

const tomlTable = `
[[resources]]
path = "/library/customers"

  [[resources.endpoints]]
  id = "CUSTOMER_LIST"
  method = "GET"
  produces = ["application/vnd.demo.library.list.customer+json"]

  [[resources.endpoints]]
  id = "CUSTOMER_DETAILS"
  path = "/{id}"
  method = "GET"
  label = "Customer"
  produces = ["application/vnd.demo.library.customer+json"]
`

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		file    string
		content string
	}{
		{file: "endpoints.yaml", content: yamlTable},
		{file: "endpoints.json", content: jsonTable},
		{file: "endpoints.toml", content: tomlTable},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			resources, err := LoadFile(path)
			require.NoError(t, err)
			require.Len(t, resources, 1)

			reg := NewRegistry()
			require.NoError(t, reg.Map(resources...))

			list, err := reg.Lookup("CUSTOMER_LIST")
			require.NoError(t, err)
			assert.Equal(t, "/library/customers", list.Path)
			assert.Equal(t, []string{"application/vnd.demo.library.list.customer+json"}, list.Produces)

			details, err := reg.Lookup("CUSTOMER_DETAILS")
			require.NoError(t, err)
			assert.Equal(t, "/library/customers/{id}", details.Path)
			assert.Equal(t, MethodGet, details.Method)
			assert.Equal(t, "Customer", details.Label)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "endpoints.ini"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot detect format")

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"resources": [`), 0o600))
	_, err = LoadFile(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestLoad_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`{"resources": [{"path": "/a", "endpoints": [{"id": "A", "method": "GET", "verb": "x"}]}]}`), "json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to bind")
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`{"resources": [{"path": "/a", "endpoints": [{"id": "A", "method": "PATCH"}]}]}`), "json")
	require.ErrorIs(t, err, ErrInvalidDescriptor)

	_, err = Load([]byte("resources:\n  - path: /a\n    endpoints: []\n"), "yaml")
	require.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestLoad_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`<resources/>`), "xml")

	require.Error(t, err)
}
