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

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Type
		wantErr bool
	}{
		{path: "endpoints.yaml", want: TypeYAML},
		{path: "endpoints.YML", want: TypeYAML},
		{path: "/etc/library/endpoints.json", want: TypeJSON},
		{path: "endpoints.toml", want: TypeTOML},
		{path: "endpoints.ini", wantErr: true},
		{path: "endpoints", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := Detect(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	_, err := Get(Type("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestDecoders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		typ  Type
		data string
	}{
		{name: "json", typ: TypeJSON, data: `{"path": "/library", "ids": ["a", "b"]}`},
		{name: "yaml", typ: TypeYAML, data: "path: /library\nids:\n  - a\n  - b\n"},
		{name: "toml", typ: TypeTOML, data: "path = \"/library\"\nids = [\"a\", \"b\"]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoder, err := Get(tt.typ)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, decoder.Decode([]byte(tt.data), &got))
			assert.Equal(t, "/library", got["path"])
			assert.Len(t, got["ids"], 2)
		})
	}
}
