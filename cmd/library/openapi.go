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

package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

func newOpenAPICmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document",
		Long: `openapi prints the OpenAPI document describing every registered
endpoint, the one served at --openapi-path.`,
		Example: `  library openapi > openapi.json
  library openapi --format yaml --endpoints extra-endpoints.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q (expected json or yaml)", format)
			}
			cfg, err := loadConfig(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			logger, flush, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				_ = flush(cmd.Context())
			}()

			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			doc := a.openapi.JSON
			if format == "yaml" {
				if doc, err = yaml.JSONToYAML(doc); err != nil {
					return fmt.Errorf("convert openapi document: %w", err)
				}
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
	bindFlags(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	return cmd
}
