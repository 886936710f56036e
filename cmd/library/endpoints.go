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
	"slices"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// endpointView is the JSON listing of one endpoint.
type endpointView struct {
	ID          string   `json:"id"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Rel         string   `json:"rel,omitempty"`
	Consumes    []string `json:"consumes"`
	Produces    []string `json:"produces"`
	Label       string   `json:"label,omitempty"`
	Description string   `json:"description,omitempty"`
	Template    string   `json:"template,omitempty"`
}

func newEndpointsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "List the registered endpoints",
		Long: `endpoints prints every endpoint links can point to, in registration
order, including those loaded with --endpoints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains([]string{"text", "json"}, format) {
				return fmt.Errorf("unknown format %q (expected text or json)", format)
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

			out := cmd.OutOrStdout()
			if format == "text" {
				_, err = fmt.Fprint(out, a.registry.String())
				return err
			}

			entries := a.registry.Entries()
			views := make([]endpointView, len(entries))
			for i, d := range entries {
				views[i] = endpointView{
					ID:          d.ID,
					Method:      string(d.Method),
					Path:        d.Path,
					Rel:         d.Rel,
					Consumes:    d.Consumes,
					Produces:    d.Produces,
					Label:       d.Label,
					Description: d.Description,
				}
				if d.Template != nil {
					views[i].Template = d.Template.String()
				}
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(views)
		},
	}
	bindFlags(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	return cmd
}
