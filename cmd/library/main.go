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

// Command library serves the lending library API with hypermedia links.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// configFile is set by the --config flag.
var configFile string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "library",
		Short: "Lending library API with hypermedia links",
		Long: `library serves customers, books and loans over HTTP. Every response
carries links to the related resources and the operations available on them.

Settings come from flags, LIBRARY_* environment variables and an optional
config file (YAML, JSON or TOML), in that order of precedence.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file")

	root.AddCommand(newServeCmd(), newEndpointsCmd(), newOpenAPICmd())
	return root
}
