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

// Package linkable maps stable endpoint identifiers to routing facts.
//
// A [Descriptor] records everything needed to link to one endpoint: its path
// template, HTTP method, consumed and produced media types and a human label.
// A [Registry] maps identifiers to descriptors. It is filled once at startup,
// then frozen and read concurrently without locking.
//
// # Registration
//
// Descriptors are registered directly or from resource tables that mirror how
// handlers are grouped under a common path:
//
//	reg := linkable.NewRegistry(linkable.WithLogger(logger))
//	err := reg.Map(linkable.Resource{
//	    Path: "/library/customers",
//	    Endpoints: []linkable.Endpoint{
//	        {ID: "customers.list", Method: "GET"},
//	        {ID: "customers.details", Path: "/{id}", Method: "GET"},
//	    },
//	})
//	reg.Freeze()
//
// Tables can also be loaded from JSON, YAML or TOML files with [LoadFile].
//
// Registering an identifier twice replaces the earlier descriptor (last write
// wins) and logs a warning. Looking up an identifier that was never
// registered fails with [ErrUnknownEndpoint]; this is always a programming
// error.
//
// # Process-wide registry
//
// [Default] returns a registry shared by the whole process. [Lazy] builds and
// freezes a registry exactly once on first use, even under concurrent access.
package linkable
