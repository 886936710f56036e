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

// Package hateoas attaches hypermedia links to HTTP response bodies.
//
// Endpoints are registered once, by identifier, in a [linkable.Registry].
// Handlers then describe the links a response should carry by referring to
// those identifiers; the links are resolved into concrete URIs when the
// response is built.
//
// # Quick Start
//
//	reg := linkable.NewRegistry()
//	reg.MustRegister(linkable.Descriptor{
//	    ID:     "CUSTOMER_DETAILS",
//	    Path:   "/library/customers/{id}",
//	    Method: linkable.MethodGet,
//	})
//	reg.Freeze()
//
//	linker := hateoas.MustNew(hateoas.WithRegistry(reg))
//
//	env, err := linker.OK(Customer{ID: 7, Name: "Ann"}).
//	    SelfLink("CUSTOMER_DETAILS", expand.Field("id")).
//	    Build()
//
// Rendering env as JSON yields the customer plus a links array:
//
//	{"id": 7, "name": "Ann", "links": [
//	    {"rel": "self", "href": "/library/customers/7", "method": "GET", ...}
//	]}
//
// # Link Scopes
//
// Links are attached at one of three scopes:
//
//   - Root: [Builder.Link] and [Builder.SelfLink] add links to the response itself
//   - Each item: [Builder.Each] and [Builder.SelfEach] add links to every element
//     of a sequence body, with field sources read from that element
//   - Field path: [Builder.LinkAt] adds links to the object found at a nested
//     field, from the root or from each element of a sequence body
//
// Sequence bodies are rendered as {"rows": [...], "links": [...]} so the
// collection itself can carry links.
//
// # Verbosity
//
// The [Linker] decides how much each rendered link carries. [Maximum] (the
// default) renders rel, href, method, media types, label, description and the
// structural template of the endpoint; [Minimal] renders rel and href only.
//
// # Errors
//
// Links refer to endpoints by identifier, so a wrong identifier, a missing
// field or a bad field path is a programming error. Builder methods record the
// first error and [Builder.Build] returns it. Errors match
// [linkable.ErrUnknownEndpoint], [expand.ErrTemplateExpansion], [ErrFieldPath],
// [ErrNotSequence] or [ErrAlreadyBuilt] with errors.Is.
//
// # Concurrency
//
// A Linker is immutable and safe for concurrent use. A Builder belongs to the
// single request that created it and must not be shared.
package hateoas
