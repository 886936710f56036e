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

// Package web serves hypermedia responses with the rivaas router.
//
// A [Server] registers each route twice from one table: with the router, so
// requests reach the handler, and with the link registry, so other responses
// can link to it by identifier. Route identifiers double as router route
// names, which keeps [router.Router.URLFor] and the registry in agreement.
//
//	srv := web.MustNew(r, reg, web.WithLogger(logger))
//	srv.MustHandle("/library/customers",
//	    web.Route{ID: "CUSTOMER_LIST", Method: linkable.MethodGet, Handler: listCustomers},
//	    web.Route{ID: "CUSTOMER_DETAILS", Method: linkable.MethodGet, Path: "/{id}", Handler: getCustomer},
//	)
//	srv.Freeze()
//
// Handlers receive a [hateoas.Builder] prepared for the request and fill it
// in; the server builds it and writes the envelope as JSON, or writes an
// RFC 9457 problem when the handler or the build fails.
//
// [Server.OpenAPI] describes the same registry as an OpenAPI document.
package web
