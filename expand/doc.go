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

// Package expand turns URI path templates and parameter sources into concrete
// URIs.
//
// A template contains named placeholders, either in braces or as rivaas-style
// colon segments:
//
//	/library/customers/{id}
//	/library/customers/:id/loans
//
// Parameters are supplied as an ordered list of [Source] values. There are
// exactly three kinds:
//
//   - [Field] reads a named field from the target object at expansion time
//   - [Value] supplies a fixed value
//   - [Query] / [QueryField] always contribute a name=value pair to the query string
//
// Field and Value sources fill placeholders strictly in the order they are
// given; names are not matched against the template. Once every placeholder
// is filled, remaining Field and Value sources are appended to the query
// string under the field name or the name given with [ValueSource.As].
//
//	uri, err := expand.Expand("/customers/{id}", customer,
//	    expand.Field("id"),
//	    expand.Query("type", "FOOZZ"),
//	)
//	// uri == "/customers/42?type=FOOZZ"
//
// Placeholder values are escaped with path-segment rules, query values with
// query rules. Expansion is pure in-memory work; it never blocks.
package expand
