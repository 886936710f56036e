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

package linkable_test

import (
	"errors"
	"fmt"

	"rivaas.dev/hateoas/linkable"
)

func ExampleRegistry_Map() {
	reg := linkable.NewRegistry()
	err := reg.Map(linkable.Resource{
		Path: "/library/customers",
		Endpoints: []linkable.Endpoint{
			{ID: "CUSTOMER_LIST", Method: "GET"},
			{ID: "CUSTOMER_DETAILS", Path: "/{id}", Method: "GET"},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	reg.Freeze()

	fmt.Print(reg)
	// Output:
	// CUSTOMER_LIST GET /library/customers consumes=[*/*] produces=[*/*]
	// CUSTOMER_DETAILS GET /library/customers/{id} consumes=[*/*] produces=[*/*]
}

func ExampleRegistry_Lookup() {
	reg := linkable.NewRegistry()
	reg.MustRegister(linkable.Descriptor{ID: "CUSTOMER_DETAILS", Path: "/library/customers/{id}", Method: linkable.MethodGet})

	d, _ := reg.Lookup("CUSTOMER_DETAILS")
	fmt.Println(d.Method, d.Path)

	_, err := reg.Lookup("CUSTOMER_LOANS")
	fmt.Println(errors.Is(err, linkable.ErrUnknownEndpoint))
	// Output:
	// GET /library/customers/{id}
	// true
}
