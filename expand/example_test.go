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

package expand_test

import (
	"fmt"

	"rivaas.dev/hateoas/expand"
)

func ExampleExpand() {
	type Customer struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}

	uri, err := expand.Expand("/library/customers/{id}", Customer{ID: 42, Name: "Ann"},
		expand.Field("id"),
		expand.Query("type", "FOOZZ"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(uri)
	// Output: /library/customers/42?type=FOOZZ
}

func ExampleTemplate_Expand() {
	tmpl := expand.MustParse("/library/customers/:id/loans")

	uri, _ := tmpl.Expand(nil, expand.Value(7), expand.Value(2).As("page"))
	fmt.Println(uri)
	// Output: /library/customers/7/loans?page=2
}
