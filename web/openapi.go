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

package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"rivaas.dev/openapi"

	"rivaas.dev/hateoas/expand"
	"rivaas.dev/hateoas/linkable"
)

// OpenAPI describes every registered endpoint, including link targets
// without a handler, as an OpenAPI document.
//
// Operation ids are endpoint ids. Endpoints with a structural template
// document it as their request body.
func (s *Server) OpenAPI(ctx context.Context, api *openapi.API) (*openapi.Result, error) {
	entries := s.registry.Entries()
	ops := make([]openapi.Operation, 0, len(entries))
	for _, d := range entries {
		op, err := operation(d)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	res, err := api.Generate(ctx, ops...)
	if err != nil {
		return nil, fmt.Errorf("generate openapi document: %w", err)
	}
	return res, nil
}

func operation(d linkable.Descriptor) (openapi.Operation, error) {
	tmpl, err := expand.Parse(d.Path)
	if err != nil {
		return openapi.Operation{}, fmt.Errorf("endpoint %q: %w", d.ID, err)
	}

	opts := []openapi.OperationOption{
		openapi.WithOperationID(d.ID),
		openapi.WithProduces(d.Produces...),
		openapi.WithResponse(successStatus(d.Method), nil),
	}
	if d.Label != "" {
		opts = append(opts, openapi.WithSummary(d.Label))
	}
	if d.Description != "" {
		opts = append(opts, openapi.WithDescription(d.Description))
	}
	if d.Template != nil {
		t := d.Template
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		opts = append(opts,
			openapi.WithRequest(reflect.New(t).Elem().Interface()),
			openapi.WithConsumes(d.Consumes...),
		)
	}

	path := tmpl.Rewrite(func(name string) string { return ":" + name })
	if !strings.HasPrefix(path, "/") {
		return openapi.Operation{}, fmt.Errorf("endpoint %q: path %q is not rooted", d.ID, d.Path)
	}
	return openapi.Op(string(d.Method), path, opts...), nil
}

func successStatus(m linkable.Method) int {
	if m == linkable.MethodPost {
		return http.StatusCreated
	}
	return http.StatusOK
}
