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

package linkable

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Resource groups endpoints that share a root path, the way handlers are
// grouped under one route prefix.
type Resource struct {
	Path      string     `mapstructure:"path" validate:"required"`
	Endpoints []Endpoint `mapstructure:"endpoints" validate:"required,min=1,dive"`
}

// Endpoint is one entry of a resource table. Its path is relative to the
// resource path.
type Endpoint struct {
	ID          string       `mapstructure:"id" validate:"required"`
	Path        string       `mapstructure:"path"`
	Rel         string       `mapstructure:"rel"`
	Method      string       `mapstructure:"method" validate:"required,oneof=GET POST PUT DELETE OPTIONS"`
	Consumes    []string     `mapstructure:"consumes"`
	Produces    []string     `mapstructure:"produces"`
	Label       string       `mapstructure:"label"`
	Description string       `mapstructure:"description"`
	Template    reflect.Type `mapstructure:"-" validate:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the resource table for missing identifiers, methods and
// paths. Method names are accepted in any case.
func (res Resource) Validate() error {
	normalized := res
	normalized.Endpoints = make([]Endpoint, len(res.Endpoints))
	for i, ep := range res.Endpoints {
		ep.Method = strings.ToUpper(strings.TrimSpace(ep.Method))
		normalized.Endpoints[i] = ep
	}

	if err := validate.Struct(normalized); err != nil {
		return fmt.Errorf("%w: resource %q: %w", ErrInvalidDescriptor, res.Path, err)
	}
	return nil
}

// Descriptors returns the descriptors of every endpoint in the resource.
//
// An endpoint's path is appended to the resource path after removing the
// resource path's trailing slash; an endpoint without a path is the resource
// path itself.
func (res Resource) Descriptors() ([]Descriptor, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}

	root := strings.TrimSuffix(res.Path, "/")
	out := make([]Descriptor, 0, len(res.Endpoints))
	for _, ep := range res.Endpoints {
		method, err := ParseMethod(ep.Method)
		if err != nil {
			return nil, fmt.Errorf("endpoint %q: %w", ep.ID, err)
		}
		out = append(out, Descriptor{
			ID:          ep.ID,
			Path:        joinPath(root, ep.Path),
			Rel:         ep.Rel,
			Method:      method,
			Consumes:    ep.Consumes,
			Produces:    ep.Produces,
			Label:       ep.Label,
			Description: ep.Description,
			Template:    ep.Template,
		})
	}
	return out, nil
}

func joinPath(root, sub string) string {
	if sub == "" {
		if root == "" {
			return "/"
		}
		return root
	}
	if !strings.HasPrefix(sub, "/") {
		sub = "/" + sub
	}
	return root + sub
}

// Map registers every endpoint of the given resources, in order.
// It stops at the first invalid resource or endpoint.
func (r *Registry) Map(resources ...Resource) error {
	for _, res := range resources {
		descriptors, err := res.Descriptors()
		if err != nil {
			return err
		}
		for _, d := range descriptors {
			if err := r.Register(d); err != nil {
				return err
			}
		}
	}
	return nil
}
