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
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	riverrors "rivaas.dev/errors"
	"rivaas.dev/router"
	"rivaas.dev/router/route"

	"rivaas.dev/hateoas"
	"rivaas.dev/hateoas/expand"
	"rivaas.dev/hateoas/linkable"
)

var (
	// ErrDuplicateRoute indicates a route identifier that is already registered.
	ErrDuplicateRoute = errors.New("duplicate route id")

	// ErrServedEndpoint indicates an endpoint table that moves an endpoint
	// served by a handler to another method or path.
	ErrServedEndpoint = errors.New("endpoint is served by a handler")
)

// HandlerFunc handles a request by filling in res. The server builds res once
// the handler returns; a returned error is written as a problem instead.
type HandlerFunc func(c *router.Context, res *hateoas.Builder) error

// Route is an endpoint and its handler. Path is relative to the resource path
// passed to [Server.Handle] and uses {name} placeholders.
type Route struct {
	ID          string
	Method      linkable.Method
	Path        string
	Rel         string
	Consumes    []string
	Produces    []string
	Label       string
	Description string
	Template    reflect.Type
	Handler     HandlerFunc
}

// Server binds link-aware handlers to a rivaas router.
type Server struct {
	router   *router.Router
	registry *linkable.Registry
	linker   *hateoas.Linker
	problems riverrors.Formatter
	metrics  *Metrics
	logger   *slog.Logger
	served   map[string]linkable.Descriptor

	verbosity      hateoas.Verbosity
	baseURL        string
	absolute       bool
	problemBaseURL string
}

// New creates a Server that adds routes to r and endpoints to reg.
func New(r *router.Router, reg *linkable.Registry, opts ...Option) (*Server, error) {
	if r == nil {
		return nil, errors.New("router is required")
	}
	if reg == nil {
		return nil, errors.New("registry is required")
	}

	s := &Server{
		router:   r,
		registry: reg,
		logger:   noopLogger,
		served:   make(map[string]linkable.Descriptor),
	}
	for _, opt := range opts {
		opt(s)
	}

	linker, err := hateoas.New(
		hateoas.WithRegistry(reg),
		hateoas.WithVerbosity(s.verbosity),
		hateoas.WithBaseURL(s.baseURL),
		hateoas.WithLogger(s.logger),
	)
	if err != nil {
		return nil, err
	}
	s.linker = linker
	s.problems = riverrors.NewRFC9457(s.problemBaseURL)

	return s, nil
}

// MustNew creates a Server and panics on error.
func MustNew(r *router.Router, reg *linkable.Registry, opts ...Option) *Server {
	s, err := New(r, reg, opts...)
	if err != nil {
		panic(fmt.Sprintf("web: %v", err))
	}
	return s
}

// Linker returns the linker responses are built with.
func (s *Server) Linker() *hateoas.Linker {
	return s.linker
}

// Registry returns the link registry.
func (s *Server) Registry() *linkable.Registry {
	return s.registry
}

// Router returns the underlying router.
func (s *Server) Router() *router.Router {
	return s.router
}

// Handle registers the routes of one resource: each endpoint is added to the
// registry under its ID and to the router under the same name.
// Routes without a handler are registered as link targets only.
func (s *Server) Handle(resourcePath string, routes ...Route) error {
	res := linkable.Resource{Path: resourcePath, Endpoints: make([]linkable.Endpoint, len(routes))}
	seen := make(map[string]bool, len(routes))
	for i, rt := range routes {
		if seen[rt.ID] || s.registry.Has(rt.ID) {
			return fmt.Errorf("%w: %q", ErrDuplicateRoute, rt.ID)
		}
		seen[rt.ID] = true
		res.Endpoints[i] = linkable.Endpoint{
			ID:          rt.ID,
			Path:        rt.Path,
			Rel:         rt.Rel,
			Method:      string(rt.Method),
			Consumes:    rt.Consumes,
			Produces:    rt.Produces,
			Label:       rt.Label,
			Description: rt.Description,
			Template:    rt.Template,
		}
	}

	descriptors, err := res.Descriptors()
	if err != nil {
		return err
	}

	for i, d := range descriptors {
		tmpl, err := expand.Parse(d.Path)
		if err != nil {
			return fmt.Errorf("route %q: %w", d.ID, err)
		}
		if err := s.registry.Register(d); err != nil {
			return err
		}
		if routes[i].Handler == nil {
			continue
		}

		s.served[d.ID] = d
		pattern := tmpl.Rewrite(func(name string) string { return ":" + name })
		added := s.add(d.Method, pattern, s.wrap(d, routes[i].Handler)).SetName(d.ID)
		if d.Description != "" {
			added.SetDescription(d.Description)
		}
	}
	return nil
}

// Map registers endpoint tables alongside the handled routes, typically
// link targets served elsewhere. A table may replace the metadata of an
// endpoint that has a handler (rel, media types, label, description) but not
// its method or path, since the router only serves the registered pattern.
// Nothing is registered when any endpoint conflicts.
func (s *Server) Map(resources ...linkable.Resource) error {
	var descriptors []linkable.Descriptor
	for _, res := range resources {
		ds, err := res.Descriptors()
		if err != nil {
			return err
		}
		descriptors = append(descriptors, ds...)
	}

	for _, d := range descriptors {
		served, ok := s.served[d.ID]
		if !ok || (served.Method == d.Method && served.Path == d.Path) {
			continue
		}
		return fmt.Errorf("%w: %q is served at %s %s, not %s %s",
			ErrServedEndpoint, d.ID, served.Method, served.Path, d.Method, d.Path)
	}

	for _, d := range descriptors {
		if err := s.registry.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// MustHandle is like Handle but panics on error.
func (s *Server) MustHandle(resourcePath string, routes ...Route) {
	if err := s.Handle(resourcePath, routes...); err != nil {
		panic(fmt.Sprintf("web: %v", err))
	}
}

// Freeze ends registration: the registry becomes read-only and the router
// compiles its routes.
func (s *Server) Freeze() {
	s.registry.Freeze()
	s.router.Freeze()
}

func (s *Server) add(method linkable.Method, pattern string, h router.HandlerFunc) *route.Route {
	switch method {
	case linkable.MethodPost:
		return s.router.POST(pattern, h)
	case linkable.MethodPut:
		return s.router.PUT(pattern, h)
	case linkable.MethodDelete:
		return s.router.DELETE(pattern, h)
	case linkable.MethodOptions:
		return s.router.OPTIONS(pattern, h)
	default:
		return s.router.GET(pattern, h)
	}
}

// Response returns a builder for the request, with the base URL taken from
// the request when absolute links are enabled.
func (s *Server) Response(c *router.Context) *hateoas.Builder {
	res := s.linker.Response()
	if s.absolute && s.baseURL == "" {
		res.BaseURL(c.BaseURL())
	}
	return res
}

func (s *Server) wrap(d linkable.Descriptor, h HandlerFunc) router.HandlerFunc {
	contentType := d.ContentType()
	if contentType == "" {
		contentType = defaultContentType
	}

	return func(c *router.Context) {
		res := s.Response(c)
		if err := h(c, res); err != nil {
			s.fail(c, d.ID, err)
			return
		}
		env, err := res.Build()
		if err != nil {
			s.fail(c, d.ID, err)
			return
		}
		if err := s.write(c, env, contentType); err != nil {
			s.fail(c, d.ID, err)
			return
		}
		s.metrics.observe(d.ID, env)
	}
}
