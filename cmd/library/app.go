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

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"rivaas.dev/logging"
	"rivaas.dev/openapi"
	"rivaas.dev/router"

	"rivaas.dev/hateoas/internal/library"
	"rivaas.dev/hateoas/linkable"
	"rivaas.dev/hateoas/web"
)

// app is the wired library server.
type app struct {
	router   *router.Router
	registry *linkable.Registry
	metrics  *prometheus.Registry
	openapi  *openapi.Result
}

// newApp wires the router, registry, link server and store from cfg and
// freezes registration.
func newApp(ctx context.Context, cfg Config, logger *slog.Logger) (*app, error) {
	r, err := router.New()
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}
	reg := linkable.NewRegistry(linkable.WithLogger(logger))

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := web.NewMetrics(promReg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	srv, err := web.New(r, reg,
		web.WithLogger(logger),
		web.WithVerbosity(cfg.verbosity()),
		web.WithBaseURL(cfg.BaseURL),
		web.WithAbsoluteLinks(cfg.AbsoluteLinks),
		web.WithProblemBaseURL(cfg.ProblemsURL),
		web.WithMetrics(metrics),
	)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	store := library.NewStore()
	if cfg.Seed {
		store.Seed()
	}
	if err := library.Mount(srv, store); err != nil {
		return nil, fmt.Errorf("mount library: %w", err)
	}

	// Endpoint tables from file add link targets served elsewhere, or
	// replace the metadata of library endpoints.
	if cfg.Endpoints != "" {
		resources, err := linkable.LoadFile(cfg.Endpoints)
		if err != nil {
			return nil, err
		}
		if err := srv.Map(resources...); err != nil {
			return nil, fmt.Errorf("map endpoints from %s: %w", cfg.Endpoints, err)
		}
	}

	if cfg.MetricsPath != "" {
		h := promhttp.HandlerFor(promReg, promhttp.HandlerOpts{})
		r.GET(cfg.MetricsPath, func(c *router.Context) {
			h.ServeHTTP(c.Response, c.Request)
		})
	}

	api, err := openapi.New(apiOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("configure openapi: %w", err)
	}
	doc, err := srv.OpenAPI(ctx, api)
	if err != nil {
		return nil, err
	}
	if cfg.OpenAPIPath != "" {
		r.GET(cfg.OpenAPIPath, func(c *router.Context) {
			if err := c.Data(http.StatusOK, "application/json", doc.JSON); err != nil {
				logger.Debug("write openapi document failed", "error", err)
			}
		})
	}

	srv.Freeze()

	return &app{router: r, registry: reg, metrics: promReg, openapi: doc}, nil
}

func apiOptions(cfg Config) []openapi.Option {
	opts := []openapi.Option{
		openapi.WithTitle("Library", library.Version),
		openapi.WithInfoDescription("Customers, books and loans with hypermedia links."),
	}
	if cfg.OpenAPIPath != "" {
		opts = append(opts, openapi.WithSpecPath(cfg.OpenAPIPath))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openapi.WithServer(cfg.BaseURL, "Configured base URL"))
	}
	return opts
}

// newLogger builds the process logger. The returned function flushes it.
func newLogger(cfg Config, out io.Writer) (*slog.Logger, func(context.Context) error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := []logging.Option{
		logging.WithServiceName("library"),
		logging.WithServiceVersion(library.Version),
		logging.WithLevel(level),
		logging.WithOutput(out),
	}
	if cfg.LogFormat == "json" {
		opts = append(opts, logging.WithJSONHandler())
	} else {
		opts = append(opts, logging.WithConsoleHandler())
	}

	l, err := logging.New(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return l.Logger(), l.Shutdown, nil
}
