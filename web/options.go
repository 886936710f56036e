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
	"io"
	"log/slog"

	"rivaas.dev/hateoas"
)

// Option configures a [Server].
type Option func(*Server)

var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithLogger sets the logger for request failures. Pass nil to discard.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger == nil {
			logger = noopLogger
		}
		s.logger = logger
	}
}

// WithVerbosity sets the verbosity of rendered links. Defaults to [hateoas.Maximum].
func WithVerbosity(v hateoas.Verbosity) Option {
	return func(s *Server) {
		s.verbosity = v
	}
}

// WithBaseURL renders absolute links under a fixed base URL, for example
// "https://api.example.com". It takes precedence over [WithAbsoluteLinks].
func WithBaseURL(baseURL string) Option {
	return func(s *Server) {
		s.baseURL = baseURL
	}
}

// WithAbsoluteLinks renders absolute links using the scheme and host of each
// request, honoring X-Forwarded-Proto. Links are relative by default.
func WithAbsoluteLinks(enabled bool) Option {
	return func(s *Server) {
		s.absolute = enabled
	}
}

// WithProblemBaseURL sets the base URL of problem type URIs in error responses.
func WithProblemBaseURL(baseURL string) Option {
	return func(s *Server) {
		s.problemBaseURL = baseURL
	}
}

// WithMetrics records response and link counts in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}
