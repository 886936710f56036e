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

package hateoas

import (
	"io"
	"log/slog"

	"rivaas.dev/hateoas/linkable"
)

// Option configures a [Linker].
type Option func(*Linker)

// noopLogger discards everything; used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// WithRegistry sets the registry links are resolved against.
// Defaults to [linkable.Default].
func WithRegistry(reg *linkable.Registry) Option {
	return func(l *Linker) {
		l.registry = reg
	}
}

// WithVerbosity sets how much metadata each rendered link carries.
// Defaults to [Maximum].
func WithVerbosity(v Verbosity) Option {
	return func(l *Linker) {
		l.verbosity = v
	}
}

// WithBaseURL prefixes every resolved href and Location with baseURL, for
// example "https://api.example.com". Requests may override it with
// [Builder.BaseURL].
func WithBaseURL(baseURL string) Option {
	return func(l *Linker) {
		l.baseURL = baseURL
	}
}

// WithLogger sets the logger used to report link resolution failures at
// debug level. Pass nil to discard.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Linker) {
		if logger == nil {
			logger = noopLogger
		}
		l.logger = logger
	}
}
