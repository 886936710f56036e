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
	"net/http"

	"github.com/goccy/go-json"
	riverrors "rivaas.dev/errors"
	"rivaas.dev/router"

	"rivaas.dev/hateoas"
	"rivaas.dev/hateoas/linkable"
)

const defaultContentType = "application/json; charset=utf-8"

// NotFound returns an error for a missing resource, written as a 404 problem.
func NotFound(resource, id string) error {
	return riverrors.WithStatus(fmt.Errorf("%s %q not found", resource, id), http.StatusNotFound)
}

// BadRequest wraps err so it is written as a 400 problem.
func BadRequest(err error) error {
	return riverrors.WithStatus(err, http.StatusBadRequest)
}

// Conflict wraps err so it is written as a 409 problem.
func Conflict(err error) error {
	return riverrors.WithStatus(err, http.StatusConflict)
}

// write encodes env and writes it with its status and Location header.
func (s *Server) write(c *router.Context, env *hateoas.Envelope, contentType string) error {
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	if env.Location != "" {
		c.Header("Location", env.Location)
	}
	if env.Status == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return nil
	}
	return c.Data(env.Status, contentType, data)
}

// fail writes err as an RFC 9457 problem.
func (s *Server) fail(c *router.Context, endpoint string, err error) {
	s.Error(c, err)
	s.metrics.failure(endpoint, err)
}

// Error writes err as an RFC 9457 problem. Errors carrying an HTTP status
// (see [riverrors.WithStatus]) keep it; unknown endpoints, expansion failures
// and other link errors are server errors.
func (s *Server) Error(c *router.Context, err error) {
	resp := s.problems.Format(c.Request, err)

	log := s.logger.Debug
	if resp.Status >= http.StatusInternalServerError {
		log = s.logger.Error
	}
	log("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", resp.Status,
		"error", err,
	)

	data, mErr := json.Marshal(resp.Body)
	if mErr != nil {
		s.logger.Error("failed to render problem", "error", mErr)
		c.Status(resp.Status)
		return
	}
	for k, values := range resp.Headers {
		for _, v := range values {
			c.Response.Header().Add(k, v)
		}
	}
	if wErr := c.Data(resp.Status, resp.ContentType, data); wErr != nil {
		s.logger.Error("failed to write problem", "error", wErr)
	}
}

// errorCode returns the machine-readable code of err, or "internal".
func errorCode(err error) string {
	var coded riverrors.ErrorCode
	if errors.As(err, &coded) {
		return coded.Code()
	}
	var typed riverrors.ErrorType
	if errors.As(err, &typed) {
		return fmt.Sprintf("http_%d", typed.HTTPStatus())
	}
	if errors.Is(err, linkable.ErrUnknownEndpoint) {
		return "unknown_endpoint"
	}
	return "internal"
}
