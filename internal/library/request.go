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

package library

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"rivaas.dev/router"
	"rivaas.dev/validation"

	"rivaas.dev/hateoas/web"
)

// decode reads a JSON body into dst and validates it.
//
// Malformed bodies answer 400; bodies that decode but break a validate tag
// answer 422 with the invalid fields as problem details.
func decode(c *router.Context, dst any) error {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return web.BadRequest(errors.New("request body is empty"))
		}
		return web.BadRequest(fmt.Errorf("malformed request body: %w", err))
	}

	return validation.Validate(c.Request.Context(), dst,
		validation.WithStrategy(validation.StrategyTags),
		validation.WithMaxErrors(10),
	)
}

// problem maps store errors to HTTP errors.
func problem(err error) error {
	var nf *NotFoundError
	switch {
	case errors.As(err, &nf):
		return web.NotFound(nf.Kind, nf.ID)
	case errors.Is(err, ErrBookOnLoan):
		return web.Conflict(err)
	default:
		return err
	}
}
