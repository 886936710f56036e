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
	"errors"
	"fmt"
)

var (
	// ErrUnknownEndpoint indicates a lookup of an identifier that was never registered.
	ErrUnknownEndpoint = errors.New("unknown endpoint")

	// ErrInvalidDescriptor indicates a descriptor that cannot be registered.
	ErrInvalidDescriptor = errors.New("invalid endpoint descriptor")

	// ErrFrozen indicates a registration after the registry was frozen.
	ErrFrozen = errors.New("registry is frozen")
)

// UnknownEndpointError reports the identifier that could not be found.
type UnknownEndpointError struct {
	ID string
}

// Error returns the error message.
func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownEndpoint, e.ID)
}

// Is reports whether target is ErrUnknownEndpoint.
func (e *UnknownEndpointError) Is(target error) bool {
	return target == ErrUnknownEndpoint
}

// Code returns a machine-readable error code.
func (e *UnknownEndpointError) Code() string {
	return "unknown_endpoint"
}
