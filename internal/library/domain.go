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
	"time"
)

var (
	// ErrCustomerNotFound indicates an unknown customer id.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrBookNotFound indicates an unknown book id.
	ErrBookNotFound = errors.New("book not found")

	// ErrLoanNotFound indicates a book that is not on loan.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrBookOnLoan indicates a book that is already borrowed.
	ErrBookOnLoan = errors.New("book is already on loan")
)

// Customer is a library member.
type Customer struct {
	ID   int
	Name string
}

// Book is a lendable title. Its id is a UUID.
type Book struct {
	ID     string
	Author string
	Title  string
}

// Loan records a book borrowed by a customer. A book has at most one loan.
type Loan struct {
	BookID     string
	CustomerID int
	Since      time.Time
}

// NotFoundError names the missing entity.
type NotFoundError struct {
	Kind string
	ID   string
	Err  error
}

// Error returns the error message.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// Unwrap returns the sentinel error.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}
