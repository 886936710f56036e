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

import "time"

// RootDTO is the entry point of the API.
type RootDTO struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CustomerDTO is the representation of a customer.
type CustomerDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// NewCustomerDTO is the body accepted when creating a customer.
type NewCustomerDTO struct {
	Name string `json:"name" validate:"required,max=200"`
}

// BookDTO is the representation of a book.
type BookDTO struct {
	ID     string `json:"id"`
	Author string `json:"author"`
	Title  string `json:"title"`
	OnLoan bool   `json:"onLoan"`
}

// NewBookDTO is the body accepted when adding a book.
type NewBookDTO struct {
	Author string `json:"author" validate:"required,max=200"`
	Title  string `json:"title" validate:"required,max=200"`
}

// BookSummary is the part of a book embedded in a loan.
type BookSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// LoanDTO is the representation of a loan.
type LoanDTO struct {
	BookID     string      `json:"bookId"`
	CustomerID int         `json:"customerId"`
	Since      time.Time   `json:"since"`
	Book       BookSummary `json:"book"`
}

// NewLoanDTO is the body accepted when lending a book.
type NewLoanDTO struct {
	BookID     string `json:"bookId" validate:"required,uuid"`
	CustomerID int    `json:"customerId" validate:"required,gt=0"`
}

func customerDTO(c Customer) CustomerDTO {
	return CustomerDTO{ID: c.ID, Name: c.Name}
}

func customerDTOs(cs []Customer) []CustomerDTO {
	out := make([]CustomerDTO, len(cs))
	for i, c := range cs {
		out[i] = customerDTO(c)
	}
	return out
}

func bookDTO(b Book, onLoan bool) BookDTO {
	return BookDTO{ID: b.ID, Author: b.Author, Title: b.Title, OnLoan: onLoan}
}

func loanDTO(l Loan, b Book) LoanDTO {
	return LoanDTO{
		BookID:     l.BookID,
		CustomerID: l.CustomerID,
		Since:      l.Since,
		Book:       BookSummary{ID: b.ID, Title: b.Title},
	}
}
