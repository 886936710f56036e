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
	"cmp"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store keeps customers, books and loans in memory.
// It is safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	customers map[int]Customer
	books     map[string]Book
	loans     map[string]Loan // by book id
	nextID    int
	now       func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		customers: make(map[int]Customer),
		books:     make(map[string]Book),
		loans:     make(map[string]Loan),
		nextID:    1,
		now:       time.Now,
	}
}

// Seed fills the store with a few customers and books.
func (s *Store) Seed() {
	for _, name := range []string{"Ann Andersson", "Bob Berg", "Cecilia Carlsson"} {
		s.NewCustomer(name)
	}
	for _, b := range [][2]string{
		{"Astrid Lindgren", "Pippi Longstocking"},
		{"Selma Lagerlöf", "The Wonderful Adventures of Nils"},
		{"Tove Jansson", "Finn Family Moomintroll"},
	} {
		s.NewBook(b[0], b[1])
	}
}

// NewCustomer adds a customer and assigns the next id.
func (s *Store) NewCustomer(name string) Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Customer{ID: s.nextID, Name: name}
	s.nextID++
	s.customers[c.ID] = c
	return c
}

// Customer returns the customer with id.
func (s *Store) Customer(id int) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[id]
	if !ok {
		return Customer{}, &NotFoundError{Kind: "customer", ID: strconv.Itoa(id), Err: ErrCustomerNotFound}
	}
	return c, nil
}

// Customers returns every customer ordered by id.
func (s *Store) Customers() []Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Customer) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// NewBook adds a book with a random id.
func (s *Store) NewBook(author, title string) Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := Book{ID: uuid.NewString(), Author: author, Title: title}
	s.books[b.ID] = b
	return b
}

// Book returns the book with id.
func (s *Store) Book(id string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, &NotFoundError{Kind: "book", ID: id, Err: ErrBookNotFound}
	}
	return b, nil
}

// Books returns every book ordered by title, then id.
func (s *Store) Books() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b Book) int {
		return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Lend records a loan of the book to the customer.
func (s *Store) Lend(bookID string, customerID int) (Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[bookID]; !ok {
		return Loan{}, &NotFoundError{Kind: "book", ID: bookID, Err: ErrBookNotFound}
	}
	if _, ok := s.customers[customerID]; !ok {
		return Loan{}, &NotFoundError{Kind: "customer", ID: strconv.Itoa(customerID), Err: ErrCustomerNotFound}
	}
	if _, ok := s.loans[bookID]; ok {
		return Loan{}, ErrBookOnLoan
	}

	l := Loan{BookID: bookID, CustomerID: customerID, Since: s.now().UTC()}
	s.loans[bookID] = l
	return l, nil
}

// Return ends the loan of the book.
func (s *Store) Return(bookID string) (Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loans[bookID]
	if !ok {
		return Loan{}, &NotFoundError{Kind: "loan", ID: bookID, Err: ErrLoanNotFound}
	}
	delete(s.loans, bookID)
	return l, nil
}

// Loan returns the loan of the book.
func (s *Store) Loan(bookID string) (Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.loans[bookID]
	if !ok {
		return Loan{}, &NotFoundError{Kind: "loan", ID: bookID, Err: ErrLoanNotFound}
	}
	return l, nil
}

// Loans returns every loan ordered by start time, then book id.
func (s *Store) Loans() []Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLoans(func(Loan) bool { return true })
}

// CustomerLoans returns the loans of one customer.
func (s *Store) CustomerLoans(customerID int) ([]Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.customers[customerID]; !ok {
		return nil, &NotFoundError{Kind: "customer", ID: strconv.Itoa(customerID), Err: ErrCustomerNotFound}
	}
	return s.sortedLoans(func(l Loan) bool { return l.CustomerID == customerID }), nil
}

func (s *Store) sortedLoans(keep func(Loan) bool) []Loan {
	out := make([]Loan, 0, len(s.loans))
	for _, l := range s.loans {
		if keep(l) {
			out = append(out, l)
		}
	}
	slices.SortFunc(out, func(a, b Loan) int {
		return cmp.Or(a.Since.Compare(b.Since), cmp.Compare(a.BookID, b.BookID))
	})
	return out
}
