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
	"strconv"

	"rivaas.dev/router"

	"rivaas.dev/hateoas"
	"rivaas.dev/hateoas/expand"
	"rivaas.dev/hateoas/linkable"
	"rivaas.dev/hateoas/web"
)

// Version is reported by the root resource.
const Version = "1.0"

type handlers struct {
	store *Store
}

// Mount registers the library resources on srv.
func Mount(srv *web.Server, store *Store) error {
	h := &handlers{store: store}

	if err := srv.Handle(RootPath, web.Route{
		ID:       RootID,
		Method:   linkable.MethodGet,
		Produces: []string{mediaRoot},
		Label:    "Library",
		Handler:  h.root,
	}); err != nil {
		return err
	}

	if err := srv.Handle(RootPath+"/customers",
		web.Route{
			ID:       CustomerListID,
			Method:   linkable.MethodGet,
			Produces: []string{mediaCustomerList},
			Label:    "Customers",
			Handler:  h.listCustomers,
		},
		web.Route{
			ID:          CustomerNewID,
			Method:      linkable.MethodPost,
			Consumes:    []string{mediaCustomer},
			Produces:    []string{mediaCustomer},
			Label:       "New customer",
			Description: "Registers a new library customer",
			Template:    linkable.TemplateOf[NewCustomerDTO](),
			Handler:     h.newCustomer,
		},
		web.Route{
			ID:       CustomerDetailsID,
			Method:   linkable.MethodGet,
			Path:     "/{id}",
			Produces: []string{mediaCustomer},
			Handler:  h.getCustomer,
		},
		web.Route{
			ID:       CustomerLoansID,
			Method:   linkable.MethodGet,
			Path:     "/{id}/loans",
			Produces: []string{mediaLoanList},
			Label:    "Loans of a customer",
			Handler:  h.getCustomerLoans,
		},
	); err != nil {
		return err
	}

	if err := srv.Handle(RootPath+"/books",
		web.Route{
			ID:       BookListID,
			Method:   linkable.MethodGet,
			Produces: []string{mediaBookList},
			Label:    "Books",
			Handler:  h.listBooks,
		},
		web.Route{
			ID:       BookNewID,
			Method:   linkable.MethodPost,
			Consumes: []string{mediaBook},
			Produces: []string{mediaBook},
			Label:    "New book",
			Template: linkable.TemplateOf[NewBookDTO](),
			Handler:  h.newBook,
		},
		web.Route{
			ID:       BookDetailsID,
			Method:   linkable.MethodGet,
			Path:     "/{id}",
			Produces: []string{mediaBook},
			Handler:  h.getBook,
		},
	); err != nil {
		return err
	}

	return srv.Handle(RootPath+"/loans",
		web.Route{
			ID:       LoanListID,
			Method:   linkable.MethodGet,
			Produces: []string{mediaLoanList},
			Label:    "Loans",
			Handler:  h.listLoans,
		},
		web.Route{
			ID:          LoanNewID,
			Method:      linkable.MethodPost,
			Consumes:    []string{mediaLoan},
			Produces:    []string{mediaLoan},
			Label:       "Borrow a book",
			Description: "Lends a book that is not on loan to a customer",
			Template:    linkable.TemplateOf[NewLoanDTO](),
			Handler:     h.newLoan,
		},
		web.Route{
			ID:       LoanDetailsID,
			Method:   linkable.MethodGet,
			Path:     "/{bookId}",
			Produces: []string{mediaLoan},
			Handler:  h.getLoan,
		},
		web.Route{
			ID:       LoanReturnID,
			Method:   linkable.MethodDelete,
			Path:     "/{bookId}",
			Produces: []string{mediaLoan},
			Label:    "Return a book",
			Handler:  h.returnLoan,
		},
	)
}

func (h *handlers) root(_ *router.Context, res *hateoas.Builder) error {
	res.OK(RootDTO{Name: "library", Version: Version}).
		SelfLink(RootID).
		Link(CustomerListID, RelCustomers).
		Link(BookListID, RelBooks).
		Link(LoanListID, RelLoans)
	return nil
}

// Customers

func (h *handlers) listCustomers(_ *router.Context, res *hateoas.Builder) error {
	res.OK(customerDTOs(h.store.Customers())).
		SelfLink(CustomerListID).
		Link(CustomerNewID, RelCreate).
		Link(RootID, hateoas.RelRelated).
		SelfEach(CustomerDetailsID, expand.Field("id")).
		Each(CustomerLoansID, RelLoans, expand.Field("id"))
	return nil
}

func (h *handlers) newCustomer(c *router.Context, res *hateoas.Builder) error {
	var in NewCustomerDTO
	if err := decode(c, &in); err != nil {
		return err
	}

	cust := h.store.NewCustomer(in.Name)
	res.Entity(customerDTO(cust)).
		Created(CustomerDetailsID, expand.Field("id")).
		SelfLink(CustomerDetailsID, expand.Field("id"))
	return nil
}

func (h *handlers) getCustomer(c *router.Context, res *hateoas.Builder) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	cust, err := h.store.Customer(id)
	if err != nil {
		return problem(err)
	}

	res.OK(customerDTO(cust)).
		SelfLink(CustomerDetailsID, expand.Field("id")).
		Link(CustomerLoansID, RelLoans, expand.Field("id")).
		Link(CustomerListID, RelCustomers)
	return nil
}

func (h *handlers) getCustomerLoans(c *router.Context, res *hateoas.Builder) error {
	id, err := customerID(c)
	if err != nil {
		return err
	}
	loans, err := h.store.CustomerLoans(id)
	if err != nil {
		return problem(err)
	}
	dtos, err := h.loanDTOs(loans)
	if err != nil {
		return err
	}

	res.OK(dtos).
		SelfLink(CustomerLoansID, expand.Value(id)).
		Link(CustomerDetailsID, RelCustomer, expand.Value(id)).
		SelfEach(LoanDetailsID, expand.Field("bookId")).
		LinkAt(hateoas.Path("book"), BookDetailsID, hateoas.RelSelf, expand.Field("id"))
	return nil
}

func customerID(c *router.Context) (int, error) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, web.NotFound("customer", raw)
	}
	return id, nil
}

// Books

func (h *handlers) listBooks(_ *router.Context, res *hateoas.Builder) error {
	books := h.store.Books()
	dtos := make([]BookDTO, len(books))
	for i, b := range books {
		_, err := h.store.Loan(b.ID)
		dtos[i] = bookDTO(b, err == nil)
	}

	res.OK(dtos).
		SelfLink(BookListID).
		Link(BookNewID, RelCreate).
		SelfEach(BookDetailsID, expand.Field("id"))
	return nil
}

func (h *handlers) newBook(c *router.Context, res *hateoas.Builder) error {
	var in NewBookDTO
	if err := decode(c, &in); err != nil {
		return err
	}

	book := h.store.NewBook(in.Author, in.Title)
	res.Entity(bookDTO(book, false)).
		Created(BookDetailsID, expand.Field("id")).
		SelfLink(BookDetailsID, expand.Field("id")).
		Link(LoanNewID, RelBorrow, expand.QueryField("bookId", "id"))
	return nil
}

func (h *handlers) getBook(c *router.Context, res *hateoas.Builder) error {
	book, err := h.store.Book(c.Param("id"))
	if err != nil {
		return problem(err)
	}
	_, loanErr := h.store.Loan(book.ID)
	onLoan := loanErr == nil

	res.OK(bookDTO(book, onLoan)).
		SelfLink(BookDetailsID, expand.Field("id")).
		Link(BookListID, RelBooks)
	if onLoan {
		res.Link(LoanDetailsID, RelLoan, expand.Field("id"))
	} else {
		res.Link(LoanNewID, RelBorrow, expand.QueryField("bookId", "id"))
	}
	return nil
}

// Loans

func (h *handlers) loanDTOs(loans []Loan) ([]LoanDTO, error) {
	dtos := make([]LoanDTO, len(loans))
	for i, l := range loans {
		book, err := h.store.Book(l.BookID)
		if err != nil {
			return nil, problem(err)
		}
		dtos[i] = loanDTO(l, book)
	}
	return dtos, nil
}

func (h *handlers) loan(bookID string) (LoanDTO, error) {
	l, err := h.store.Loan(bookID)
	if err != nil {
		return LoanDTO{}, problem(err)
	}
	book, err := h.store.Book(l.BookID)
	if err != nil {
		return LoanDTO{}, problem(err)
	}
	return loanDTO(l, book), nil
}

func (h *handlers) listLoans(_ *router.Context, res *hateoas.Builder) error {
	dtos, err := h.loanDTOs(h.store.Loans())
	if err != nil {
		return err
	}

	res.OK(dtos).
		SelfLink(LoanListID).
		Link(LoanNewID, RelCreate).
		SelfEach(LoanDetailsID, expand.Field("bookId")).
		Each(CustomerDetailsID, RelCustomer, expand.Field("customerId")).
		Each(LoanReturnID, RelReturn, expand.Field("bookId")).
		LinkAt(hateoas.Path("book"), BookDetailsID, hateoas.RelSelf, expand.Field("id"))
	return nil
}

func (h *handlers) newLoan(c *router.Context, res *hateoas.Builder) error {
	var in NewLoanDTO
	if err := decode(c, &in); err != nil {
		return err
	}

	l, err := h.store.Lend(in.BookID, in.CustomerID)
	if err != nil {
		return problem(err)
	}
	book, err := h.store.Book(l.BookID)
	if err != nil {
		return problem(err)
	}

	h.loanLinks(res.Entity(loanDTO(l, book)).Created(LoanDetailsID, expand.Field("bookId")))
	return nil
}

func (h *handlers) getLoan(c *router.Context, res *hateoas.Builder) error {
	dto, err := h.loan(c.Param("bookId"))
	if err != nil {
		return err
	}
	h.loanLinks(res.OK(dto))
	return nil
}

func (h *handlers) loanLinks(res *hateoas.Builder) {
	res.SelfLink(LoanDetailsID, expand.Field("bookId")).
		Link(BookDetailsID, RelBook, expand.Field("bookId")).
		Link(CustomerDetailsID, RelCustomer, expand.Field("customerId")).
		Link(LoanReturnID, RelReturn, expand.Field("bookId")).
		LinkAt(hateoas.Path("book"), BookDetailsID, hateoas.RelSelf, expand.Field("id"))
}

func (h *handlers) returnLoan(c *router.Context, res *hateoas.Builder) error {
	l, err := h.store.Return(c.Param("bookId"))
	if err != nil {
		return problem(err)
	}
	book, err := h.store.Book(l.BookID)
	if err != nil {
		return problem(err)
	}

	res.OK(loanDTO(l, book)).
		Link(BookDetailsID, RelBook, expand.Field("bookId")).
		Link(LoanNewID, RelBorrow, expand.QueryField("bookId", "bookId"))
	return nil
}
