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

// Package library is a small lending library served with hypermedia links:
// customers, books and the loans between them, kept in memory.
package library

// Endpoint identifiers. Links refer to endpoints by these names only.
const (
	RootID = "ROOT"

	CustomerListID    = "CUSTOMER_LIST"
	CustomerNewID     = "CUSTOMER_NEW"
	CustomerDetailsID = "CUSTOMER_DETAILS"
	CustomerLoansID   = "CUSTOMER_LOANS"

	BookListID    = "BOOK_LIST"
	BookNewID     = "BOOK_NEW"
	BookDetailsID = "BOOK_DETAILS"

	LoanListID    = "LOAN_LIST"
	LoanNewID     = "LOAN_NEW"
	LoanDetailsID = "LOAN_DETAILS"
	LoanReturnID  = "LOAN_RETURN"
)

// Link relations specific to the library.
const (
	RelCustomers = "customers"
	RelBooks     = "books"
	RelLoans     = "loans"
	RelBook      = "book"
	RelCustomer  = "customer"
	RelLoan      = "loan"
	RelBorrow    = "borrow"
	RelReturn    = "return"
	RelCreate    = "create"
)

// Media types.
const (
	mediaCustomer     = "application/vnd.demo.library.customer+json"
	mediaCustomerList = "application/vnd.demo.library.list.customer+json"
	mediaBook         = "application/vnd.demo.library.book+json"
	mediaBookList     = "application/vnd.demo.library.list.book+json"
	mediaLoan         = "application/vnd.demo.library.loan+json"
	mediaLoanList     = "application/vnd.demo.library.list.loan+json"
	mediaRoot         = "application/vnd.demo.library.root+json"
)

// RootPath is the path every library resource lives under.
const RootPath = "/library"
