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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rivaas.dev/router"

	"rivaas.dev/hateoas"
	"rivaas.dev/hateoas/expand"
	"rivaas.dev/hateoas/linkable"
)

type customer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var customers = map[string]customer{
	"7": {ID: "7", Name: "Ann"},
	"8": {ID: "8", Name: "Bob"},
}

func listCustomers(_ *router.Context, res *hateoas.Builder) error {
	res.OK([]customer{customers["7"], customers["8"]}).
		SelfLink("CUSTOMER_LIST").
		SelfEach("CUSTOMER_DETAILS", expand.Field("id"))
	return nil
}

func getCustomer(c *router.Context, res *hateoas.Builder) error {
	cust, ok := customers[c.Param("id")]
	if !ok {
		return NotFound("customer", c.Param("id"))
	}
	res.OK(cust).
		SelfLink("CUSTOMER_DETAILS", expand.Field("id")).
		Link("CUSTOMER_LIST", "up")
	return nil
}

func createCustomer(_ *router.Context, res *hateoas.Builder) error {
	res.Entity(customer{ID: "9", Name: "Cid"}).
		Created("CUSTOMER_DETAILS", expand.Field("id"))
	return nil
}

func newTestServer(t *testing.T, opts ...Option) (*Server, *router.Router) {
	t.Helper()

	r := router.MustNew()
	srv := MustNew(r, linkable.NewRegistry(), append([]Option{WithVerbosity(hateoas.Minimal)}, opts...)...)
	srv.MustHandle("/library/customers/",
		Route{ID: "CUSTOMER_LIST", Method: linkable.MethodGet, Handler: listCustomers},
		Route{ID: "CUSTOMER_NEW", Method: linkable.MethodPost, Consumes: []string{"application/json"}, Handler: createCustomer},
		Route{
			ID:          "CUSTOMER_DETAILS",
			Method:      linkable.MethodGet,
			Path:        "/{id}",
			Produces:    []string{"application/vnd.library+json"},
			Description: "Customer details",
			Handler:     getCustomer,
		},
		Route{ID: "CUSTOMER_LOANS", Method: linkable.MethodGet, Path: "/{id}/loans"},
	)
	srv.Freeze()
	return srv, r
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandle_RegistersDescriptors(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)
	reg := srv.Registry()

	assert.True(t, reg.Frozen())
	assert.Equal(t, 4, reg.Len())

	d, err := reg.Lookup("CUSTOMER_DETAILS")
	require.NoError(t, err)
	assert.Equal(t, "/library/customers/{id}", d.Path)
	assert.Equal(t, "Customer details", d.Description)

	d, err = reg.Lookup("CUSTOMER_LIST")
	require.NoError(t, err)
	assert.Equal(t, "/library/customers", d.Path)

	assert.True(t, reg.Has("CUSTOMER_LOANS"), "link-only routes are registered")
}

func TestHandle_RouteNamesMatchRegistry(t *testing.T) {
	t.Parallel()

	srv, r := newTestServer(t)

	href, err := expand.Expand("/library/customers/{id}", customers["7"], expand.Field("id"))
	require.NoError(t, err)

	url, err := r.URLFor("CUSTOMER_DETAILS", map[string]string{"id": "7"}, nil)
	require.NoError(t, err)
	assert.Equal(t, href, url)

	_, err = r.URLFor("CUSTOMER_LOANS", map[string]string{"id": "7"}, nil)
	require.Error(t, err, "link-only routes are not routed")
	assert.NotNil(t, srv.Router())
}

func TestHandle_Errors(t *testing.T) {
	t.Parallel()

	r := router.MustNew()
	srv := MustNew(r, linkable.NewRegistry())
	require.NoError(t, srv.Handle("/a", Route{ID: "A", Method: linkable.MethodGet}))

	err := srv.Handle("/b", Route{ID: "A", Method: linkable.MethodGet})
	require.ErrorIs(t, err, ErrDuplicateRoute)

	err = srv.Handle("/c",
		Route{ID: "C", Method: linkable.MethodGet},
		Route{ID: "C", Method: linkable.MethodPost},
	)
	require.ErrorIs(t, err, ErrDuplicateRoute)

	err = srv.Handle("/d", Route{ID: "D", Method: "PATCH"})
	require.ErrorIs(t, err, linkable.ErrInvalidDescriptor)

	err = srv.Handle("/e", Route{ID: "E", Method: linkable.MethodGet, Path: "/{id"})
	require.ErrorIs(t, err, expand.ErrMalformedTemplate)

	assert.Panics(t, func() {
		srv.MustHandle("/f", Route{Method: linkable.MethodGet})
	})
}

func TestServer_Map(t *testing.T) {
	t.Parallel()

	r := router.MustNew()
	srv := MustNew(r, linkable.NewRegistry())
	srv.MustHandle("/library/customers",
		Route{ID: "CUSTOMER_DETAILS", Method: linkable.MethodGet, Path: "/{id}", Handler: getCustomer},
		Route{ID: "CUSTOMER_LOANS", Method: linkable.MethodGet, Path: "/{id}/loans"},
	)

	err := srv.Map(linkable.Resource{Path: "/library/customers", Endpoints: []linkable.Endpoint{
		{ID: "CUSTOMER_DETAILS", Method: "GET", Path: "/{id}", Label: "Customer"},
		{ID: "CUSTOMER_LOANS", Method: "GET", Path: "/{id}/lendings"},
		{ID: "CATALOG", Method: "GET", Path: "/catalog"},
	}})
	require.NoError(t, err)

	d, err := srv.Registry().Lookup("CUSTOMER_DETAILS")
	require.NoError(t, err)
	assert.Equal(t, "Customer", d.Label)
	d, err = srv.Registry().Lookup("CUSTOMER_LOANS")
	require.NoError(t, err)
	assert.Equal(t, "/library/customers/{id}/lendings", d.Path, "link-only endpoints may move")
	assert.True(t, srv.Registry().Has("CATALOG"))

	tests := []struct {
		name     string
		endpoint linkable.Endpoint
	}{
		{name: "path", endpoint: linkable.Endpoint{ID: "CUSTOMER_DETAILS", Method: "GET", Path: "/{id}/profile"}},
		{name: "method", endpoint: linkable.Endpoint{ID: "CUSTOMER_DETAILS", Method: "PUT", Path: "/{id}"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := srv.Map(linkable.Resource{Path: "/library/customers", Endpoints: []linkable.Endpoint{
				{ID: "OTHER", Method: "GET", Path: "/other"},
				tt.endpoint,
			}})
			require.ErrorIs(t, err, ErrServedEndpoint)
			assert.Contains(t, err.Error(), `"CUSTOMER_DETAILS"`)
			assert.False(t, srv.Registry().Has("OTHER"), "nothing is registered on conflict")
		})
	}
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := New(nil, linkable.NewRegistry())
	require.Error(t, err)

	_, err = New(router.MustNew(), nil)
	require.Error(t, err)

	_, err = New(router.MustNew(), linkable.NewRegistry(), WithBaseURL("not a url"))
	require.Error(t, err)
}

func TestServer_Details(t *testing.T) {
	t.Parallel()

	_, r := newTestServer(t)
	w := serve(r, http.MethodGet, "/library/customers/7")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.library+json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"id": "7",
		"name": "Ann",
		"links": [
			{"rel": "self", "href": "/library/customers/7"},
			{"rel": "up", "href": "/library/customers"}
		]
	}`, w.Body.String())
}

func TestServer_List(t *testing.T) {
	t.Parallel()

	_, r := newTestServer(t)
	w := serve(r, http.MethodGet, "/library/customers")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, defaultContentType, w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"rows": [
			{"id": "7", "name": "Ann", "links": [{"rel": "self", "href": "/library/customers/7"}]},
			{"id": "8", "name": "Bob", "links": [{"rel": "self", "href": "/library/customers/8"}]}
		],
		"links": [{"rel": "self", "href": "/library/customers"}]
	}`, w.Body.String())
}

func TestServer_Created(t *testing.T) {
	t.Parallel()

	_, r := newTestServer(t)
	w := serve(r, http.MethodPost, "/library/customers")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/library/customers/9", w.Header().Get("Location"))
}

func TestServer_NotFoundProblem(t *testing.T) {
	t.Parallel()

	_, r := newTestServer(t)
	w := serve(r, http.MethodGet, "/library/customers/404")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/problem+json"))

	var problem map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.InDelta(t, float64(http.StatusNotFound), problem["status"], 0)
	assert.Equal(t, "/library/customers/404", problem["instance"])
	assert.Contains(t, problem["detail"], `customer "404" not found`)
}

func TestServer_BuildFailureProblem(t *testing.T) {
	t.Parallel()

	r := router.MustNew()
	srv := MustNew(r, linkable.NewRegistry(), WithProblemBaseURL("https://problems.example.com"))
	srv.MustHandle("/broken", Route{
		ID:     "BROKEN",
		Method: linkable.MethodGet,
		Handler: func(_ *router.Context, res *hateoas.Builder) error {
			res.OK(customer{ID: "1"}).SelfLink("MISSING")
			return nil
		},
	})
	srv.Freeze()

	w := serve(r, http.MethodGet, "/broken")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var problem map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	assert.Equal(t, "https://problems.example.com/unknown_endpoint", problem["type"])
}

func TestServer_AbsoluteLinks(t *testing.T) {
	t.Parallel()

	_, r := newTestServer(t, WithAbsoluteLinks(true))

	req := httptest.NewRequest(http.MethodGet, "/library/customers/7", nil)
	req.Host = "api.example.com"
	req.Header.Set("X-Forwarded-Proto", "https")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"href":"https://api.example.com/library/customers/7"`)
}

func TestServer_FixedBaseURL(t *testing.T) {
	t.Parallel()

	_, r := newTestServer(t, WithBaseURL("https://library.example.org"), WithAbsoluteLinks(true))
	w := serve(r, http.MethodPost, "/library/customers")

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "https://library.example.org/library/customers/9", w.Header().Get("Location"))
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	_, r := newTestServer(t, WithMetrics(m))
	serve(r, http.MethodGet, "/library/customers")
	serve(r, http.MethodGet, "/library/customers/7")
	serve(r, http.MethodGet, "/library/customers/404")

	assert.InDelta(t, 1, testutil.ToFloat64(m.responses.WithLabelValues("CUSTOMER_LIST", "2xx")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.links.WithLabelValues("CUSTOMER_LIST", "root")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.links.WithLabelValues("CUSTOMER_LIST", "item")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.links.WithLabelValues("CUSTOMER_DETAILS", "root")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.failures.WithLabelValues("CUSTOMER_DETAILS", "http_404")), 0)
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	var already prometheus.AlreadyRegisteredError
	require.True(t, errors.As(err, &already))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown_endpoint", errorCode(&linkable.UnknownEndpointError{ID: "X"}))
	assert.Equal(t, "http_400", errorCode(BadRequest(errors.New("bad"))))
	assert.Equal(t, "http_409", errorCode(Conflict(errors.New("taken"))))
	assert.Equal(t, "internal", errorCode(errors.New("boom")))
}

func TestStatusLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2xx", statusLabel(http.StatusCreated))
	assert.Equal(t, "3xx", statusLabel(http.StatusFound))
	assert.Equal(t, "4xx", statusLabel(http.StatusNotFound))
	assert.Equal(t, "5xx", statusLabel(http.StatusBadGateway))
}
