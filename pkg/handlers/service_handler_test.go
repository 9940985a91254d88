package handlers

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

// testTemplates serves the stripped-down fixtures under testdata/views.
type testTemplates struct {
	root *template.Template
}

func newTestTemplates(t *testing.T) *testTemplates {
	t.Helper()
	root, err := template.ParseGlob("testdata/views/layouts/*.html")
	require.NoError(t, err)
	return &testTemplates{root: root}
}

func (tt *testTemplates) Base() *template.Template { return tt.root }
func (tt *testTemplates) PagePath(page string) string {
	return filepath.Join("testdata", "views", "pages", page)
}

type fakeDirectory struct {
	services  []core.ServiceRecord
	err       error
	submitted *core.QuoteSubmission
	submitErr error
}

func (f *fakeDirectory) Services(ctx context.Context) ([]core.ServiceRecord, error) {
	return f.services, f.err
}

func (f *fakeDirectory) Carousels(ctx context.Context) ([]core.CarouselSlide, error) {
	return nil, nil
}

func (f *fakeDirectory) SubmitQuote(ctx context.Context, q core.QuoteSubmission) error {
	f.submitted = &q
	return f.submitErr
}

func listingFixture(n int) []core.ServiceRecord {
	out := make([]core.ServiceRecord, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, core.ServiceRecord{
			ID:       core.FlexID(fmt.Sprintf("%d", i)),
			Slug:     fmt.Sprintf("svc-%d", i),
			Name:     fmt.Sprintf("Service %d", i),
			Category: "Residential",
		})
	}
	return out
}

func TestParseListingQuery(t *testing.T) {
	tests := []struct {
		query    string
		wantPage int
	}{
		{"", 1},
		{"page=3", 3},
		{"page=abc", 1},
		{"page=", 1},
		{"search=bins&page=2", 2},
	}

	for _, tt := range tests {
		values, err := url.ParseQuery(tt.query)
		require.NoError(t, err)
		q := parseListingQuery(values)
		assert.Equal(t, tt.wantPage, q.Page, "query %q", tt.query)
	}
}

func TestListSecondPage(t *testing.T) {
	h := &ServiceHandler{
		Templates: newTestTemplates(t),
		Directory: &fakeDirectory{services: listingFixture(13)},
		Log:       zerolog.Nop(),
	}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/services?page=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "total=13")
	assert.Contains(t, body, "page=2")
	assert.Contains(t, body, "pages=2")
	assert.Contains(t, body, "count=1")
	assert.Contains(t, body, "cats=all,Residential,")
}

func TestListFetchFailureRendersEmptyState(t *testing.T) {
	h := &ServiceHandler{
		Templates: newTestTemplates(t),
		Directory: &fakeDirectory{err: errors.New("connection refused")},
		Log:       zerolog.Nop(),
	}

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/services", nil))

	// Fetch failure and empty collection look the same on the page.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total=0")
	assert.Contains(t, rec.Body.String(), "pages=1")
}

func newDetailRouter(h *ServiceHandler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/services/{identifier}", h.Detail)
	return r
}

func TestDetailResolves(t *testing.T) {
	h := &ServiceHandler{
		Templates: newTestTemplates(t),
		Directory: &fakeDirectory{services: listingFixture(5)},
		Log:       zerolog.Nop(),
	}

	rec := httptest.NewRecorder()
	newDetailRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/svc-2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "svc=Service 2")
	assert.Contains(t, rec.Body.String(), "related=3")
}

func TestDetailNotFound(t *testing.T) {
	h := &ServiceHandler{
		Templates: newTestTemplates(t),
		Directory: &fakeDirectory{services: listingFixture(2)},
		Log:       zerolog.Nop(),
	}

	rec := httptest.NewRecorder()
	newDetailRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/nonexistent-zzz", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "notfound")
}

func TestDetailFetchFailure(t *testing.T) {
	h := &ServiceHandler{
		Templates: newTestTemplates(t),
		Directory: &fakeDirectory{err: errors.New("timeout")},
		Log:       zerolog.Nop(),
	}

	rec := httptest.NewRecorder()
	newDetailRouter(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/services/svc-1", nil))

	// Distinct from NotFound: the record may exist, we just couldn't look.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "unavailable")
}
