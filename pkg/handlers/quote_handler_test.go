package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(h http.HandlerFunc, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/quote", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestSubmitQuoteRedirectsOnSuccess(t *testing.T) {
	dir := &fakeDirectory{}
	h := &QuoteHandler{Templates: newTestTemplates(t), Directory: dir, Log: zerolog.Nop()}

	rec := postForm(h.Submit, url.Values{
		"name":    {"Jane"},
		"phone":   {"0712345678"},
		"county":  {"nairobi"},
		"message": {"Two bins, weekly"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/quote?sent=1", rec.Header().Get("Location"))
	require.NotNil(t, dir.submitted)
	assert.Equal(t, "Jane", dir.submitted.Name)
	assert.Equal(t, "nairobi", dir.submitted.County)
}

func TestSubmitQuoteRequiresContact(t *testing.T) {
	dir := &fakeDirectory{}
	h := &QuoteHandler{Templates: newTestTemplates(t), Directory: dir, Log: zerolog.Nop()}

	rec := postForm(h.Submit, url.Values{"name": {"Jane"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone number or email")
	assert.Nil(t, dir.submitted, "nothing should reach the backend")
}

func TestSubmitQuoteBackendFailure(t *testing.T) {
	dir := &fakeDirectory{submitErr: errors.New("503 from backend")}
	h := &QuoteHandler{Templates: newTestTemplates(t), Directory: dir, Log: zerolog.Nop()}

	rec := postForm(h.Submit, url.Values{
		"name":  {"Jane"},
		"email": {"jane@example.com"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "could not send your request")
}
