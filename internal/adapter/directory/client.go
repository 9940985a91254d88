// Package directory is the HTTP adapter for the remote backend that owns all
// site data. One fetch per render pass, no caching, no retries: a failed
// fetch is terminal for that pass and the caller renders the empty state.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

type Client struct {
	baseURL string
	http    *http.Client
	tokens  core.TokenSource
	log     zerolog.Logger
}

var _ core.ServiceDirectory = (*Client)(nil)
var _ core.AdminAPI = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration, tokens core.TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With().Str("component", "directory").Logger(),
	}
}

// Services fetches the full service collection. Order is whatever the
// backend returns.
func (c *Client) Services(ctx context.Context) ([]core.ServiceRecord, error) {
	var records []core.ServiceRecord
	if err := c.getCollection(ctx, "/services", &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Carousels fetches the homepage banner slides.
func (c *Client) Carousels(ctx context.Context) ([]core.CarouselSlide, error) {
	var slides []core.CarouselSlide
	if err := c.getCollection(ctx, "/carousels", &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

// SubmitQuote posts a public quote request.
func (c *Client) SubmitQuote(ctx context.Context, q core.QuoteSubmission) error {
	return c.send(ctx, http.MethodPost, "/quote-requests", q)
}

// Login exchanges admin credentials for a bearer token. The token's lifetime
// is entirely the backend's business.
func (c *Client) Login(ctx context.Context, identity, password string) (string, error) {
	payload := map[string]string{"identity": identity, "password": password}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", core.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("login: unexpected status %d", resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("login: decode response: %w", err)
	}
	if out.Token == "" {
		return "", core.ErrUnauthorized
	}
	return out.Token, nil
}

func (c *Client) CreateService(ctx context.Context, fields core.ServiceFields) error {
	return c.send(ctx, http.MethodPost, "/admin/services", fields)
}

func (c *Client) UpdateService(ctx context.Context, id string, fields core.ServiceFields) error {
	return c.send(ctx, http.MethodPut, "/admin/services/"+id, fields)
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/admin/services/"+id, nil)
}

func (c *Client) CreateCarousel(ctx context.Context, fields core.CarouselFields) error {
	return c.send(ctx, http.MethodPost, "/admin/carousels", fields)
}

func (c *Client) UpdateCarousel(ctx context.Context, id string, fields core.CarouselFields) error {
	return c.send(ctx, http.MethodPut, "/admin/carousels/"+id, fields)
}

func (c *Client) DeleteCarousel(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/admin/carousels/"+id, nil)
}

func (c *Client) QuoteRequests(ctx context.Context) ([]core.QuoteRequest, error) {
	var quotes []core.QuoteRequest
	if err := c.getCollection(ctx, "/admin/quote-requests", &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (c *Client) UpdateQuoteStatus(ctx context.Context, id, status string) error {
	return c.send(ctx, http.MethodPut, "/admin/quote-requests/"+id, map[string]string{"status": status})
}

func (c *Client) DeleteQuoteRequest(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/admin/quote-requests/"+id, nil)
}

// getCollection GETs a path and decodes the normalized envelope into dst,
// which must be a pointer to a slice.
func (c *Client) getCollection(ctx context.Context, path string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return core.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("GET %s: read body: %w", path, err)
	}

	arr, err := normalizeEnvelope(body)
	if err != nil {
		c.log.Warn().Str("path", path).Msg("response is neither an array nor a data envelope")
		return err
	}

	if err := json.Unmarshal(arr, dst); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

// send issues a JSON write against the backend. A nil payload sends no body.
func (c *Client) send(ctx context.Context, method, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return core.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token, ok := c.tokens(req.Context()); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
