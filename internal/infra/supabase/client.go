// Package supabase provides the PostgREST adapter backing port.DataStore.
// Every table carries a user_id column; all queries filter by it, mirroring
// the row-level security policies on the Supabase side.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/rividoceria/doceria-api/internal/domain"
	"github.com/rividoceria/doceria-api/internal/infra/observability"
	"github.com/rividoceria/doceria-api/internal/infra/resilience"
)

var tracer = otel.Tracer("supabase")

// Client wraps HTTP calls to Supabase PostgREST.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	serviceRoleKey string
	cb             *gobreaker.CircuitBreaker
	bulkhead       *resilience.Bulkhead
	cfg            resilience.Config
	metrics        *observability.Metrics
	logger         *zap.Logger
}

// NewClient creates a Supabase client.
func NewClient(httpClient *http.Client, baseURL, apiKey, serviceRoleKey string, cb *gobreaker.CircuitBreaker, cfg resilience.Config, metrics *observability.Metrics, logger *zap.Logger) *Client {
	maxConcurrency := cfg.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}
	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         apiKey,
		serviceRoleKey: serviceRoleKey,
		cb:             cb,
		bulkhead:       resilience.NewBulkhead(maxConcurrency),
		cfg:            cfg,
		metrics:        metrics,
		logger:         logger,
	}
}

func (c *Client) setHeaders(req *http.Request, prefer string) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.serviceRoleKey))
	req.Header.Set("Content-Type", "application/json")
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
}

// doGet executes an authenticated GET against PostgREST, with retry and
// circuit breaking. Returns nil on 404/204.
func (c *Client) doGet(ctx context.Context, path string) ([]byte, error) {
	var body []byte
	_, err := c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			var err error
			body, err = c.doRequest(ctx, http.MethodGet, path, nil, "")
			return err
		})
	})
	return body, err
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload any, prefer string) ([]byte, error) {
	if err := c.bulkhead.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.bulkhead.Release()

	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, path)

	var reqBody io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		c.logger.Error("supabase: failed to create request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	c.setHeaders(req, prefer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("supabase: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusNoContent {
		return nil, nil // no data
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("supabase: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("supabase %s %s returned %d: %s", method, path, resp.StatusCode, string(body))
	}

	c.logger.Debug("supabase: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)
	return body, nil
}

// listRows GETs a path and decodes the JSON array into out.
func (c *Client) listRows(ctx context.Context, path string, out any) error {
	body, err := c.doGet(ctx, path)
	if err != nil {
		return c.storeError(path, err)
	}
	if body == nil {
		return nil // leave out at its zero (empty) value
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// insertRow POSTs a row and decodes the returned representation into out.
func (c *Client) insertRow(ctx context.Context, table string, row, out any) error {
	body, err := c.doRequest(ctx, http.MethodPost, table, row, "return=representation")
	if err != nil {
		return c.storeError(table, err)
	}
	return decodeSingle(body, table, out)
}

// updateRow PATCHes the row matched by path and decodes the result into out.
func (c *Client) updateRow(ctx context.Context, path string, row, out any) error {
	body, err := c.doRequest(ctx, http.MethodPatch, path, row, "return=representation")
	if err != nil {
		return c.storeError(path, err)
	}
	return decodeSingle(body, path, out)
}

// deleteRow removes the rows matched by path.
func (c *Client) deleteRow(ctx context.Context, path string) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, path, nil, ""); err != nil {
		return c.storeError(path, err)
	}
	return nil
}

// storeError records the failure against its table and wraps the cause so
// callers can unwrap domain errors from the chain.
func (c *Client) storeError(path string, err error) error {
	table := path
	if i := strings.IndexByte(table, '?'); i >= 0 {
		table = table[:i]
	}
	if c.metrics != nil {
		c.metrics.IncrStoreError(table)
	}
	return &domain.ErrExternalService{Service: "supabase/" + table, Err: err}
}

// decodeSingle unwraps PostgREST's single-element array representation.
func decodeSingle(body []byte, path string, out any) error {
	if out == nil {
		return nil
	}
	if body == nil || string(body) == "[]" {
		return fmt.Errorf("supabase %s: empty representation", path)
	}
	raw := json.RawMessage(body)
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		if len(arr) == 0 {
			return fmt.Errorf("supabase %s: empty representation", path)
		}
		raw = arr[0]
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// notFound normalizes a missing row into the domain error.
func notFound(resource, id string) error {
	return &domain.ErrNotFound{Resource: resource, ID: id}
}
