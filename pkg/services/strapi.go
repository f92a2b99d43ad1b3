package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	// Single-attempt policy with a bounded timeout: a hung CMS must never
	// block a page render indefinitely.
	strapiTimeout = 10 * time.Second

	// Soft TTL for successful payloads, mirroring the site's 60s
	// revalidation window.
	contentTTL = 60 * time.Second

	cacheMaxCost = 8 << 20 // bytes of cached payloads
)

// StrapiClient fetches content records from the Strapi content API. Every
// failure mode surfaces as ErrUpstreamUnavailable; callers always get either
// a usable payload or an error, never a panic.
type StrapiClient struct {
	baseURL string
	token   string
	http    *http.Client
	cache   *ristretto.Cache[string, []byte]
}

// NewStrapiClient builds a client for the given API base URL. token may be
// empty for unauthenticated access.
func NewStrapiClient(baseURL, token string) (*StrapiClient, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1e4,
		MaxCost:     cacheMaxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("strapi: create cache: %w", err)
	}

	return &StrapiClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: strapiTimeout},
		cache:   cache,
	}, nil
}

// Fetch issues a GET against the content API and returns the raw payload of
// the {"data": ...} envelope. path is relative to /api and may carry query
// parameters for population, field selection and filters.
func (c *StrapiClient) Fetch(ctx context.Context, path string) (json.RawMessage, error) {
	if data, ok := c.cache.Get(path); ok {
		return json.RawMessage(data), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api"+path, nil)
	if err != nil {
		return nil, fmt.Errorf("strapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUpstreamUnavailable, err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil, fmt.Errorf("%w: empty data", ErrUpstreamUnavailable)
	}

	c.cache.SetWithTTL(path, envelope.Data, int64(len(envelope.Data)), contentTTL)
	return envelope.Data, nil
}

// waitCache flushes pending cache writes. Test hook.
func (c *StrapiClient) waitCache() {
	c.cache.Wait()
}

// Close releases the cache resources.
func (c *StrapiClient) Close() {
	c.cache.Close()
}
