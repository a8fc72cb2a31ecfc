package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// lrucache Go SDK
//
// This module provides a thin wrapper around the lrucache HTTP API so that
// users can create named caches and read and write entries from Go code.
//
// All methods return *Error when the server responds with a non-successful
// status code.
//
// Example usage:
//  c := NewClient("http://localhost:8080")
//  _, err := c.CreateCache("sessions", 1000, 4)
//  err = c.Put("sessions", "user:1", map[string]any{"name": "ada"})
//  v, err := c.Get("sessions", "user:1")

// Client is a high-level HTTP client for an lrucache server.
type Client struct {
	BaseURL string
	Client  *http.Client
}

// Error represents an error returned by the server.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lrucache: %d %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the server, either for a
// missing cache or a missing key.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// CacheInfo mirrors the server's cache description.
type CacheInfo struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Shards   int    `json:"shards"`
	Size     int    `json:"size"`
	Stats    struct {
		Hits      uint64 `json:"hits"`
		Misses    uint64 `json:"misses"`
		Evictions uint64 `json:"evictions"`
	} `json:"stats"`
}

// NewClient creates a new client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ----------------- Low-level request helper -----------------
// request sends an HTTP request and decodes the JSON response into out.
func (c *Client) request(method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= http.StatusBadRequest {
		return &Error{StatusCode: resp.StatusCode, Message: string(respBody)}
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	return json.Unmarshal(respBody, out)
}

func cachePath(name string) string {
	return "/v1/caches/" + url.PathEscape(name)
}

func entryPath(name, key string) string {
	return cachePath(name) + "/entries/" + url.PathEscape(key)
}

// ----------------- API Methods -----------------

// HealthCheck checks if the server is healthy. Returns true if healthy.
func (c *Client) HealthCheck() (bool, error) {
	var result map[string]any
	if err := c.request(http.MethodGet, "/", nil, &result); err != nil {
		return false, err
	}
	return result["status"] == "ok", nil
}

// CreateCache creates a named cache. Zero capacity or shards use the
// server defaults.
func (c *Client) CreateCache(name string, capacity, shards int) (*CacheInfo, error) {
	payload := map[string]any{
		"name":     name,
		"capacity": capacity,
		"shards":   shards,
	}
	var info CacheInfo
	if err := c.request(http.MethodPost, "/v1/caches", payload, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetCache retrieves cache information.
func (c *Client) GetCache(name string) (*CacheInfo, error) {
	var info CacheInfo
	if err := c.request(http.MethodGet, cachePath(name), nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListCaches lists all caches.
func (c *Client) ListCaches() ([]CacheInfo, error) {
	var result struct {
		Caches []CacheInfo `json:"caches"`
	}
	if err := c.request(http.MethodGet, "/v1/caches", nil, &result); err != nil {
		return nil, err
	}
	return result.Caches, nil
}

// DeleteCache deletes a cache.
func (c *Client) DeleteCache(name string) error {
	return c.request(http.MethodDelete, cachePath(name), nil, nil)
}

// Put stores value under key. value must be JSON encodable.
func (c *Client) Put(cache, key string, value any) error {
	if cache == "" || key == "" {
		return fmt.Errorf("cache and key must not be empty")
	}
	payload := map[string]any{"value": value}
	if err := c.request(http.MethodPut, entryPath(cache, key), payload, nil); err != nil {
		return fmt.Errorf("put entry failed: %w", err)
	}
	return nil
}

// Get returns the JSON-decoded value stored under key.
func (c *Client) Get(cache, key string) (any, error) {
	var result struct {
		Key   string `json:"key"`
		Value any    `json:"value"`
	}
	if err := c.request(http.MethodGet, entryPath(cache, key), nil, &result); err != nil {
		return nil, err
	}
	return result.Value, nil
}
