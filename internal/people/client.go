// Package people implements the people-list feature backed by a remote JSON
// blob: the whole document is fetched with GET and overwritten with POST.
// The endpoint is treated as an opaque external service.
package people

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Person is one entry of the remote document. The JSON field names are the
// remote document's, in Spanish.
type Person struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
	Age  int    `json:"edad"`
}

// Client talks to the remote JSON blob endpoint.
type Client struct {
	url   string
	token string
	hc    *http.Client
}

func NewClient(url, token string, timeout time.Duration) *Client {
	return &Client{
		url:   url,
		token: token,
		hc:    &http.Client{Timeout: timeout},
	}
}

// Fetch downloads and decodes the whole people document.
func (c *Client) Fetch(ctx context.Context) ([]Person, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch people: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch people: %s; body: %s", resp.Status, string(b))
	}

	var people []Person
	if err := json.NewDecoder(resp.Body).Decode(&people); err != nil {
		return nil, fmt.Errorf("decode people: %w", err)
	}
	return people, nil
}

// Overwrite replaces the whole remote document with the given list.
func (c *Client) Overwrite(ctx context.Context, people []Person) error {
	if people == nil {
		people = []Person{}
	}
	body, err := json.Marshal(people)
	if err != nil {
		return fmt.Errorf("marshal people: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("overwrite people: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("overwrite people: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
