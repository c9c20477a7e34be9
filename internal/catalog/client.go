package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// Client issues read-only catalog calls against the external product API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs a catalog client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// rawProduct mirrors the source API's product payload.
type rawProduct struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Rating      rawRating `json:"rating"`
}

type rawRating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// FetchProducts retrieves the full product list from the source.
func (c *Client) FetchProducts(ctx context.Context) ([]rawProduct, error) {
	var products []rawProduct
	if err := c.getJSON(ctx, "products", &products); err != nil {
		return nil, errors.Wrap(err, "catalog: fetch products")
	}
	return products, nil
}

// FetchCategories retrieves the category name list from the source.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "products/categories", &categories); err != nil {
		return nil, errors.Wrap(err, "catalog: fetch categories")
	}
	return categories, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if c == nil || c.baseURL == "" {
		return errors.New("client not configured")
	}
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return errors.Errorf("status %d: %s", resp.StatusCode, drainError(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
