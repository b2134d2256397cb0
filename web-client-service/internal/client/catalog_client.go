// Package client forwards page actions to catalog-service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"catalog-services/web-client-service/internal/entity"
)

// StatusError is returned when catalog-service answers with a non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient creates a client for the catalog API rooted at baseURL.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *CatalogClient) ListUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *CatalogClient) CreateUser(ctx context.Context, name, email string) (*entity.User, error) {
	body := map[string]string{"name": name, "email": email}
	var user entity.User
	if err := c.do(ctx, http.MethodPost, "/users", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *CatalogClient) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil, nil)
}

func (c *CatalogClient) ListProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *CatalogClient) CreateProduct(ctx context.Context, name string, price float64) (*entity.Product, error) {
	body := struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}{name, price}
	var product entity.Product
	if err := c.do(ctx, http.MethodPost, "/products", body, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *CatalogClient) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

// do sends one request and decodes a JSON response into out when out is
// non-nil. Transport failures and non-2xx statuses are returned as errors.
func (c *CatalogClient) do(ctx context.Context, method, path string, in, out any) error {
	url := c.baseURL + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, URL: url, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
