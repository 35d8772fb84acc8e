// internal/domain/catalog/source.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrMalformedPayload marks a catalog response that could not be decoded
var ErrMalformedPayload = errors.New("malformed catalog payload")

// FetchError describes a failed catalog fetch
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("Failed to fetch products: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("Failed to fetch products: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Source fetches the full product list
type Source interface {
	FetchProducts(ctx context.Context) ([]Product, error)
}

// HTTPSource reads products from a JSON endpoint shaped as {"products": [...]}
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource creates a source for url. A zero timeout means no client timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// FetchProducts implements Source
func (s *HTTPSource) FetchProducts(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var payload ProductsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("%w: %v", ErrMalformedPayload, err)}
	}
	if payload.Products == nil {
		return nil, &FetchError{Err: fmt.Errorf("%w: missing products", ErrMalformedPayload)}
	}

	products := *payload.Products
	for i, p := range products {
		if p.ID == "" {
			return nil, &FetchError{Err: fmt.Errorf("%w: product %d has no id", ErrMalformedPayload, i)}
		}
		if p.Price < 0 {
			return nil, &FetchError{Err: fmt.Errorf("%w: product %s has a negative price", ErrMalformedPayload, p.ID)}
		}
	}

	return products, nil
}
