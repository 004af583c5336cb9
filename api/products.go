package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-storefront-client/catalog"
)

const pathProducts = "/productos"

// ListProducts fetches the public catalogue. No session is needed.
func (c *Client) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.Do(ctx, http.MethodGet, pathProducts, nil, &products); err != nil {
		return nil, fmt.Errorf("[Client.ListProducts] %w", err)
	}
	return products, nil
}
