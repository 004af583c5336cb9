package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-storefront-client/cart"
	"github.com/jrsteele09/go-storefront-client/catalog"
	apperrors "github.com/jrsteele09/go-storefront-client/internal/errors"
)

const pathCart = "/carrito"

var _ cart.Remote = (*Client)(nil)

type cartResponse struct {
	Items []cart.Item `json:"items"`
}

type cartUpdate struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

// GetCart returns the lines of the remote cart. A missing items field is an
// empty cart.
func (c *Client) GetCart(ctx context.Context) ([]cart.Item, error) {
	var resp cartResponse
	if err := c.DoAuthenticated(ctx, http.MethodGet, pathCart, nil, &resp); err != nil {
		return nil, fmt.Errorf("[Client.GetCart] %w", err)
	}
	if resp.Items == nil {
		return []cart.Item{}, nil
	}
	return resp.Items, nil
}

// UpdateCartItem sets the quantity of one line.
func (c *Client) UpdateCartItem(ctx context.Context, serviceID catalog.ServiceID, quantity int) error {
	if serviceID == "" {
		return apperrors.ErrInvalidServiceID
	}
	body := cartUpdate{Quantity: quantity}
	if err := validateStruct(body); err != nil {
		return err
	}
	if err := c.DoAuthenticated(ctx, http.MethodPut, cartItemPath(serviceID), body, nil); err != nil {
		return fmt.Errorf("[Client.UpdateCartItem] %w", err)
	}
	return nil
}

// RemoveCartItem deletes one line.
func (c *Client) RemoveCartItem(ctx context.Context, serviceID catalog.ServiceID) error {
	if serviceID == "" {
		return apperrors.ErrInvalidServiceID
	}
	if err := c.DoAuthenticated(ctx, http.MethodDelete, cartItemPath(serviceID), nil, nil); err != nil {
		return fmt.Errorf("[Client.RemoveCartItem] %w", err)
	}
	return nil
}

func cartItemPath(serviceID catalog.ServiceID) string {
	return pathCart + "/" + url.PathEscape(serviceID.String())
}
