// Package catalog holds the product types shared by the API client and the
// cart.
package catalog

import (
	"fmt"

	"github.com/jrsteele09/go-storefront-client/internal/utils"
	"github.com/shopspring/decimal"
)

// ServiceID identifies a product or service. The API is inconsistent about
// sending ids as strings or numbers, so both decode.
type ServiceID string

func (id *ServiceID) UnmarshalJSON(data []byte) error {
	s, err := utils.StringOrNumber(data)
	if err != nil {
		return fmt.Errorf("service id: %w", err)
	}
	*id = ServiceID(s)
	return nil
}

func (id ServiceID) String() string {
	return string(id)
}

// Product is one entry of the public catalogue. Fields the API adds beyond
// these are ignored.
type Product struct {
	ID          ServiceID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category,omitempty"`
}
