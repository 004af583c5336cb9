package cart

import (
	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/shopspring/decimal"
)

// Item is one cart line as reported by the remote cart.
type Item struct {
	ServiceID catalog.ServiceID `json:"serviceId"`
	Name      string            `json:"name,omitempty"`
	Quantity  int               `json:"quantity"`
	UnitPrice decimal.Decimal   `json:"unitPrice"`
}

// LineTotal is UnitPrice × Quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
