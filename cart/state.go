package cart

import "github.com/shopspring/decimal"

// State is a read-only snapshot of the shared cart. ItemCount and
// TotalAmount are always derived from Items in the same step that sets them.
type State struct {
	Items       []Item
	ItemCount   int
	TotalAmount decimal.Decimal
	IsLoading   bool
	LastError   string
}

// Empty reports whether the cart has no lines.
func (s State) Empty() bool {
	return len(s.Items) == 0
}

func (s State) clone() State {
	s.Items = append([]Item{}, s.Items...)
	return s
}

// withItems replaces the lines and recomputes both aggregates from scratch.
func (s State) withItems(items []Item) State {
	s.Items = append([]Item{}, items...)
	s.ItemCount = 0
	s.TotalAmount = decimal.Zero
	for _, item := range s.Items {
		s.ItemCount += item.Quantity
		s.TotalAmount = s.TotalAmount.Add(item.LineTotal())
	}
	return s
}
