package models

import "github.com/shopspring/decimal"

// Price is a DECIMAL(10, 2) amount. It always marshals with two fraction
// digits ("10.00", never "10"), which is how the database itself renders the
// column; decoding still accepts bare JSON numbers.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(2) + `"`), nil
}

// Subcategory is a priced option under a service. Rows only exist as a batch
// tied to one service and are fully replaced on every service update.
type Subcategory struct {
	ID               int64  `json:"id"`
	ServiceID        int64  `json:"service_id"`
	Name             string `json:"name"`
	Price            Price  `json:"price"`
	ShortDescription string `json:"short_description"`
}

// SubcategoryInput is one element of the JSON-encoded array clients submit
// with a service. Wire keys are camelCase, unlike the stored rows.
type SubcategoryInput struct {
	Name             string `json:"name"`
	Price            Price  `json:"price"`
	ShortDescription string `json:"shortDescription"`
}
