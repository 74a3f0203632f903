package checkout

import (
	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/shopspring/decimal"
)

var DefaultTaxRate = decimal.RequireFromString("0.18")

// Quote is the amount shown at checkout. Only Subtotal is stored on the booking.
type Quote struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxRate  decimal.Decimal `json:"tax_rate"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

func NewQuote(offer domain.Offer, taxRate decimal.Decimal) Quote {
	subtotal := decimal.NewFromInt(offer.PricePerCBM)
	tax := subtotal.Mul(taxRate).Round(2)
	return Quote{
		Subtotal: subtotal,
		TaxRate:  taxRate,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
