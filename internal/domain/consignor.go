package domain

import (
	"strings"
	"unicode/utf8"
)

// ConsignorDetails is the shipper contact form collected during checkout.
type ConsignorDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin"`
}

// Normalize upper-cases the GSTIN.
func (d ConsignorDetails) Normalize() ConsignorDetails {
	d.GSTIN = strings.ToUpper(d.GSTIN)
	return d
}

// Complete reports whether every field passes the length gate.
func (d ConsignorDetails) Complete() bool {
	return utf8.RuneCountInString(d.Name) > 2 &&
		utf8.RuneCountInString(d.Phone) >= 10 &&
		utf8.RuneCountInString(d.Address) > 5 &&
		utf8.RuneCountInString(d.GSTIN) > 5
}
