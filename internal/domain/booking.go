package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusShipped   BookingStatus = "SHIPPED"
)

// Booking is a confirmed reservation. TotalPrice is the pre-tax price per CBM
// of the offer at settlement time.
type Booking struct {
	ID               string        `json:"id"`
	OfferID          string        `json:"offer_id"`
	OfferOrigin      string        `json:"offer_origin"`
	OfferDestination string        `json:"offer_destination"`
	SpaceReserved    float64       `json:"space_reserved"`
	TotalPrice       int64         `json:"total_price"`
	Status           BookingStatus `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
}

func (b Booking) Active() bool {
	return b.Status != BookingStatusCancelled
}

// TotalActiveSpend sums TotalPrice over bookings that are not cancelled.
func TotalActiveSpend(bookings []Booking) int64 {
	var total int64
	for _, b := range bookings {
		if b.Active() {
			total += b.TotalPrice
		}
	}
	return total
}

// ActiveCount counts bookings that are not cancelled.
func ActiveCount(bookings []Booking) int {
	n := 0
	for _, b := range bookings {
		if b.Active() {
			n++
		}
	}
	return n
}
