package domain

import "time"

type TransportMode string

const (
	ModeSea  TransportMode = "SEA"
	ModeAir  TransportMode = "AIR"
	ModeRail TransportMode = "RAIL"
	ModeRoad TransportMode = "ROAD"
)

var TransportModes = []TransportMode{ModeSea, ModeAir, ModeRail, ModeRoad}

type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "ACTIVE"
	OfferStatusFull     OfferStatus = "FULL"
	OfferStatusDeparted OfferStatus = "DEPARTED"
)

// Utilities are container amenity scores, each in [0,100].
type Utilities struct {
	Electricity  int `json:"electricity"`
	Water        int `json:"water"`
	Security     int `json:"security"`
	Connectivity int `json:"connectivity"`
}

// Offer is a listed shared-container slot. AvailableCapacity is descriptive
// and is not decremented by bookings.
type Offer struct {
	ID                string        `json:"id"`
	ProviderID        string        `json:"provider_id"`
	ProviderName      string        `json:"provider_name"`
	Origin            string        `json:"origin"`
	Destination       string        `json:"destination"`
	Mode              TransportMode `json:"mode"`
	DepartureDate     time.Time     `json:"departure_date"`
	ArrivalDate       time.Time     `json:"arrival_date"`
	TotalCapacity     float64       `json:"total_capacity"`
	AvailableCapacity float64       `json:"available_capacity"`
	PricePerCBM       int64         `json:"price_per_cbm"`
	ContainerType     string        `json:"container_type"`
	Status            OfferStatus   `json:"status"`
	Utilities         Utilities     `json:"utilities"`
}

func (o Offer) Bookable() bool {
	return o.Status != OfferStatusFull
}
