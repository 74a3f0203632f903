package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Domenick1991/spacify/internal/domain"
)

// StaticOfferRepository serves a fixed in-memory listing.
type StaticOfferRepository struct {
	offers []domain.Offer
}

func NewStaticOfferRepository(offers []domain.Offer) OfferRepository {
	cp := make([]domain.Offer, len(offers))
	copy(cp, offers)
	return &StaticOfferRepository{offers: cp}
}

func (r *StaticOfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	out := make([]domain.Offer, len(r.offers))
	copy(out, r.offers)
	return out, nil
}

func (r *StaticOfferRepository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	for _, o := range r.offers {
		if o.ID == id {
			offer := o
			return &offer, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, id)
}

var _ OfferRepository = (*StaticOfferRepository)(nil)

func date(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultOffers is the launch listing.
func DefaultOffers() []domain.Offer {
	return []domain.Offer{
		{
			ID:                "C1",
			ProviderID:        "P1",
			ProviderName:      "Adani Logistics Hub",
			Origin:            "JNPT, Mumbai",
			Destination:       "Dubai, UAE",
			Mode:              domain.ModeSea,
			DepartureDate:     date("2024-06-15"),
			ArrivalDate:       date("2024-06-22"),
			TotalCapacity:     60,
			AvailableCapacity: 12.5,
			PricePerCBM:       35000,
			ContainerType:     "40ft Standard",
			Status:            domain.OfferStatusActive,
			Utilities:         domain.Utilities{Electricity: 95, Water: 80, Security: 90, Connectivity: 85},
		},
		{
			ID:                "C2",
			ProviderID:        "P2",
			ProviderName:      "Blue Dart Aviation",
			Origin:            "IGI, Delhi",
			Destination:       "Heathrow, London",
			Mode:              domain.ModeAir,
			DepartureDate:     date("2024-06-12"),
			ArrivalDate:       date("2024-06-13"),
			TotalCapacity:     20,
			AvailableCapacity: 0,
			PricePerCBM:       85000,
			ContainerType:     "ULD Air Cargo",
			Status:            domain.OfferStatusFull,
			Utilities:         domain.Utilities{Electricity: 100, Water: 90, Security: 100, Connectivity: 98},
		},
		{
			ID:                "C3",
			ProviderID:        "P1",
			ProviderName:      "CONCOR India",
			Origin:            "Tughlakabad ICD",
			Destination:       "Mundra Port",
			Mode:              domain.ModeRail,
			DepartureDate:     date("2024-06-20"),
			ArrivalDate:       date("2024-06-21"),
			TotalCapacity:     30,
			AvailableCapacity: 28,
			PricePerCBM:       12000,
			ContainerType:     "20ft Rail Wagon",
			Status:            domain.OfferStatusActive,
			Utilities:         domain.Utilities{Electricity: 75, Water: 60, Security: 80, Connectivity: 70},
		},
	}
}
