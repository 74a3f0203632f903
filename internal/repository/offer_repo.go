package repository

import (
	"context"

	"github.com/Domenick1991/spacify/internal/domain"
)

type OfferRepository interface {
	List(ctx context.Context) ([]domain.Offer, error)
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
}

// BookingArchive persists ledger bookings outside the process.
type BookingArchive interface {
	Save(ctx context.Context, booking domain.Booking) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	List(ctx context.Context) ([]domain.Booking, error)
}
