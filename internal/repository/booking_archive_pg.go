package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGBookingArchive struct {
	db *pgxpool.Pool
}

func NewBookingArchive(db *pgxpool.Pool) BookingArchive {
	return &PGBookingArchive{db: db}
}

func (r *PGBookingArchive) Save(ctx context.Context, b domain.Booking) error {
	_, err := r.db.Exec(ctx, `INSERT INTO bookings (id, offer_id, offer_origin, offer_destination, space_reserved, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`,
		b.ID, b.OfferID, b.OfferOrigin, b.OfferDestination, b.SpaceReserved, b.TotalPrice, b.Status, b.CreatedAt)
	return err
}

func (r *PGBookingArchive) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	res, err := r.db.Exec(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrBookingNotFound, id)
	}
	return nil
}

// List returns archived bookings newest first.
func (r *PGBookingArchive) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, offer_id, offer_origin, offer_destination, space_reserved, total_price, status, created_at
		FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.OfferID, &b.OfferOrigin, &b.OfferDestination, &b.SpaceReserved, &b.TotalPrice, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingArchive = (*PGBookingArchive)(nil)
