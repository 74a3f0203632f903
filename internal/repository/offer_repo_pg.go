package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const offerColumns = `id, provider_id, provider_name, origin, destination, mode, departure_date, arrival_date,
	total_capacity, available_capacity, price_per_cbm, container_type, status,
	electricity, water, security, connectivity`

type PGOfferRepository struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) OfferRepository {
	return &PGOfferRepository{db: db}
}

func (r *PGOfferRepository) List(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+offerColumns+` FROM offers ORDER BY departure_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *PGOfferRepository) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id=$1`, id)
	o, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrOfferNotFound, id)
		}
		return nil, err
	}
	return &o, nil
}

func scanOffer(row pgx.Row) (domain.Offer, error) {
	var o domain.Offer
	err := row.Scan(&o.ID, &o.ProviderID, &o.ProviderName, &o.Origin, &o.Destination, &o.Mode,
		&o.DepartureDate, &o.ArrivalDate, &o.TotalCapacity, &o.AvailableCapacity, &o.PricePerCBM,
		&o.ContainerType, &o.Status,
		&o.Utilities.Electricity, &o.Utilities.Water, &o.Utilities.Security, &o.Utilities.Connectivity)
	return o, err
}

var _ OfferRepository = (*PGOfferRepository)(nil)
