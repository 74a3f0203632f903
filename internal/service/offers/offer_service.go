package offers

import (
	"context"
	"log/slog"

	"github.com/Domenick1991/spacify/internal/catalog"
	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/logging"
	"github.com/Domenick1991/spacify/internal/repository"
)

type OfferUseCase interface {
	List(ctx context.Context) ([]domain.Offer, error)
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
	Search(ctx context.Context, search string, mode catalog.ModeFilter) ([]domain.Offer, error)
}

type OfferCache interface {
	GetOffers(ctx context.Context) ([]domain.Offer, error)
	SetOffers(ctx context.Context, offers []domain.Offer) error
}

type OfferService struct {
	repo  repository.OfferRepository
	cache OfferCache
	log   *slog.Logger
}

func NewOfferService(repo repository.OfferRepository, cache OfferCache, log *slog.Logger) *OfferService {
	if log == nil {
		log = logging.Discard()
	}
	return &OfferService{repo: repo, cache: cache, log: log}
}

func (s *OfferService) List(ctx context.Context) ([]domain.Offer, error) {
	if s.cache != nil {
		cached, err := s.cache.GetOffers(ctx)
		if err != nil {
			s.log.Warn("offers cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	offers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetOffers(ctx, offers); err != nil {
			s.log.Warn("offers cache write failed", "error", err)
		}
	}
	return offers, nil
}

func (s *OfferService) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	return s.repo.GetByID(ctx, id)
}

// Search lists offers and narrows them with the catalog filter.
func (s *OfferService) Search(ctx context.Context, search string, mode catalog.ModeFilter) ([]domain.Offer, error) {
	offers, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Filter(offers, search, mode), nil
}

var _ OfferUseCase = (*OfferService)(nil)
