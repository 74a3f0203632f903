package api

import (
	"context"

	"github.com/Domenick1991/spacify/internal/catalog"
	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/service/ledger"
	"github.com/stretchr/testify/mock"
)

type MockOfferUseCase struct {
	mock.Mock
}

func (m *MockOfferUseCase) List(ctx context.Context) ([]domain.Offer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Offer), args.Error(1)
}

func (m *MockOfferUseCase) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Offer), args.Error(1)
}

func (m *MockOfferUseCase) Search(ctx context.Context, search string, mode catalog.ModeFilter) ([]domain.Offer, error) {
	args := m.Called(ctx, search, mode)
	return args.Get(0).([]domain.Offer), args.Error(1)
}

type MockLedgerUseCase struct {
	mock.Mock
}

func (m *MockLedgerUseCase) Add(ctx context.Context, booking domain.Booking) {
	m.Called(ctx, booking)
}

func (m *MockLedgerUseCase) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) RaiseDispute(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockLedgerUseCase) Get(id string) (*domain.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedgerUseCase) List() []domain.Booking {
	return m.Called().Get(0).([]domain.Booking)
}

func (m *MockLedgerUseCase) Summary() ledger.Summary {
	return m.Called().Get(0).(ledger.Summary)
}

type MockAdviceUseCase struct {
	mock.Mock
}

func (m *MockAdviceUseCase) GetAdvice(ctx context.Context, query string) string {
	return m.Called(ctx, query).String(0)
}

type MockPreferencesUseCase struct {
	mock.Mock
}

func (m *MockPreferencesUseCase) Profile() (*domain.UserProfile, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockPreferencesUseCase) Login(ctx context.Context, email string, role domain.UserRole) (*domain.UserProfile, error) {
	args := m.Called(ctx, email, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockPreferencesUseCase) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockPreferencesUseCase) Theme() domain.Theme {
	return m.Called().Get(0).(domain.Theme)
}

func (m *MockPreferencesUseCase) SetTheme(ctx context.Context, theme domain.Theme) error {
	return m.Called(ctx, theme).Error(0)
}

func (m *MockPreferencesUseCase) Language() domain.Language {
	return m.Called().Get(0).(domain.Language)
}

func (m *MockPreferencesUseCase) SetLanguage(ctx context.Context, lang domain.Language) error {
	return m.Called(ctx, lang).Error(0)
}

func (m *MockPreferencesUseCase) ShouldShowTour() bool {
	return m.Called().Bool(0)
}

func (m *MockPreferencesUseCase) CompleteTour(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
