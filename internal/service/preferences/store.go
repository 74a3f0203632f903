package preferences

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/Domenick1991/spacify/internal/domain"
	"github.com/Domenick1991/spacify/internal/logging"
	"github.com/google/uuid"
)

const (
	KeyUser          = "spacify_user"
	KeyTourCompleted = "spacify_tour_completed"
	KeyTheme         = "spacify_theme"
)

// KV is the persistence port for user preferences.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type PreferencesUseCase interface {
	Profile() (*domain.UserProfile, error)
	Login(ctx context.Context, email string, role domain.UserRole) (*domain.UserProfile, error)
	Logout(ctx context.Context) error
	Theme() domain.Theme
	SetTheme(ctx context.Context, theme domain.Theme) error
	Language() domain.Language
	SetLanguage(ctx context.Context, lang domain.Language) error
	ShouldShowTour() bool
	CompleteTour(ctx context.Context) error
}

// Store caches preferences in memory, loading once and writing through on change.
type Store struct {
	mu           sync.RWMutex
	kv           KV
	log          *slog.Logger
	profile      *domain.UserProfile
	theme        domain.Theme
	language     domain.Language
	tourComplete bool
}

func NewStore(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{
		kv:       kv,
		log:      log,
		theme:    domain.ThemeLight,
		language: domain.LanguageEnglish,
	}
}

// Load reads persisted state. Corrupt values are ignored.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if ok {
		var p domain.UserProfile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.log.Warn("ignoring stored profile", "error", err)
		} else {
			s.profile = &p
			if p.PreferredLanguage.Valid() {
				s.language = p.PreferredLanguage
			}
		}
	}

	raw, ok, err = s.kv.Get(ctx, KeyTourCompleted)
	if err != nil {
		return fmt.Errorf("load tour flag: %w", err)
	}
	s.tourComplete = ok && raw == "true"

	raw, ok, err = s.kv.Get(ctx, KeyTheme)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	if ok && domain.Theme(raw).Valid() {
		s.theme = domain.Theme(raw)
	}
	return nil
}

func (s *Store) Profile() (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, domain.ErrNotLoggedIn
	}
	p := *s.profile
	return &p, nil
}

// Login signs in without credentials. The display name is the local part of email.
func (s *Store) Login(ctx context.Context, email string, role domain.UserRole) (*domain.UserProfile, error) {
	email = strings.TrimSpace(email)
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return nil, fmt.Errorf("%w: invalid email %q", domain.ErrValidation, email)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrValidation, role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := domain.UserProfile{
		UID:               "user_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9],
		Name:              local,
		Email:             email,
		Role:              role,
		IsApproved:        true,
		PreferredLanguage: s.language,
	}
	if err := s.saveProfile(ctx, p); err != nil {
		return nil, err
	}
	s.profile = &p
	s.log.Info("user logged in", "uid", p.UID, "role", p.Role)
	out := p
	return &out, nil
}

func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, KeyUser); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.profile = nil
	return nil
}

func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: invalid theme %q", domain.ErrValidation, theme)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	s.theme = theme
	return nil
}

func (s *Store) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// SetLanguage switches the UI language and stamps it on a signed-in profile.
func (s *Store) SetLanguage(ctx context.Context, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: invalid language %q", domain.ErrValidation, lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile != nil {
		p := *s.profile
		p.PreferredLanguage = lang
		if err := s.saveProfile(ctx, p); err != nil {
			return err
		}
		s.profile = &p
	}
	s.language = lang
	return nil
}

// ShouldShowTour is true for a signed-in user who has not finished the tour.
func (s *Store) ShouldShowTour() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil && !s.tourComplete
}

func (s *Store) CompleteTour(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(ctx, KeyTourCompleted, "true"); err != nil {
		return fmt.Errorf("save tour flag: %w", err)
	}
	s.tourComplete = true
	return nil
}

func (s *Store) saveProfile(ctx context.Context, p domain.UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, KeyUser, string(data)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

var _ PreferencesUseCase = (*Store)(nil)
