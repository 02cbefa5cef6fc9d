package services

import (
	"fmt"
	"log"
	"time"

	"streetwear/pkg/localstore"

	"github.com/google/uuid"
)

// Theme and language defaults for first-run clients.
const (
	DefaultTheme    = "light"
	DefaultLanguage = "tr"
)

// GuestProfile is the demo profile seeded for unauthenticated browsing.
type GuestProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PrefsService persists UI preferences (theme, language) and the guest
// profile under fixed local store keys.
type PrefsService struct {
	store *localstore.Store
}

// NewPrefsService creates a PrefsService and seeds the guest profile if
// one has never been written.
func NewPrefsService(store *localstore.Store) *PrefsService {
	s := &PrefsService{store: store}

	var profile GuestProfile
	if err := store.Get(localstore.KeyUser, &profile); err != nil {
		if err != localstore.ErrNotFound {
			log.Printf("Failed to load guest profile, reseeding: %v", err)
		}
		profile = GuestProfile{
			ID:        fmt.Sprintf("user-%s", uuid.New().String()),
			Name:      "Guest User",
			CreatedAt: time.Now(),
		}
		if err := store.Put(localstore.KeyUser, profile); err != nil {
			log.Printf("Failed to seed guest profile: %v", err)
		}
	}
	return s
}

// Theme returns the persisted theme, or the default.
func (s *PrefsService) Theme() string {
	var theme string
	if err := s.store.Get(localstore.KeyTheme, &theme); err != nil || theme == "" {
		return DefaultTheme
	}
	return theme
}

// SetTheme persists the theme preference.
func (s *PrefsService) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("unknown theme: %s", theme)
	}
	return s.store.Put(localstore.KeyTheme, theme)
}

// Language returns the persisted language, or the default.
func (s *PrefsService) Language() string {
	var lang string
	if err := s.store.Get(localstore.KeyLanguage, &lang); err != nil || lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage persists the language preference.
func (s *PrefsService) SetLanguage(lang string) error {
	if lang != "tr" && lang != "en" {
		return fmt.Errorf("unknown language: %s", lang)
	}
	return s.store.Put(localstore.KeyLanguage, lang)
}

// Guest returns the seeded guest profile.
func (s *PrefsService) Guest() (*GuestProfile, error) {
	var profile GuestProfile
	if err := s.store.Get(localstore.KeyUser, &profile); err != nil {
		return nil, fmt.Errorf("failed to load guest profile: %w", err)
	}
	return &profile, nil
}
