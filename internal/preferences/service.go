package preference

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/enums"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

// PreferencesDTO is the per-user settings document.
type PreferencesDTO struct {
	Theme    enums.AppTheme `json:"theme"`
	Language string         `json:"language"`
}

// UpdatePreferencesInput holds the payload to replace a user's settings.
type UpdatePreferencesInput struct {
	Theme    string
	Language string
}

// Observer is notified after a user's preferences are saved.
type Observer func(userID int64, prefs PreferencesDTO)

// Service stores per-user settings as JSON documents on disk. Documents are
// loaded once and served from memory; every save rewrites the whole file.
type Service struct {
	dir string

	mu     sync.Mutex
	loaded map[int64]PreferencesDTO

	obsMu     sync.Mutex
	observers map[int64]Observer
	nextObsID int64
}

// NewService builds a preference store rooted at cfg.Dir, falling back to the
// OS user config directory.
func NewService(cfg config.PreferencesConfig) (*Service, error) {
	dir := cfg.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "roverent")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create preferences dir: %w", err)
	}
	return &Service{
		dir:       dir,
		loaded:    make(map[int64]PreferencesDTO),
		observers: make(map[int64]Observer),
	}, nil
}

// Get returns a user's settings, reading the file at most once per user.
// Users without a saved document get the defaults.
func (s *Service) Get(userID int64) (PreferencesDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prefs, ok := s.loaded[userID]; ok {
		return prefs, nil
	}

	prefs := defaultPreferences()
	raw, err := os.ReadFile(s.path(userID))
	switch {
	case err == nil:
		var stored struct {
			Theme    string `json:"theme"`
			Language string `json:"language"`
		}
		if err := json.Unmarshal(raw, &stored); err != nil {
			return PreferencesDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "preferences: decode document")
		}
		prefs.Theme = enums.CoerceAppTheme(stored.Theme)
		if stored.Language != "" {
			prefs.Language = stored.Language
		}
	case os.IsNotExist(err):
		// First access, keep defaults.
	default:
		return PreferencesDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "preferences: read document")
	}

	s.loaded[userID] = prefs
	return prefs, nil
}

// Update replaces a user's settings wholesale and notifies observers.
func (s *Service) Update(userID int64, input UpdatePreferencesInput) (PreferencesDTO, error) {
	theme, err := enums.ParseAppTheme(input.Theme)
	if err != nil {
		return PreferencesDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown theme")
	}
	language := strings.TrimSpace(input.Language)
	if language == "" {
		return PreferencesDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "language required")
	}

	prefs := PreferencesDTO{Theme: theme, Language: language}
	raw, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return PreferencesDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "preferences: encode document")
	}

	s.mu.Lock()
	if err := os.WriteFile(s.path(userID), raw, 0o644); err != nil {
		s.mu.Unlock()
		return PreferencesDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "preferences: write document")
	}
	s.loaded[userID] = prefs
	s.mu.Unlock()

	s.notify(userID, prefs)
	return prefs, nil
}

// Subscribe registers an observer and returns the function that removes it.
func (s *Service) Subscribe(fn Observer) func() {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()

	s.nextObsID++
	id := s.nextObsID
	s.observers[id] = fn
	return func() {
		s.obsMu.Lock()
		defer s.obsMu.Unlock()
		delete(s.observers, id)
	}
}

func (s *Service) notify(userID int64, prefs PreferencesDTO) {
	s.obsMu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range observers {
		fn(userID, prefs)
	}
}

func (s *Service) path(userID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("preferences_%d.json", userID))
}

func defaultPreferences() PreferencesDTO {
	return PreferencesDTO{
		Theme:    enums.AppThemeSystem,
		Language: "en",
	}
}
