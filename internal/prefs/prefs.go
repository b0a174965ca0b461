package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/logger"
)

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("prefs: unsupported theme %q (want light or dark)", s)
	}
}

// Preferences are the operator's display settings.
type Preferences struct {
	Theme    Theme         `yaml:"theme"`
	Language i18n.Language `yaml:"language"`
}

func Default() Preferences {
	return Preferences{Theme: Light, Language: i18n.English}
}

func (p Preferences) validate() error {
	if _, err := ParseTheme(string(p.Theme)); err != nil {
		return err
	}
	if _, err := i18n.ParseLanguage(string(p.Language)); err != nil {
		return err
	}
	return nil
}

// DefaultPath is prefs.yaml under the user's config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "directory-admin", "prefs.yaml")
}

// Store holds the process-wide preferences. They are read once by Open and
// every change is written to disk before it becomes visible.
type Store struct {
	mu      sync.RWMutex
	path    string
	current Preferences
	log     logger.Logger
}

// Open loads path. A missing file yields the defaults; a file with unknown
// values is an error.
func Open(path string, l logger.Logger) (*Store, error) {
	if l == nil {
		l = logger.NewNullLogger()
	}
	s := &Store{path: path, current: Default(), log: l}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("prefs: read %s: %w", path, err)
	}

	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("prefs: parse %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	s.current = p
	return s, nil
}

func (s *Store) Get() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Path() string { return s.path }

func (s *Store) SetTheme(t Theme) error {
	return s.Update(func(p *Preferences) { p.Theme = t })
}

func (s *Store) SetLanguage(l i18n.Language) error {
	return s.Update(func(p *Preferences) { p.Language = l })
}

// Update applies fn to a copy, persists it and only then publishes it.
func (s *Store) Update(fn func(*Preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	fn(&next)
	if err := next.validate(); err != nil {
		return err
	}
	if err := s.write(next); err != nil {
		return err
	}
	s.current = next
	s.log.Info("preferences saved", map[string]interface{}{"theme": next.Theme, "language": next.Language, "path": s.path})
	return nil
}

func (s *Store) write(p Preferences) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("prefs: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("prefs: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".prefs-*.yaml")
	if err != nil {
		return fmt.Errorf("prefs: write %s: %w", s.path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("prefs: write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("prefs: write %s: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("prefs: write %s: %w", s.path, err)
	}
	return nil
}
