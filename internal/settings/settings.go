package settings

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kvark128/FolioCore/internal/config"
	"github.com/kvark128/FolioCore/internal/log"
	"github.com/kvark128/FolioCore/internal/util"
	"gopkg.in/yaml.v3"
)

const fileExt = ".yaml"

// State is what the user changed while reading.
type State struct {
	NightMode      bool             `yaml:"night_mode"`
	Font           string           `yaml:"font"`
	FontSize       int              `yaml:"font_size"`
	AudioRate      float64          `yaml:"audio_rate"`
	HighlightStyle int              `yaml:"highlight_style"`
	Direction      config.Direction `yaml:"direction"`
	Books          BookSet          `yaml:"books,omitempty"`
}

// Initial returns the state of a reader that was never opened.
func Initial(cfg *config.Reader) State {
	return State{
		Font:      "Andada",
		FontSize:  2,
		AudioRate: 1,
		Direction: cfg.Direction,
	}
}

// EffectiveDirection returns the layout to use. The stored choice only applies when
// the configuration lets the user change the direction.
func (s State) EffectiveDirection(cfg *config.Reader) config.Direction {
	if !cfg.Features.CanChangeDirection {
		return cfg.Direction
	}
	return s.Direction
}

// SavedPosition returns where the book was left, unless the configuration
// disables restoring positions.
func (s State) SavedPosition(cfg *config.Reader, bookID string) (Position, bool) {
	if !cfg.Features.LoadSavedPosition {
		return Position{}, false
	}
	b, err := s.Books.Book(bookID)
	if err != nil {
		return Position{}, false
	}
	return b.Position, true
}

// Store keeps the State of one namespace in a YAML file.
type Store struct {
	path   string
	logger *log.Logger
}

func Open(dir, namespace string, logger *log.Logger) *Store {
	if namespace == "" {
		namespace = config.DefaultNamespace
	}
	name := util.ReplaceProhibitCharacters(namespace) + fileExt
	return &Store{path: filepath.Join(dir, name), logger: logger}
}

// ForReader opens the store of the namespace of cfg.
func ForReader(dir string, cfg *config.Reader, logger *log.Logger) *Store {
	return Open(dir, cfg.Namespace(), logger)
}

func (s *Store) Path() string {
	return s.path
}

// Load decodes the stored state over st. A missing file leaves st unchanged.
func (s *Store) Load(st *State) error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("No settings at %v", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(st); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding settings %v: %w", s.path, err)
	}
	s.logger.Info("Loading settings from %v", s.path)
	return nil
}

func (s *Store) Save(st State) error {
	err := util.WriteSecure(s.path, func(w io.Writer) error {
		e := yaml.NewEncoder(w)
		e.SetIndent(2)
		if err := e.Encode(st); err != nil {
			return err
		}
		return e.Close()
	})
	if err != nil {
		return fmt.Errorf("saving settings %v: %w", s.path, err)
	}
	s.logger.Info("Saving settings to %v", s.path)
	return nil
}
