package config

import (
	"os"
	"path/filepath"

	"github.com/kvark128/FolioCore/internal/click"
	"github.com/kvark128/FolioCore/internal/lang"
)

const (
	ProgramAuthor      = "Kvark <kvark128@yandex.ru>"
	ProgramName        = "FolioCore"
	ProgramDescription = "Reader configuration and content click routing"
	ProgramVersion     = "2026.10.18"
	CopyrightInfo      = "Copyright (C) 2026 " + ProgramAuthor
)

// DefaultNamespace keys the stored settings of readers created without an
// identifier.
const DefaultNamespace = "default"

// Persistence describes the store used for highlights and positions. It is
// passed to the storage layer untouched.
type Persistence struct {
	SchemaVersion uint64
	Location      string
}

type Features struct {
	CanChangeDirection              bool
	CanChangeFontStyle              bool
	HideBars                        bool
	HideNavigationOnTap             bool
	AllowSharing                    bool
	EnableSpeech                    bool
	DisplayTitle                    bool
	HidePageIndicator               bool
	LoadSavedPosition               bool
	UseNativeSelectionMenu          bool
	PreserveDefaultQuoteBackgrounds bool
}

func defaultFeatures() Features {
	return Features{
		CanChangeDirection:              true,
		CanChangeFontStyle:              true,
		HideNavigationOnTap:             true,
		AllowSharing:                    true,
		EnableSpeech:                    true,
		LoadSavedPosition:               true,
		UseNativeSelectionMenu:          true,
		PreserveDefaultQuoteBackgrounds: true,
	}
}

// Reader is the configuration of one reader session.
//
// The host fills it between construction and Freeze. After that every reader
// component only reads it, so no locking is done here.
type Reader struct {
	// Listeners routes taps on rendered content back to the host.
	Listeners *click.Registry
	// Direction is the layout used until the user picks another one.
	Direction   Direction
	Features    Features
	Theme       Theme
	Strings     lang.Strings
	Persistence Persistence

	identifier    string
	hasIdentifier bool
}

type Option func(*Reader)

// WithIdentifier distinguishes readers configured in the same process.
// Stored settings are kept apart per identifier.
func WithIdentifier(id string) Option {
	return func(r *Reader) {
		r.identifier = id
		r.hasIdentifier = true
	}
}

func WithStrings(s lang.Strings) Option {
	return func(r *Reader) {
		r.Strings = s
	}
}

func WithPersistence(p Persistence) Option {
	return func(r *Reader) {
		r.Persistence = p
	}
}

func WithDirection(d Direction) Option {
	return func(r *Reader) {
		r.Direction = d
	}
}

// Default returns a new configuration holding the default values.
// Every call returns an independent value.
func Default() *Reader {
	return &Reader{
		Listeners: click.NewRegistry(),
		Direction: DefaultVertical,
		Features:  defaultFeatures(),
		Theme:     defaultTheme(),
		Strings:   lang.Defaults(),
	}
}

func New(opts ...Option) *Reader {
	r := Default()
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Identifier returns the identifier and whether one was given.
func (r *Reader) Identifier() (string, bool) {
	return r.identifier, r.hasIdentifier
}

// Namespace is the key under which the settings of this reader are stored.
func (r *Reader) Namespace() string {
	if !r.hasIdentifier || r.identifier == "" {
		return DefaultNamespace
	}
	return r.identifier
}

// AddClickListener registers a content click listener.
// See click.Registry for the dispatch rules.
func (r *Reader) AddClickListener(l click.Listener) {
	r.Listeners.Register(l)
}

// Freeze is called when the configuration is handed over to the reader.
func (r *Reader) Freeze() {
	r.Listeners.Freeze()
}

// UserData returns the directory for files written by the program. A
// directory named after the program next to the working directory wins, so
// portable installs keep their data together.
func UserData() string {
	if path, err := filepath.Abs(ProgramName); err == nil {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, ProgramName)
	}
	return ProgramName
}
