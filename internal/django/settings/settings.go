// Package settings owns the process-wide Django-style settings object.
//
// Ownership boundary:
// - settings options shape (databases, installed apps)
//
// - one-time configuration guard
//
// - database handle lifecycle for configured backends
package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

var (
	ErrAlreadyConfigured = errors.New("settings: already configured")
	ErrNotConfigured     = errors.New("settings: not configured")
	ErrInvalidOptions    = errors.New("settings: invalid options")
	ErrUnknownDatabase   = errors.New("settings: unknown database alias")
)

const (
	// EngineSQLite is the only database engine the test bootstrap needs.
	EngineSQLite = "sqlite"
	// MemoryName is the in-memory database name.
	MemoryName = ":memory:"
	// DefaultAlias is the alias every configuration must define.
	DefaultAlias = "default"
)

// DatabaseOptions describes one database backend.
type DatabaseOptions struct {
	Engine string
	Name   string
}

// Options is the full settings payload passed to Configure.
type Options struct {
	Databases     map[string]DatabaseOptions
	InstalledApps []string
}

// TestDefaults returns the minimal configuration used when the package
// is exercised in isolation: an in-memory database and a single app
// named for the test package.
func TestDefaults() Options {
	return Options{
		Databases: map[string]DatabaseOptions{
			DefaultAlias: {Engine: EngineSQLite, Name: MemoryName},
		},
		InstalledApps: []string{"tests"},
	}
}

// Settings is a process-wide configuration object. Configure wins once;
// later calls are rejected so a host application's settings are never
// clobbered.
type Settings struct {
	mu         sync.RWMutex
	configured bool
	opts       Options
	dbs        map[string]*sql.DB
}

// New creates an unconfigured settings object.
func New() *Settings {
	return &Settings{dbs: make(map[string]*sql.DB)}
}

// IsConfigured reports whether Configure has run.
func (s *Settings) IsConfigured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configured
}

// Configure installs the options. The first call wins; later calls
// return ErrAlreadyConfigured and leave the object untouched.
func (s *Settings) Configure(opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.configured {
		return ErrAlreadyConfigured
	}
	s.opts = cloneOptions(opts)
	s.configured = true
	log.Debug().Int("databases", len(opts.Databases)).Msg("settings.Settings.Configure")
	return nil
}

// Options returns a copy of the configured options.
func (s *Settings) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOptions(s.opts)
}

// InstalledApps returns the configured app list.
func (s *Settings) InstalledApps() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	apps := make([]string, len(s.opts.InstalledApps))
	copy(apps, s.opts.InstalledApps)
	return apps
}

// Setup opens and pings every configured database. Safe to call more
// than once; already-open handles are kept.
func (s *Settings) Setup() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured {
		return ErrNotConfigured
	}
	for alias, dbOpts := range s.opts.Databases {
		if _, ok := s.dbs[alias]; ok {
			continue
		}
		db, err := openDatabase(dbOpts)
		if err != nil {
			return fmt.Errorf("settings: setup %q: %w", alias, err)
		}
		s.dbs[alias] = db
	}
	return nil
}

// Database returns the open handle for alias. Setup must have run.
func (s *Settings) Database(alias string) (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	db, ok := s.dbs[alias]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDatabase, alias)
	}
	return db, nil
}

// Close tears down open database handles. Intended for tests; the
// settings object itself stays configured.
func (s *Settings) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var firstErr error
	for alias, db := range s.dbs {
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(s.dbs, alias)
	}
	return firstErr
}

func openDatabase(opts DatabaseOptions) (*sql.DB, error) {
	db, err := sql.Open(EngineSQLite, opts.Name)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func validateOptions(opts Options) error {
	if len(opts.Databases) == 0 {
		return fmt.Errorf("%w: at least one database is required", ErrInvalidOptions)
	}
	if _, ok := opts.Databases[DefaultAlias]; !ok {
		return fmt.Errorf("%w: %q database is required", ErrInvalidOptions, DefaultAlias)
	}
	for alias, dbOpts := range opts.Databases {
		if strings.TrimSpace(dbOpts.Name) == "" {
			return fmt.Errorf("%w: database %q missing name", ErrInvalidOptions, alias)
		}
		if dbOpts.Engine != EngineSQLite {
			return fmt.Errorf("%w: database %q unsupported engine %q", ErrInvalidOptions, alias, dbOpts.Engine)
		}
	}
	return nil
}

func cloneOptions(opts Options) Options {
	out := Options{
		Databases:     make(map[string]DatabaseOptions, len(opts.Databases)),
		InstalledApps: make([]string, len(opts.InstalledApps)),
	}
	for alias, dbOpts := range opts.Databases {
		out.Databases[alias] = dbOpts
	}
	copy(out.InstalledApps, opts.InstalledApps)
	return out
}
