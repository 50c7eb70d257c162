// Package sqlite implements the SQLite storage backend for the pokedex
// catalog.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pokedex/internal/store"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// databaseFile is the catalog database name inside DataDir.
const databaseFile = "catalog.db"

var _ types.Catalog = (*Backend)(nil)

// Backend implements the Catalog interface using SQLite as the storage
// engine.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	catalog  *store.Catalog
	log      zerolog.Logger
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{log: zerolog.Nop()}
}

// SetLogger installs a logger on a detached backend. Attach propagates it to
// the repositories.
func (b *Backend) SetLogger(log zerolog.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.log = log
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist and applies the schema. Returns
// ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, databaseFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("apply schema: %w", err)
	}

	instanceID := uuid.NewString()
	log := b.log.With().Str("instance", instanceID).Str("backend", types.BackendSQLite).Logger()

	b.db = db
	b.config = config
	b.catalog = store.NewCatalog(db, store.SQLiteDialect{}, log)
	b.attached = true
	b.log = log

	log.Info().Str("path", dbPath).Msg("catalog attached")
	return nil
}

// Detach releases the database connection. After Detach, repository
// accessors return ErrCatalogDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.catalog = nil
	b.log.Info().Msg("catalog detached")
	return nil
}

// repos returns the repository set, or ErrCatalogDetached.
func (b *Backend) repos() (*store.Catalog, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrCatalogDetached
	}
	return b.catalog, nil
}

// Categories returns the category repository.
func (b *Backend) Categories() (types.CategoryRepository, error) {
	c, err := b.repos()
	if err != nil {
		return nil, err
	}
	return c.Categories(), nil
}

// Countries returns the country repository.
func (b *Backend) Countries() (types.CountryRepository, error) {
	c, err := b.repos()
	if err != nil {
		return nil, err
	}
	return c.Countries(), nil
}

// Owners returns the owner repository.
func (b *Backend) Owners() (types.OwnerRepository, error) {
	c, err := b.repos()
	if err != nil {
		return nil, err
	}
	return c.Owners(), nil
}

// Pokemon returns the pokemon repository.
func (b *Backend) Pokemon() (types.PokemonRepository, error) {
	c, err := b.repos()
	if err != nil {
		return nil, err
	}
	return c.Pokemon(), nil
}

// Reviewers returns the reviewer repository.
func (b *Backend) Reviewers() (types.ReviewerRepository, error) {
	c, err := b.repos()
	if err != nil {
		return nil, err
	}
	return c.Reviewers(), nil
}

// Reviews returns the review repository.
func (b *Backend) Reviews() (types.ReviewRepository, error) {
	c, err := b.repos()
	if err != nil {
		return nil, err
	}
	return c.Reviews(), nil
}
