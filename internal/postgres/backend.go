// Package postgres implements the Postgres storage backend for the pokedex
// catalog, using pgx registered as a database/sql driver.
package postgres

import (
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/pokedex/internal/store"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

const (
	driverName = "pgx"

	// defaultDSN is used when the config carries no DSN.
	defaultDSN = "postgres://localhost/pokedex?sslmode=disable"
)

var _ types.Catalog = (*Backend)(nil)

// Backend implements the Catalog interface against a Postgres server.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	catalog  *store.Catalog
	log      zerolog.Logger
}

// NewBackend creates a new Postgres backend instance. The backend is not
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

// Attach opens a connection to the server described by config.DSN (falling
// back to a local default), pings it, and applies the schema. Returns
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

	dsn := config.DSN
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("ping postgres: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return err
	}

	instanceID := uuid.NewString()
	log := b.log.With().Str("instance", instanceID).Str("backend", types.BackendPostgres).Logger()

	b.db = db
	b.config = config
	b.catalog = store.NewCatalog(db, store.PostgresDialect{}, log)
	b.attached = true
	b.log = log

	log.Info().Msg("catalog attached")
	return nil
}

// Detach closes the connection pool. After Detach, repository accessors
// return ErrCatalogDetached. Detach is idempotent.
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

// applySchema executes the DDL statement by statement; the pgx driver does
// not accept multi-statement Exec calls in all modes.
func applySchema(db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
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
