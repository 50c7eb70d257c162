// Package postgres provides the public API for the Postgres catalog backend.
// This package exposes the factory function for creating Postgres backends
// while keeping implementation details internal.
package postgres

import (
	"github.com/mesh-intelligence/pokedex/internal/postgres"
	"github.com/mesh-intelligence/pokedex/pkg/types"
)

// NewBackend creates a new Postgres backend instance.
// The backend is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	backend := postgres.NewBackend()
//	err := backend.Attach(types.Config{
//	    Backend: types.BackendPostgres,
//	    DSN:     "postgres://localhost/pokedex?sslmode=disable",
//	})
//	defer backend.Detach()
func NewBackend() types.Catalog {
	return postgres.NewBackend()
}
