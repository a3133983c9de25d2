// Package db holds the ticket stores. Every store is append-only: tickets
// are created and listed, never updated or deleted.
package db

import (
	"context"
	"errors"
	"fmt"

	"quickaid/config"
	"quickaid/models"
)

// ErrDuplicateID is returned by Create when a ticket with the same id is
// already stored.
var ErrDuplicateID = errors.New("ticket id already exists")

type Store interface {
	Create(ctx context.Context, t *models.Ticket) error
	List(ctx context.Context, f models.TicketFilter) ([]models.Ticket, error)
	Close(ctx context.Context) error
}

// Open connects the store selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		s, err := OpenMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.MongoCollection)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMySQL:
		s, err := OpenMySQL(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
