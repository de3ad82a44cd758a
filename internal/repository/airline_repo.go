package repository

import (
	"context"

	"github.com/avialab/aircatalog/internal/domain"
)

// AirlineRepository is the storage port for airline records. Lookups return
// (nil, nil) when nothing matches; absence is never an error.
type AirlineRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Airline, error)
	FindByIATACode(ctx context.Context, code string) (*domain.Airline, error)
	FindByICAOCode(ctx context.Context, code string) (*domain.Airline, error)
	FindAll(ctx context.Context) ([]domain.Airline, error)
	FindActive(ctx context.Context) ([]domain.Airline, error)
	Save(ctx context.Context, airline domain.Airline) error
	Delete(ctx context.Context, id string) (bool, error)
	Clear(ctx context.Context) error
}
