package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/avialab/aircatalog/internal/domain"
)

// MemoryAirlineRepository keeps the catalog in a map guarded by a single
// mutex. Both reads and writes take the same lock so a scan never observes a
// concurrent mutation. Callers always get value copies, never aliases into
// the map.
type MemoryAirlineRepository struct {
	mu       sync.Mutex
	airlines map[string]domain.Airline
}

func NewMemoryAirlineRepository() *MemoryAirlineRepository {
	return &MemoryAirlineRepository{airlines: make(map[string]domain.Airline)}
}

func (r *MemoryAirlineRepository) FindByID(_ context.Context, id string) (*domain.Airline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	airline, ok := r.airlines[id]
	if !ok {
		return nil, nil
	}
	return &airline, nil
}

func (r *MemoryAirlineRepository) FindByIATACode(_ context.Context, code string) (*domain.Airline, error) {
	code = strings.ToUpper(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, airline := range r.airlines {
		if airline.IATACode == code {
			a := airline
			return &a, nil
		}
	}
	return nil, nil
}

func (r *MemoryAirlineRepository) FindByICAOCode(_ context.Context, code string) (*domain.Airline, error) {
	code = strings.ToUpper(code)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, airline := range r.airlines {
		if airline.ICAOCode == code {
			a := airline
			return &a, nil
		}
	}
	return nil, nil
}

func (r *MemoryAirlineRepository) FindAll(_ context.Context) ([]domain.Airline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	airlines := make([]domain.Airline, 0, len(r.airlines))
	for _, airline := range r.airlines {
		airlines = append(airlines, airline)
	}
	return airlines, nil
}

func (r *MemoryAirlineRepository) FindActive(_ context.Context) ([]domain.Airline, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	airlines := make([]domain.Airline, 0)
	for _, airline := range r.airlines {
		if airline.Active {
			airlines = append(airlines, airline)
		}
	}
	return airlines, nil
}

func (r *MemoryAirlineRepository) Save(_ context.Context, airline domain.Airline) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.airlines[airline.ID] = airline
	return nil
}

func (r *MemoryAirlineRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.airlines[id]; !ok {
		return false, nil
	}
	delete(r.airlines, id)
	return true, nil
}

func (r *MemoryAirlineRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.airlines = make(map[string]domain.Airline)
	return nil
}

var _ AirlineRepository = (*MemoryAirlineRepository)(nil)
