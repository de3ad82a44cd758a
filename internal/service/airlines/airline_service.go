package airlines

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/avialab/aircatalog/internal/domain"
	"github.com/avialab/aircatalog/internal/id"
	"github.com/avialab/aircatalog/internal/kafka"
	"github.com/avialab/aircatalog/internal/repository"
	"github.com/avialab/aircatalog/pkg/logger"
	"github.com/avialab/aircatalog/pkg/metrics"
)

type AirlineUseCase interface {
	Create(ctx context.Context, input CreateAirlineInput) (*domain.Airline, error)
	Get(ctx context.Context, airlineID string) (*domain.Airline, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Airline, error)
	Update(ctx context.Context, airlineID string, input UpdateAirlineInput) (*domain.Airline, error)
	Delete(ctx context.Context, airlineID string) (bool, error)
}

type Cache interface {
	GetAirlines(ctx context.Context, activeOnly bool) ([]domain.Airline, error)
	SetAirlines(ctx context.Context, activeOnly bool, airlines []domain.Airline) error
	Invalidate(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateAirlineInput struct {
	Name     string
	IATACode string
	ICAOCode string
	Country  string
	Active   *bool
}

type UpdateAirlineInput struct {
	Name    *string
	Country *string
	Active  *bool
}

type AirlineService struct {
	repo     repository.AirlineRepository
	ids      id.Generator
	cache    Cache
	producer Producer
	topic    string
	metrics  *metrics.Metrics
	log      logger.Logger

	// createMu serializes the duplicate-code check against the save; the
	// repository lock alone does not cover the compound sequence.
	createMu sync.Mutex

	now func() time.Time
}

type AirlineServiceOption func(*AirlineService)

func WithCache(cache Cache) AirlineServiceOption {
	return func(s *AirlineService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, topic string) AirlineServiceOption {
	return func(s *AirlineService) {
		s.producer = producer
		s.topic = topic
	}
}

func WithMetrics(m *metrics.Metrics) AirlineServiceOption {
	return func(s *AirlineService) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) AirlineServiceOption {
	return func(s *AirlineService) {
		s.now = now
	}
}

func NewAirlineService(repo repository.AirlineRepository, ids id.Generator, log logger.Logger, opts ...AirlineServiceOption) *AirlineService {
	service := &AirlineService{
		repo: repo,
		ids:  ids,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *AirlineService) Create(ctx context.Context, input CreateAirlineInput) (*domain.Airline, error) {
	iataCode := strings.ToUpper(strings.TrimSpace(input.IATACode))
	icaoCode := strings.ToUpper(strings.TrimSpace(input.ICAOCode))

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()

	existing, err := s.repo.FindByIATACode(ctx, iataCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if s.metrics != nil {
			s.metrics.CodeConflicts.Inc()
		}
		return nil, &domain.ConflictError{Field: "IATA code", Value: iataCode}
	}

	existing, err = s.repo.FindByICAOCode(ctx, icaoCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if s.metrics != nil {
			s.metrics.CodeConflicts.Inc()
		}
		return nil, &domain.ConflictError{Field: "ICAO code", Value: icaoCode}
	}

	airline, err := domain.NewAirline(s.ids.Generate(), input.Name, iataCode, icaoCode, input.Country, active)
	if err != nil {
		return nil, err
	}
	now := s.now()
	airline.CreatedAt = &now
	airline.UpdatedAt = &now

	if err := s.repo.Save(ctx, airline); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AirlinesCreated.Inc()
	}
	s.invalidateCache(ctx)
	s.publish(ctx, kafka.EventAirlineCreated, airline)
	return &airline, nil
}

func (s *AirlineService) Get(ctx context.Context, airlineID string) (*domain.Airline, error) {
	return s.repo.FindByID(ctx, airlineID)
}

func (s *AirlineService) List(ctx context.Context, activeOnly bool) ([]domain.Airline, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetAirlines(ctx, activeOnly); err == nil && cached != nil {
			return cached, nil
		}
	}

	var (
		airlines []domain.Airline
		err      error
	)
	if activeOnly {
		airlines, err = s.repo.FindActive(ctx)
	} else {
		airlines, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetAirlines(ctx, activeOnly, airlines)
	}
	return airlines, nil
}

func (s *AirlineService) Update(ctx context.Context, airlineID string, input UpdateAirlineInput) (*domain.Airline, error) {
	current, err := s.repo.FindByID(ctx, airlineID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	updated, err := current.WithPatch(domain.AirlinePatch{
		Name:    input.Name,
		Country: input.Country,
		Active:  input.Active,
	}, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, updated); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.AirlinesUpdated.Inc()
	}
	s.invalidateCache(ctx)
	s.publish(ctx, kafka.EventAirlineUpdated, updated)
	return &updated, nil
}

func (s *AirlineService) Delete(ctx context.Context, airlineID string) (bool, error) {
	current, err := s.repo.FindByID(ctx, airlineID)
	if err != nil {
		return false, err
	}

	deleted, err := s.repo.Delete(ctx, airlineID)
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	if s.metrics != nil {
		s.metrics.AirlinesDeleted.Inc()
	}
	s.invalidateCache(ctx)
	if current != nil {
		s.publish(ctx, kafka.EventAirlineDeleted, *current)
	}
	return true, nil
}

func (s *AirlineService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("failed to invalidate airline cache", "error", err)
	}
}

// publish is fire-and-forget: event delivery never fails the API caller.
func (s *AirlineService) publish(ctx context.Context, eventType string, airline domain.Airline) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.AirlineEvent{
		Type:       eventType,
		AirlineID:  airline.ID,
		Name:       airline.Name,
		IATACode:   airline.IATACode,
		ICAOCode:   airline.ICAOCode,
		Country:    airline.Country,
		Active:     airline.Active,
		OccurredAt: s.now(),
	}
	if err := s.producer.Publish(ctx, s.topic, airline.ID, event); err != nil {
		s.log.Warn("failed to publish airline event", "type", eventType, "airline_id", airline.ID, "error", err)
	}
}

var _ AirlineUseCase = (*AirlineService)(nil)
