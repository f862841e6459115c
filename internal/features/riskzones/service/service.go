package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"logisafe/internal/core/bus"
	"logisafe/internal/features/riskzones/domain"
	"logisafe/internal/features/riskzones/ports"
)

// TopicZones is the bus topic new zones are published on.
const TopicZones = "risk-zones"

// RiskZoneService exposes the seeded zones plus all generated ones and
// produces new zones from free-text queries.
type RiskZoneService struct {
	repo ports.ZoneRepository
	bus  *bus.Bus

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRiskZoneService creates a new RiskZoneService.
// A nil rng falls back to a time-seeded source.
func NewRiskZoneService(repo ports.ZoneRepository, b *bus.Bus, rng *rand.Rand) *RiskZoneService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RiskZoneService{
		repo: repo,
		bus:  b,
		rng:  rng,
	}
}

// List returns the seeded zones followed by every generated zone.
func (s *RiskZoneService) List(ctx context.Context) ([]domain.RiskZone, error) {
	stored, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list risk zones: %w", err)
	}

	return append(domain.SeededZones(time.Now()), stored...), nil
}

// GenerateForQuery creates a zone for the first known city mentioned in the
// query, appends it to the store and publishes it on the bus.
func (s *RiskZoneService) GenerateForQuery(ctx context.Context, query string) (domain.RiskZone, error) {
	s.mu.Lock()
	zone := domain.Generate(query, s.rng, time.Now())
	s.mu.Unlock()

	if err := s.repo.Append(ctx, zone); err != nil {
		return domain.RiskZone{}, fmt.Errorf("service: failed to store risk zone: %w", err)
	}

	if s.bus != nil {
		s.bus.Publish(TopicZones, bus.Event{Type: "riskzone.created", Data: zone})
	}

	return zone, nil
}
