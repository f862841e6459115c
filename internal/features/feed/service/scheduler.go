package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"logisafe/internal/core/bus"
	"logisafe/internal/core/logger"
	"logisafe/internal/features/feed/domain"
	"logisafe/internal/features/feed/ports"
	geodomain "logisafe/internal/features/geo/domain"

	"go.uber.org/zap"
)

// TopicFeed is the bus topic new feed entries are published on.
const TopicFeed = "feed"

// warningProbability is the per-tick chance of a risk-zone warning
// instead of a routine info entry.
const warningProbability = 0.3

// infoMessages is the pool of routine updates shown between warnings.
var infoMessages = []string{
	"Driver reported smooth traffic on assigned route.",
	"Weather conditions normal across operating regions.",
	"Traffic moving steadily on major highways.",
	"All checkpoints reporting normal activity.",
	"Fleet telemetry nominal, no deviations reported.",
	"Road conditions clear on the northern corridor.",
}

// Scheduler drives the live risk feed. Each tick it either generates a
// risk zone, whose bus announcement the Listener turns into a warning
// entry, or appends a routine info entry directly.
type Scheduler struct {
	log      *domain.Log
	zones    ports.ZoneGenerator
	bus      *bus.Bus
	interval time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewScheduler creates a Scheduler.
// A nil rng falls back to a time-seeded source.
func NewScheduler(log *domain.Log, zones ports.ZoneGenerator, b *bus.Bus, interval time.Duration, rng *rand.Rand) *Scheduler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scheduler{
		log:      log,
		zones:    zones,
		bus:      b,
		interval: interval,
		rng:      rng,
	}
}

// Log returns the feed buffer served over HTTP.
func (s *Scheduler) Log() *domain.Log {
	return s.log
}

// Run ticks until the context is cancelled. Intended to run as a goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Named("feed").Info("Feed scheduler started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			logger.Named("feed").Info("Feed scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick produces one feed entry.
func (s *Scheduler) tick(ctx context.Context) {
	s.mu.Lock()
	warn := s.rng.Float64() < warningProbability
	cities := geodomain.Cities()
	city := cities[s.rng.Intn(len(cities))]
	info := infoMessages[s.rng.Intn(len(infoMessages))]
	s.mu.Unlock()

	var entry domain.FeedEntry
	if warn {
		_, err := s.zones.GenerateForQuery(ctx, city)
		if err == nil {
			// The created zone comes back through the bus and the Listener
			// appends the warning entry.
			return
		}
		logger.Named("feed").Warn("Risk zone generation failed",
			zap.String("city", city),
			zap.Error(err),
		)
		entry = domain.FeedEntry{
			Type:      domain.EntryError,
			Message:   fmt.Sprintf("Failed to refresh risk data for %s", city),
			Timestamp: time.Now(),
		}
	} else {
		entry = domain.FeedEntry{
			Type:      domain.EntryInfo,
			Message:   info,
			Timestamp: time.Now(),
		}
	}

	s.log.Append(entry)
	if s.bus != nil {
		s.bus.Publish(TopicFeed, bus.Event{Type: "feed.entry", Data: entry})
	}
}
