package service

import (
	"context"
	"fmt"
	"time"

	"logisafe/internal/core/bus"
	"logisafe/internal/core/logger"
	"logisafe/internal/features/feed/domain"
	riskdomain "logisafe/internal/features/riskzones/domain"
	riskservice "logisafe/internal/features/riskzones/service"
)

// Listener turns risk zones announced on the bus into feed warnings. Zones
// are created in three places (the scheduler tick, the risk-zones endpoint
// and the post-assignment refresh), so consuming the bus gives the feed a
// single warning path instead of one per producer.
type Listener struct {
	log    *domain.Log
	bus    *bus.Bus
	events chan bus.Event
}

// NewListener creates a Listener subscribed to the zone topic.
func NewListener(log *domain.Log, b *bus.Bus) *Listener {
	return &Listener{
		log:    log,
		bus:    b,
		events: b.Subscribe(riskservice.TopicZones),
	}
}

// Run consumes zone events until the context is cancelled. Intended to run
// as a goroutine.
func (l *Listener) Run(ctx context.Context) {
	defer l.bus.Unsubscribe(riskservice.TopicZones, l.events)

	logger.Named("feed").Info("Feed listener started")

	for {
		select {
		case <-ctx.Done():
			logger.Named("feed").Info("Feed listener stopped")
			return
		case evt := <-l.events:
			l.handle(evt)
		}
	}
}

// handle appends the warning entry for one created zone.
func (l *Listener) handle(evt bus.Event) {
	zone, ok := evt.Data.(riskdomain.RiskZone)
	if !ok {
		return
	}

	entry := domain.FeedEntry{
		Type:      domain.EntryWarning,
		Message:   fmt.Sprintf("Elevated risk reported near %s", zone.Location),
		Details:   zone.Description,
		Timestamp: time.Now(),
	}

	l.log.Append(entry)
	l.bus.Publish(TopicFeed, bus.Event{Type: "feed.entry", Data: entry})
}
