package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"logisafe/internal/core/bus"
	"logisafe/internal/features/riskzones/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockZoneRepository is a mock implementation of ZoneRepository for testing.
type mockZoneRepository struct {
	zones       []domain.RiskZone
	listError   error
	appendError error
}

func (m *mockZoneRepository) List(ctx context.Context) ([]domain.RiskZone, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	return m.zones, nil
}

func (m *mockZoneRepository) Append(ctx context.Context, zone domain.RiskZone) error {
	if m.appendError != nil {
		return m.appendError
	}
	m.zones = append(m.zones, zone)
	return nil
}

// TestRiskZoneService_List verifies seeded zones precede stored ones.
func TestRiskZoneService_List(t *testing.T) {
	repo := &mockZoneRepository{zones: []domain.RiskZone{{ID: "gen-1", Location: "Pune"}}}
	svc := NewRiskZoneService(repo, nil, rand.New(rand.NewSource(1)))

	zones, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, zones, 6)
	assert.Equal(t, "NH48 Highway", zones[0].Area)
	assert.Equal(t, "gen-1", zones[5].ID)
}

// TestRiskZoneService_List_RepoError verifies repository error propagation.
func TestRiskZoneService_List_RepoError(t *testing.T) {
	repo := &mockZoneRepository{listError: errors.New("redis down")}
	svc := NewRiskZoneService(repo, nil, rand.New(rand.NewSource(1)))

	zones, err := svc.List(context.Background())
	assert.Nil(t, zones)
	assert.Error(t, err)
}

// TestRiskZoneService_GenerateForQuery verifies the zone is stored and published.
func TestRiskZoneService_GenerateForQuery(t *testing.T) {
	repo := &mockZoneRepository{}
	b := bus.New()
	ch := b.Subscribe(TopicZones)
	defer b.Unsubscribe(TopicZones, ch)

	svc := NewRiskZoneService(repo, b, rand.New(rand.NewSource(2)))

	zone, err := svc.GenerateForQuery(context.Background(), "theft reports near Chennai port")
	require.NoError(t, err)

	assert.Equal(t, "Chennai", zone.Location)
	require.Len(t, repo.zones, 1)
	assert.Equal(t, zone, repo.zones[0])

	select {
	case evt := <-ch:
		assert.Equal(t, "riskzone.created", evt.Type)
		assert.Equal(t, zone, evt.Data)
	default:
		t.Fatal("expected a published zone event")
	}
}

// TestRiskZoneService_GenerateForQuery_StoreError verifies the zone is not
// returned when persistence fails.
func TestRiskZoneService_GenerateForQuery_StoreError(t *testing.T) {
	repo := &mockZoneRepository{appendError: errors.New("redis down")}
	svc := NewRiskZoneService(repo, nil, rand.New(rand.NewSource(2)))

	_, err := svc.GenerateForQuery(context.Background(), "Mumbai")
	assert.Error(t, err)
}
