package service

import (
	"context"
	"errors"
	"testing"

	"logisafe/internal/features/routes/domain"
	"logisafe/internal/features/routes/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockVariantSource is a mock implementation of RouteVariantSource for testing.
type mockVariantSource struct {
	returnVariants map[domain.VariantKey]domain.RouteVariant
	returnError    error
	lastRequest    ports.OptimizeRequest
	calls          int
}

// Generate implements RouteVariantSource.
func (m *mockVariantSource) Generate(ctx context.Context, req ports.OptimizeRequest) (map[domain.VariantKey]domain.RouteVariant, error) {
	m.calls++
	m.lastRequest = req
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnVariants, nil
}

// TestRouteService_Optimize_Success verifies delegation to the source.
func TestRouteService_Optimize_Success(t *testing.T) {
	expected := map[domain.VariantKey]domain.RouteVariant{
		domain.VariantFastest: {Key: domain.VariantFastest, RiskScore: 0.8},
		domain.VariantSafest:  {Key: domain.VariantSafest, RiskScore: 0.32},
	}
	source := &mockVariantSource{returnVariants: expected}

	svc := NewRouteService(source)

	variants, err := svc.Optimize(context.Background(), ports.OptimizeRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
		CargoType:   domain.CargoElectronics,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, variants)
	// Mode defaults to basic when unset.
	assert.Equal(t, domain.ModeBasic, source.lastRequest.Mode)
}

// TestRouteService_Optimize_MissingLocations verifies rejection without calling the source.
func TestRouteService_Optimize_MissingLocations(t *testing.T) {
	source := &mockVariantSource{}
	svc := NewRouteService(source)

	_, err := svc.Optimize(context.Background(), ports.OptimizeRequest{Destination: "Pune"})
	assert.ErrorIs(t, err, ErrMissingLocation)

	_, err = svc.Optimize(context.Background(), ports.OptimizeRequest{Origin: "Mumbai"})
	assert.ErrorIs(t, err, ErrMissingLocation)

	assert.Zero(t, source.calls)
}

// TestRouteService_Optimize_SourceError verifies source error propagation.
func TestRouteService_Optimize_SourceError(t *testing.T) {
	source := &mockVariantSource{returnError: errors.New("backend unavailable")}
	svc := NewRouteService(source)

	variants, err := svc.Optimize(context.Background(), ports.OptimizeRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
	})

	assert.Nil(t, variants)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate route variants")
}

// TestRouteService_Optimize_EmptyResult verifies an empty source answer is an error, not a partial result.
func TestRouteService_Optimize_EmptyResult(t *testing.T) {
	source := &mockVariantSource{returnVariants: map[domain.VariantKey]domain.RouteVariant{}}
	svc := NewRouteService(source)

	variants, err := svc.Optimize(context.Background(), ports.OptimizeRequest{
		Origin:      "Mumbai",
		Destination: "Pune",
	})

	assert.Nil(t, variants)
	assert.Error(t, err)
}
