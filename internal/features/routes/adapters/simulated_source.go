package adapters

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"logisafe/internal/features/routes/domain"
	"logisafe/internal/features/routes/ports"
)

// Per-variant risk multipliers. The fixed spread keeps the relative risk
// ordering stable no matter what the jitter does: safest always lands lowest
// and fastest always highest.
const (
	fastestRiskMultiplier    = 1.0
	safestRiskMultiplier     = 0.4
	economicalRiskMultiplier = 0.6
	balancedRiskMultiplier   = 0.5
)

// Risk-area thresholds on the cargo base factor.
const (
	fastestRiskAreaThreshold    = 0.6
	economicalRiskAreaThreshold = 0.7
)

// SimulatedSource implements RouteVariantSource with randomized simulation
// data shaped like a real optimizer's answer. Distance, duration, fuel and
// cost get bounded jitter; risk scores are derived purely from the cargo
// base factor and the per-variant multiplier.
type SimulatedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSource creates a SimulatedSource. Pass a seeded *rand.Rand for
// reproducible output in tests; nil uses a time-based seed.
func NewSimulatedSource(rng *rand.Rand) *SimulatedSource {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SimulatedSource{rng: rng}
}

// Generate implements RouteVariantSource.
func (s *SimulatedSource) Generate(ctx context.Context, req ports.OptimizeRequest) (map[domain.VariantKey]domain.RouteVariant, error) {
	base := domain.BaseRiskFactor(req.CargoType)

	variants := map[domain.VariantKey]domain.RouteVariant{
		domain.VariantFastest: s.fastest(req, base),
		domain.VariantSafest:  s.safest(req, base),
	}

	if req.Mode == domain.ModeExtended {
		variants[domain.VariantEconomical] = s.economical(req, base)
		variants[domain.VariantBalanced] = s.balanced(req, base)
	}

	return variants, nil
}

func (s *SimulatedSource) fastest(req ports.OptimizeRequest, base float64) domain.RouteVariant {
	corridor := "Highway"
	riskAreas := []string{}
	if base > fastestRiskAreaThreshold {
		riskAreas = append(riskAreas, "Highway (High theft risk)")
		if req.Mode == domain.ModeExtended {
			riskAreas = append(riskAreas, "Toll Plaza (Medium risk at night)")
		}
	}

	directions := []string{
		fmt.Sprintf("Start from %s", req.Origin),
		"Take the highway",
		fmt.Sprintf("Arrive at %s", req.Destination),
	}
	if req.Mode == domain.ModeExtended {
		directions = []string{
			fmt.Sprintf("Start from %s", req.Origin),
			"Take the main highway entrance",
			"Continue straight on the highway for 80km",
			fmt.Sprintf("Take exit towards %s", req.Destination),
			fmt.Sprintf("Arrive at %s", req.Destination),
		}
	}

	v := domain.RouteVariant{
		Key:             domain.VariantFastest,
		Name:            "Fastest Route",
		Description:     "Optimized for minimum travel time",
		Distance:        fmt.Sprintf("%d km", 100+s.intn(50)),
		Duration:        fmt.Sprintf("%d hours", 2+s.intn(2)),
		RiskScore:       base * fastestRiskMultiplier,
		Path:            s.corridor(req, corridor),
		RiskAreas:       riskAreas,
		FuelConsumption: fmt.Sprintf("%d liters", 15+s.intn(10)),
		Waypoints:       waypoints(req, nil),
		BadgeText:       "Fastest",
		Icon:            "Clock",
		Directions:      directions,
	}
	if req.Mode == domain.ModeExtended {
		v.CostEstimate = fmt.Sprintf("₹%d", 5000+s.intn(1000))
	}
	return v
}

func (s *SimulatedSource) safest(req ports.OptimizeRequest, base float64) domain.RouteVariant {
	corridor := "Alternate Route"
	directions := []string{
		fmt.Sprintf("Start from %s", req.Origin),
		"Take the safer alternate route",
		"Pass through security checkpoint",
		fmt.Sprintf("Arrive at %s", req.Destination),
	}
	var fixed []string
	if req.Mode == domain.ModeExtended {
		corridor = "Police Checkpoints"
		fixed = []string{"Police Checkpoint", "Secure Rest Area"}
		directions = []string{
			fmt.Sprintf("Start from %s", req.Origin),
			"Take the secondary road towards the police checkpoint",
			"Pass through the police checkpoint (security verification)",
			"Continue to the secure rest area",
			"Take the monitored route with CCTV coverage",
			fmt.Sprintf("Arrive at %s", req.Destination),
		}
	}

	v := domain.RouteVariant{
		Key:             domain.VariantSafest,
		Name:            "Safest Route",
		Description:     "AI-optimized for theft prevention",
		Distance:        fmt.Sprintf("%d km", 130+s.intn(30)),
		Duration:        fmt.Sprintf("%d hours", 3+s.intn(2)),
		RiskScore:       base * safestRiskMultiplier,
		Path:            s.corridor(req, corridor),
		RiskAreas:       []string{},
		FuelConsumption: fmt.Sprintf("%d liters", 18+s.intn(10)),
		Waypoints:       waypoints(req, fixed),
		BadgeText:       "Safest",
		Icon:            "Shield",
		Directions:      directions,
	}
	if req.Mode == domain.ModeExtended {
		v.CostEstimate = fmt.Sprintf("₹%d", 6000+s.intn(1000))
	}
	return v
}

func (s *SimulatedSource) economical(req ports.OptimizeRequest, base float64) domain.RouteVariant {
	riskAreas := []string{}
	if base > economicalRiskAreaThreshold {
		riskAreas = append(riskAreas, "Secondary Roads (Medium theft risk)")
	}

	return domain.RouteVariant{
		Key:             domain.VariantEconomical,
		Name:            "Economical Route",
		Description:     "Optimized for fuel efficiency",
		Distance:        fmt.Sprintf("%d km", 120+s.intn(20)),
		Duration:        fmt.Sprintf("%d hours", 3+s.intn(1)),
		RiskScore:       base * economicalRiskMultiplier,
		Path:            s.corridor(req, "Secondary Roads"),
		RiskAreas:       riskAreas,
		FuelConsumption: fmt.Sprintf("%d liters", 12+s.intn(5)),
		CostEstimate:    fmt.Sprintf("₹%d", 4500+s.intn(800)),
		Waypoints:       waypoints(req, nil),
		BadgeText:       "Economical",
		Icon:            "RouteIcon",
		Directions: []string{
			fmt.Sprintf("Start from %s", req.Origin),
			"Take the fuel-efficient route via secondary roads",
			"Maintain constant speed of 60-70 km/h for optimal fuel consumption",
			"Avoid steep inclines where possible",
			fmt.Sprintf("Arrive at %s", req.Destination),
		},
	}
}

func (s *SimulatedSource) balanced(req ports.OptimizeRequest, base float64) domain.RouteVariant {
	return domain.RouteVariant{
		Key:             domain.VariantBalanced,
		Name:            "Balanced Route",
		Description:     "Good balance of safety and speed",
		Distance:        fmt.Sprintf("%d km", 115+s.intn(25)),
		Duration:        "2.5 hours",
		RiskScore:       base * balancedRiskMultiplier,
		Path:            s.corridor(req, "Mixed Roads"),
		RiskAreas:       []string{},
		FuelConsumption: fmt.Sprintf("%d liters", 14+s.intn(7)),
		CostEstimate:    fmt.Sprintf("₹%d", 5200+s.intn(900)),
		Waypoints:       waypoints(req, []string{"Toll Plaza"}),
		BadgeText:       "Balanced",
		Icon:            "MapPin",
		Directions: []string{
			fmt.Sprintf("Start from %s", req.Origin),
			"Take the main road for 30km",
			"Pass through the toll plaza",
			"Continue on the regional highway",
			"Take the direct route to avoid city traffic",
			fmt.Sprintf("Arrive at %s", req.Destination),
		},
	}
}

// corridor renders the human-readable path string "origin → label → destination".
func (s *SimulatedSource) corridor(req ports.OptimizeRequest, label string) string {
	return req.Origin + domain.PathSeparator + label + domain.PathSeparator + req.Destination
}

// waypoints merges the variant's fixed waypoints with the requested stops.
func waypoints(req ports.OptimizeRequest, fixed []string) []string {
	out := make([]string, 0, len(fixed)+len(req.Stops))
	out = append(out, fixed...)
	out = append(out, req.Stops...)
	return out
}

// intn is rand.Intn guarded for concurrent handler use.
func (s *SimulatedSource) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
