package domain

// VariantKey identifies one of the fixed labeled route alternatives.
type VariantKey string

const (
	// VariantFastest is optimized for minimum travel time.
	VariantFastest VariantKey = "fastest"
	// VariantSafest is optimized for theft prevention.
	VariantSafest VariantKey = "safest"
	// VariantEconomical is optimized for fuel efficiency.
	VariantEconomical VariantKey = "economical"
	// VariantBalanced trades off safety and speed.
	VariantBalanced VariantKey = "balanced"
)

// VariantKeys returns all keys in stable presentation order.
func VariantKeys() []VariantKey {
	return []VariantKey{VariantFastest, VariantSafest, VariantEconomical, VariantBalanced}
}

// VariantMode selects how many alternatives the generator produces.
type VariantMode string

const (
	// ModeBasic produces the fastest and safest variants.
	ModeBasic VariantMode = "basic"
	// ModeExtended produces all four variants with waypoints and cost estimates.
	ModeExtended VariantMode = "extended"
)

// RouteVariant is one labeled route alternative. Variants are regenerated on
// every optimize request and never persisted; only the chosen key is stored
// on the order.
type RouteVariant struct {
	// Key identifies the variant.
	Key VariantKey `json:"key"`
	// Name is the display name, e.g. "Fastest Route".
	Name string `json:"name"`
	// Description explains what the variant optimizes for.
	Description string `json:"description"`
	// Distance is the display distance, e.g. "142 km".
	Distance string `json:"distance"`
	// Duration is the display travel time, e.g. "3 hours".
	Duration string `json:"duration"`
	// RiskScore is 0.0-1.0, lower is safer.
	RiskScore float64 `json:"riskScore"`
	// Path is the human-readable corridor, e.g. "Mumbai → Highway → Pune".
	Path string `json:"path"`
	// RiskAreas lists risky segments; empty unless the effective risk
	// exceeds the variant's threshold.
	RiskAreas []string `json:"riskAreas"`
	// FuelConsumption is the display fuel estimate, e.g. "17 liters".
	FuelConsumption string `json:"fuelConsumption"`
	// CostEstimate is the display monetary estimate; extended mode only.
	CostEstimate string `json:"costEstimate,omitempty"`
	// Waypoints are intermediate stop labels.
	Waypoints []string `json:"waypoints"`
	// BadgeText is the UI badge label.
	BadgeText string `json:"badgeText"`
	// Icon names the UI icon for the variant.
	Icon string `json:"icon"`
	// Directions are the turn-by-turn driver instructions.
	Directions []string `json:"directions"`
}

// PathSeparator joins the corridor segments in RouteVariant.Path.
const PathSeparator = " → "
