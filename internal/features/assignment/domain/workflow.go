package domain

import (
	"fmt"
	"strings"
	"time"

	routedomain "logisafe/internal/features/routes/domain"
)

// AssignmentRecord is one entry of the durable assignment log.
type AssignmentRecord struct {
	// OrderID is the bound order, empty for ad-hoc route assignments.
	OrderID string `json:"orderId,omitempty"`
	// DriverID is the assigned driver.
	DriverID string `json:"driverId"`
	// Route is the chosen variant key.
	Route string `json:"route"`
	// AssignedAt is when the assignment was made.
	AssignedAt time.Time `json:"assignedAt"`
}

// Workflow is one session's route assignment in progress.
type Workflow struct {
	// State is the current workflow step.
	State State `json:"state"`
	// OrderID is the order being routed, if any.
	OrderID string `json:"orderId,omitempty"`
	// Variants holds the generated route options.
	Variants map[routedomain.VariantKey]routedomain.RouteVariant `json:"variants,omitempty"`
	// Selected is the currently chosen variant key.
	Selected routedomain.VariantKey `json:"selectedRoute,omitempty"`
	// Instructions is the turn-by-turn text for the selected variant.
	Instructions []string `json:"instructions,omitempty"`
	// Record is set once the workflow reaches Assigned.
	Record *AssignmentRecord `json:"record,omitempty"`
	// OrderPersisted reports whether the order update of the completed
	// assignment reached the store.
	OrderPersisted bool `json:"-"`
	// LogPersisted reports whether the completed assignment was appended
	// to the durable log.
	LogPersisted bool `json:"-"`
}

// NewWorkflow returns an Idle workflow.
func NewWorkflow() *Workflow {
	return &Workflow{State: StateIdle}
}

// Reset clears all generated data and returns the workflow to Idle.
func (w *Workflow) Reset() {
	*w = Workflow{State: StateIdle}
}

// SelectedVariant returns the currently selected variant.
func (w *Workflow) SelectedVariant() (routedomain.RouteVariant, bool) {
	v, ok := w.Variants[w.Selected]
	return v, ok
}

// AutoSelect picks the safest variant when present, else the first
// available key in stable variant-key order.
func AutoSelect(variants map[routedomain.VariantKey]routedomain.RouteVariant) routedomain.VariantKey {
	if _, ok := variants[routedomain.VariantSafest]; ok {
		return routedomain.VariantSafest
	}
	for _, key := range routedomain.VariantKeys() {
		if _, ok := variants[key]; ok {
			return key
		}
	}
	return ""
}

// Instructions produces the driver-facing direction text for a variant.
// Variants that carry their own directions use them verbatim; otherwise the
// steps are synthesized from the path string, one per adjacent segment pair,
// with a closing waypoint enumeration when waypoints exist.
func Instructions(v routedomain.RouteVariant) []string {
	if len(v.Directions) > 0 {
		return v.Directions
	}

	segments := strings.Split(v.Path, routedomain.PathSeparator)
	var out []string
	for i := 0; i+1 < len(segments); i++ {
		out = append(out, fmt.Sprintf("Proceed from %s to %s.", segments[i], segments[i+1]))
	}
	if len(v.Waypoints) > 0 {
		out = append(out, "Planned waypoints: "+strings.Join(v.Waypoints, ", ")+".")
	}
	return out
}
