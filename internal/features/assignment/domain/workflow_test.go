package domain

import (
	"testing"

	routedomain "logisafe/internal/features/routes/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
		want bool
	}{
		{name: "Idle to VariantsGenerated", from: StateIdle, to: StateVariantsGenerated, want: true},
		{name: "VariantsGenerated to VariantSelected", from: StateVariantsGenerated, to: StateVariantSelected, want: true},
		{name: "VariantSelected to DriverAssigning", from: StateVariantSelected, to: StateDriverAssigning, want: true},
		{name: "DriverAssigning to Assigned", from: StateDriverAssigning, to: StateAssigned, want: true},
		{name: "Idle cannot skip to Assigned", from: StateIdle, to: StateAssigned, want: false},
		{name: "Assigned cannot go back to selection", from: StateAssigned, to: StateVariantSelected, want: false},
		{name: "Reset from Assigned", from: StateAssigned, to: StateIdle, want: true},
		{name: "Reset from VariantsGenerated", from: StateVariantsGenerated, to: StateIdle, want: true},
		{name: "Same state is a no-op", from: StateVariantSelected, to: StateVariantSelected, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestAutoSelect(t *testing.T) {
	variants := map[routedomain.VariantKey]routedomain.RouteVariant{
		routedomain.VariantFastest: {Key: routedomain.VariantFastest},
		routedomain.VariantSafest:  {Key: routedomain.VariantSafest},
	}
	assert.Equal(t, routedomain.VariantSafest, AutoSelect(variants))

	delete(variants, routedomain.VariantSafest)
	assert.Equal(t, routedomain.VariantFastest, AutoSelect(variants))

	assert.Equal(t, routedomain.VariantKey(""), AutoSelect(nil))
}

func TestInstructions_FromDirections(t *testing.T) {
	v := routedomain.RouteVariant{
		Directions: []string{"Take NH48 highway", "Continue to Pune"},
		Path:       "Mumbai → NH48 → Pune",
	}
	assert.Equal(t, v.Directions, Instructions(v))
}

func TestInstructions_SynthesizedFromPath(t *testing.T) {
	v := routedomain.RouteVariant{
		Path:      "Mumbai → Lonavala → Pune",
		Waypoints: []string{"Police Checkpoint", "Secure Rest Area"},
	}

	got := Instructions(v)
	assert.Equal(t, []string{
		"Proceed from Mumbai to Lonavala.",
		"Proceed from Lonavala to Pune.",
		"Planned waypoints: Police Checkpoint, Secure Rest Area.",
	}, got)
}

func TestInstructions_SinglePointPath(t *testing.T) {
	v := routedomain.RouteVariant{Path: "Mumbai"}
	assert.Empty(t, Instructions(v))
}

func TestWorkflow_Reset(t *testing.T) {
	w := NewWorkflow()
	w.State = StateAssigned
	w.Selected = routedomain.VariantSafest
	w.Record = &AssignmentRecord{DriverID: "D002"}

	w.Reset()

	assert.Equal(t, StateIdle, w.State)
	assert.Empty(t, w.Selected)
	assert.Nil(t, w.Record)
	assert.Nil(t, w.Variants)
}
