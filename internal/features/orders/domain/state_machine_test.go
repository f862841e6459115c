package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "Pending to In Transit", from: StatusPending, to: StatusInTransit, want: true},
		{name: "Pending to Delayed", from: StatusPending, to: StatusDelayed, want: true},
		{name: "Pending to Delivered", from: StatusPending, to: StatusDelivered, want: false},
		{name: "In Transit to Delivered", from: StatusInTransit, to: StatusDelivered, want: true},
		{name: "In Transit to Delayed", from: StatusInTransit, to: StatusDelayed, want: true},
		{name: "In Transit to Pending", from: StatusInTransit, to: StatusPending, want: false},
		{name: "Delayed to In Transit", from: StatusDelayed, to: StatusInTransit, want: true},
		{name: "Delayed to Delivered", from: StatusDelayed, to: StatusDelivered, want: true},
		{name: "Delivered is terminal", from: StatusDelivered, to: StatusInTransit, want: false},
		{name: "Same status is a no-op", from: StatusDelayed, to: StatusDelayed, want: true},
		{name: "Unknown source status", from: Status("Lost"), to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, Status("Lost").Valid())
	assert.False(t, Status("").Valid())
}
