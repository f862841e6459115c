package domain

// Status is an order's delivery status.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusInTransit Status = "In Transit"
	StatusDelayed   Status = "Delayed"
	StatusDelivered Status = "Delivered"
)

// Statuses returns every valid status.
func Statuses() []Status {
	return []Status{StatusPending, StatusInTransit, StatusDelayed, StatusDelivered}
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

// AllowTransition is the directed graph of permitted status changes.
// Delivered is terminal.
var AllowTransition = map[Status][]Status{
	StatusPending:   {StatusInTransit, StatusDelayed},
	StatusInTransit: {StatusDelivered, StatusDelayed},
	StatusDelayed:   {StatusInTransit, StatusDelivered},
	StatusDelivered: {},
}

// CanTransition reports whether from -> to is a permitted change.
// A no-op transition to the same status is always permitted.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
