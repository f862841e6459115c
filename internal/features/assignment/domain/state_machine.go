package domain

// State is a step of the route assignment workflow.
type State string

const (
	StateIdle              State = "Idle"
	StateVariantsGenerated State = "VariantsGenerated"
	StateVariantSelected   State = "VariantSelected"
	StateDriverAssigning   State = "DriverAssigning"
	StateAssigned          State = "Assigned"
)

// AllowTransition is the directed graph of permitted workflow steps.
// Reset is modeled separately: Idle is reachable from every state.
var AllowTransition = map[State][]State{
	StateIdle:              {StateVariantsGenerated},
	StateVariantsGenerated: {StateVariantSelected},
	StateVariantSelected:   {StateDriverAssigning},
	StateDriverAssigning:   {StateAssigned},
	StateAssigned:          {},
}

// CanTransition reports whether from -> to is a permitted step.
// Returning to Idle (reset) and staying in place are always permitted.
func CanTransition(from, to State) bool {
	if from == to || to == StateIdle {
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
