package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"logisafe/internal/core/logger"
	"logisafe/internal/features/assignment/domain"
	"logisafe/internal/features/assignment/ports"
	driverdomain "logisafe/internal/features/drivers/domain"
	routedomain "logisafe/internal/features/routes/domain"
	routeports "logisafe/internal/features/routes/ports"

	"go.uber.org/zap"
)

var (
	// ErrUnknownVariant is returned when a selection names a key that was
	// not generated.
	ErrUnknownVariant = errors.New("unknown route variant")
	// ErrNoRouteSelected is returned when assignment runs without a route.
	ErrNoRouteSelected = errors.New("no route selected")
	// ErrDriverUnavailable is returned when the chosen driver is Busy.
	ErrDriverUnavailable = errors.New("driver unavailable")
	// ErrAlreadyAssigned is returned when a finished workflow is re-assigned
	// with a different driver or route.
	ErrAlreadyAssigned = errors.New("workflow already assigned")
	// ErrInvalidState is returned for a request the state machine forbids.
	ErrInvalidState = errors.New("invalid workflow state")
)

// zoneUpdateTimeout bounds the fire-and-forget risk refresh after assignment.
const zoneUpdateTimeout = 15 * time.Second

// GenerateInput carries the route generation parameters.
type GenerateInput struct {
	Origin      string
	Destination string
	Stops       []string
	CargoType   routedomain.CargoType
	Mode        routedomain.VariantMode
	OrderID     string
}

// AssignResult reports the outcome of a driver assignment.
type AssignResult struct {
	// Record is the assignment log entry.
	Record domain.AssignmentRecord `json:"record"`
	// Durable reports whether the order and log writes succeeded.
	// The in-memory workflow completes either way.
	Durable bool `json:"durable"`
	// AlreadyAssigned is true when the call repeated a completed
	// assignment and no new log entry was written.
	AlreadyAssigned bool `json:"alreadyAssigned"`
}

// WorkflowManager runs one assignment workflow per session.
type WorkflowManager struct {
	optimizer ports.RouteOptimizer
	drivers   ports.DriverDirectory
	orders    ports.OrderAssigner
	zones     ports.ZoneUpdater
	log       ports.RecordLog

	mu    sync.Mutex
	flows map[string]*domain.Workflow
}

// NewWorkflowManager creates a WorkflowManager.
func NewWorkflowManager(optimizer ports.RouteOptimizer, drivers ports.DriverDirectory, orders ports.OrderAssigner, zones ports.ZoneUpdater, log ports.RecordLog) *WorkflowManager {
	return &WorkflowManager{
		optimizer: optimizer,
		drivers:   drivers,
		orders:    orders,
		zones:     zones,
		log:       log,
		flows:     make(map[string]*domain.Workflow),
	}
}

// flow returns the session's workflow, creating an Idle one on first use.
// Caller must hold mu.
func (m *WorkflowManager) flow(sessionID string) *domain.Workflow {
	w, ok := m.flows[sessionID]
	if !ok {
		w = domain.NewWorkflow()
		m.flows[sessionID] = w
	}
	return w
}

// Snapshot returns a copy of the session's current workflow.
func (m *WorkflowManager) Snapshot(sessionID string) domain.Workflow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.flow(sessionID)
}

// Generate runs route optimization and starts a fresh workflow holding the
// result. The safest variant is auto-selected when present.
func (m *WorkflowManager) Generate(ctx context.Context, sessionID string, in GenerateInput) (domain.Workflow, error) {
	variants, err := m.optimizer.Optimize(ctx, routeports.OptimizeRequest{
		Origin:      in.Origin,
		Destination: in.Destination,
		Stops:       in.Stops,
		CargoType:   in.CargoType,
		Mode:        in.Mode,
	})
	if err != nil {
		return domain.Workflow{}, err
	}

	selected := domain.AutoSelect(variants)

	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.flow(sessionID)
	w.Reset()
	w.State = domain.StateVariantsGenerated
	w.OrderID = in.OrderID
	w.Variants = variants
	w.Selected = selected
	if v, ok := w.SelectedVariant(); ok {
		w.Instructions = domain.Instructions(v)
	}

	return *w, nil
}

// Select chooses one of the generated variants and recomputes instructions.
func (m *WorkflowManager) Select(sessionID string, key routedomain.VariantKey) (domain.Workflow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.flow(sessionID)
	if !domain.CanTransition(w.State, domain.StateVariantSelected) {
		return domain.Workflow{}, fmt.Errorf("%w: cannot select route in state %s", ErrInvalidState, w.State)
	}

	v, ok := w.Variants[key]
	if !ok {
		return domain.Workflow{}, fmt.Errorf("%w: %s", ErrUnknownVariant, key)
	}

	w.State = domain.StateVariantSelected
	w.Selected = key
	w.Instructions = domain.Instructions(v)

	return *w, nil
}

// Reset returns the session's workflow to Idle. Always succeeds.
func (m *WorkflowManager) Reset(sessionID string) domain.Workflow {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.flow(sessionID)
	w.Reset()
	return *w
}

// Assign binds the selected route to a driver. The driver must exist and be
// Available. Repeating a completed assignment with the same driver and route
// is a no-op; a different driver or route is rejected. Order and log writes
// are best-effort: their failure is reported through Durable, not by rolling
// the workflow back.
func (m *WorkflowManager) Assign(ctx context.Context, sessionID, driverID string) (AssignResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w := m.flow(sessionID)

	if w.State == domain.StateAssigned {
		if w.Record != nil && w.Record.DriverID == driverID && w.Record.Route == string(w.Selected) {
			durable := m.replayWrites(ctx, w)
			return AssignResult{Record: *w.Record, Durable: durable, AlreadyAssigned: true}, nil
		}
		return AssignResult{}, fmt.Errorf("%w: assigned to driver %s", ErrAlreadyAssigned, recordDriver(w))
	}

	if w.Selected == "" {
		return AssignResult{}, ErrNoRouteSelected
	}
	if _, ok := w.SelectedVariant(); !ok {
		return AssignResult{}, ErrNoRouteSelected
	}

	// Generation auto-selects, so assignment may start one step early.
	if w.State == domain.StateVariantsGenerated {
		w.State = domain.StateVariantSelected
	}
	if !domain.CanTransition(w.State, domain.StateDriverAssigning) {
		return AssignResult{}, fmt.Errorf("%w: cannot assign in state %s", ErrInvalidState, w.State)
	}

	driver, err := m.drivers.Get(driverID)
	if err != nil {
		return AssignResult{}, err
	}
	if driver.Availability != driverdomain.Available {
		return AssignResult{}, fmt.Errorf("%w: driver %s is %s", ErrDriverUnavailable, driverID, driver.Availability)
	}

	w.State = domain.StateDriverAssigning

	record := domain.AssignmentRecord{
		OrderID:    w.OrderID,
		DriverID:   driverID,
		Route:      string(w.Selected),
		AssignedAt: time.Now(),
	}

	w.OrderPersisted = true
	if w.OrderID != "" {
		if _, err := m.orders.MarkAssigned(ctx, w.OrderID, driverID, record.Route); err != nil {
			w.OrderPersisted = false
			logger.Named("assignment").Warn("Order update failed during assignment",
				zap.String("order_id", w.OrderID),
				zap.String("driver_id", driverID),
				zap.Error(err),
			)
		}
	}

	w.LogPersisted = true
	if err := m.log.Append(ctx, record); err != nil {
		w.LogPersisted = false
		logger.Named("assignment").Warn("Assignment log write failed",
			zap.String("driver_id", driverID),
			zap.Error(err),
		)
	}

	w.State = domain.StateAssigned
	w.Record = &record

	if variant, ok := w.SelectedVariant(); ok {
		go m.refreshRiskZones(variant.Path)
	}

	return AssignResult{Record: record, Durable: w.OrderPersisted && w.LogPersisted}, nil
}

// replayWrites retries the durable writes a completed assignment is still
// missing, so an idempotent repeat never reports durability it does not
// have. Caller must hold mu.
func (m *WorkflowManager) replayWrites(ctx context.Context, w *domain.Workflow) bool {
	if !w.OrderPersisted && w.OrderID != "" {
		if _, err := m.orders.MarkAssigned(ctx, w.OrderID, w.Record.DriverID, w.Record.Route); err != nil {
			logger.Named("assignment").Warn("Order update replay failed",
				zap.String("order_id", w.OrderID),
				zap.Error(err),
			)
		} else {
			w.OrderPersisted = true
		}
	}

	if !w.LogPersisted {
		if err := m.log.Append(ctx, *w.Record); err != nil {
			logger.Named("assignment").Warn("Assignment log replay failed",
				zap.String("driver_id", w.Record.DriverID),
				zap.Error(err),
			)
		} else {
			w.LogPersisted = true
		}
	}

	return w.OrderPersisted && w.LogPersisted
}

// recordDriver names the driver of the completed assignment, for error text.
func recordDriver(w *domain.Workflow) string {
	if w.Record == nil {
		return "unknown"
	}
	return w.Record.DriverID
}

// refreshRiskZones runs the post-assignment risk update. Failures are logged
// and never affect the completed assignment.
func (m *WorkflowManager) refreshRiskZones(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), zoneUpdateTimeout)
	defer cancel()

	if _, err := m.zones.GenerateForQuery(ctx, path); err != nil {
		logger.Named("assignment").Warn("Post-assignment risk update failed",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}

// History returns the durable assignment log.
func (m *WorkflowManager) History(ctx context.Context) ([]domain.AssignmentRecord, error) {
	records, err := m.log.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list assignment log: %w", err)
	}
	return records, nil
}
