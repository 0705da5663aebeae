package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IhorStoiko/Projekt/internal/infrastructure"
)

// Manager runs registered steps one after another on the calling goroutine
type Manager struct {
	registry *Registry
	tracer   *OperationTracer
	logger   *slog.Logger
}

// NewManager creates a manager. A nil registry starts empty and a nil tracer
// disables instrumentation.
func NewManager(registry *Registry, tracer *OperationTracer, logger *slog.Logger) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}
	if tracer == nil {
		tracer, _ = NewOperationTracer(nil)
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	return &Manager{
		registry: registry,
		tracer:   tracer,
		logger:   infrastructure.WithComponent(logger, "operations"),
	}
}

// RegisterStep registers a step; steps run in registration order
func (m *Manager) RegisterStep(step Step) error {
	return m.registry.Register(step)
}

// GetRegistry returns the step registry
func (m *Manager) GetRegistry() *Registry {
	return m.registry
}

// Execute runs the requested steps in registration order. The first failing
// step stops the run: it is marked failed, every later step is marked
// skipped and the error is returned as an *OperationError.
func (m *Manager) Execute(ctx context.Context, req OperationRequest) (*OperationResponse, error) {
	if req.ID == "" {
		req.ID = infrastructure.GetTraceID(ctx)
	}
	if req.ID == "" {
		req.ID = infrastructure.GenerateTraceID()
	}
	ctx = infrastructure.WithTraceID(ctx, req.ID)

	state := NewOperationState(req.ID)

	steps, err := m.registry.Select(req.Steps...)
	if err != nil {
		state.Fail(err)
		return m.createResponse(state), err
	}

	for _, step := range steps {
		state.SetStep(step.ID(), NewStepState(step.ID(), step.Name()))
	}

	ctx, span := m.tracer.TraceOperationExecution(ctx, req.ID, len(steps))
	defer span.End()

	m.logOperationStart(ctx, req.ID, steps)
	state.Start()

	err = m.executeSequential(ctx, state, steps)
	switch {
	case err == nil:
		state.Complete()
	case GetErrorType(err) == ErrorTypeCancellation:
		state.Cancel(err)
	default:
		state.Fail(err)
	}

	stats := m.tracer.RecordOperationCompletion(ctx, span, state)
	m.logOperationComplete(ctx, state)
	m.logger.DebugContext(ctx, "runtime snapshot", slog.Any("system", stats))

	return m.createResponse(state), err
}

// executeSequential executes steps one by one
func (m *Manager) executeSequential(ctx context.Context, state *OperationState, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			m.logger.WarnContext(ctx, "operation_cancelled",
				slog.String("operation_id", state.ID),
				slog.String("step", step.ID()))
			m.skipRemaining(ctx, state, steps[i:], "operation cancelled")
			return NewCancellationError(step.ID(), err)
		}

		stepState := state.GetStep(step.ID())

		if !step.Enabled() {
			stepState.Skip("disabled")
			m.logStepSkipped(ctx, state.ID, step.ID(), "disabled")
			continue
		}

		m.logStepStart(ctx, state.ID, step.ID(), i+1, len(steps))
		if err := m.executeStep(ctx, state, step, stepState); err != nil {
			m.logStepError(ctx, state.ID, step.ID(), err)
			m.skipRemaining(ctx, state, steps[i+1:], fmt.Sprintf("step %s failed", step.ID()))
			return err
		}
	}
	return nil
}

// executeStep validates and runs one step inside its own span
func (m *Manager) executeStep(ctx context.Context, state *OperationState, step Step, stepState *StepState) error {
	ctx, span := m.tracer.TraceStepExecution(ctx, state.ID, step.ID())
	defer span.End()

	stepState.Start()
	start := time.Now()

	var err error
	if verr := step.Validate(state); verr != nil {
		err = NewValidationError(step.ID(), verr.Error())
	} else if xerr := step.Execute(ctx, state); xerr != nil {
		err = WrapError(xerr, step.ID())
	}

	duration := time.Since(start)
	m.tracer.RecordStepCompletion(ctx, span, step.ID(), duration, err)

	if err != nil {
		stepState.Fail(err)
		return err
	}

	stepState.Complete()
	m.logStepComplete(ctx, state.ID, step.ID(), duration)
	return nil
}

// skipRemaining marks every still pending step as skipped
func (m *Manager) skipRemaining(ctx context.Context, state *OperationState, steps []Step, reason string) {
	for _, step := range steps {
		stepState := state.GetStep(step.ID())
		if stepState != nil && stepState.GetStatus() == StepStatusPending {
			stepState.Skip(reason)
			m.logStepSkipped(ctx, state.ID, step.ID(), reason)
		}
	}
}

// createResponse creates a response from the run state
func (m *Manager) createResponse(state *OperationState) *OperationResponse {
	resp := &OperationResponse{
		ID:       state.ID,
		Status:   state.Status,
		Duration: state.Duration(),
		Steps:    state.StepStates(),
		State:    state,
	}

	if state.Error != nil {
		resp.Error = state.Error.Error()
	}

	return resp
}
