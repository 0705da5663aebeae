package operations_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhorStoiko/Projekt/internal/operations"
)

func TestStepStateTransitions(t *testing.T) {
	s := operations.NewStepState("load", "Load")
	assert.Equal(t, operations.StepStatusPending, s.GetStatus())
	assert.Zero(t, s.Duration())

	s.Start()
	assert.Equal(t, operations.StepStatusActive, s.GetStatus())
	require.NotNil(t, s.StartTime)

	time.Sleep(time.Millisecond)
	s.Complete()
	assert.Equal(t, operations.StepStatusCompleted, s.GetStatus())
	require.NotNil(t, s.EndTime)
	assert.Greater(t, s.Duration(), time.Duration(0))

	failed := operations.NewStepState("clean", "Clean")
	failed.Start()
	cause := errors.New("boom")
	failed.Fail(cause)
	assert.Equal(t, operations.StepStatusFailed, failed.GetStatus())
	assert.Equal(t, cause, failed.Error)

	skipped := operations.NewStepState("report", "Report")
	skipped.Skip("disabled")
	assert.Equal(t, operations.StepStatusSkipped, skipped.GetStatus())
	assert.Equal(t, "disabled", skipped.Message)

	skipped.SetMetadata("rows", 3)
	assert.Equal(t, 3, skipped.Metadata["rows"])
}

func TestOperationStateLifecycle(t *testing.T) {
	state := operations.NewOperationState("run-1")
	assert.Equal(t, operations.OperationStatusPending, state.Status)

	state.Start()
	assert.Equal(t, operations.OperationStatusRunning, state.Status)

	state.Complete()
	assert.Equal(t, operations.OperationStatusCompleted, state.Status)
	require.NotNil(t, state.EndTime)

	failed := operations.NewOperationState("run-2")
	err := errors.New("failed")
	failed.Fail(err)
	assert.Equal(t, operations.OperationStatusFailed, failed.Status)
	assert.Equal(t, err, failed.Error)

	cancelled := operations.NewOperationState("run-3")
	cancelled.Cancel(err)
	assert.Equal(t, operations.OperationStatusCancelled, cancelled.Status)
}

func TestOperationStateSteps(t *testing.T) {
	state := operations.NewOperationState("run")
	for _, id := range []string{"c", "a", "b"} {
		state.SetStep(id, operations.NewStepState(id, id))
	}
	state.SetStep("a", operations.NewStepState("a", "replaced"))

	ids := []string{}
	for _, s := range state.StepStates() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Equal(t, "replaced", state.GetStep("a").Name)
	assert.False(t, state.IsComplete())

	state.GetStep("c").Complete()
	state.GetStep("a").Fail(errors.New("x"))
	state.GetStep("b").Skip("after failure")

	assert.True(t, state.IsComplete())
	assert.True(t, state.HasFailures())
	assert.Len(t, state.StepsWithStatus(operations.StepStatusCompleted), 1)
}

func TestContextValue(t *testing.T) {
	state := operations.NewOperationState("run")
	state.SetContext("orders", []int{1, 2})

	got, err := operations.ContextValue[[]int](state, "orders")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	_, err = operations.ContextValue[string](state, "orders")
	assert.ErrorContains(t, err, "unexpected type")

	_, err = operations.ContextValue[string](state, "missing")
	assert.ErrorContains(t, err, "not available")
}
