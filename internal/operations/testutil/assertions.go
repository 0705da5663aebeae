package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IhorStoiko/Projekt/internal/operations"
)

// AssertStepStatus checks the status of one step in a finished run
func AssertStepStatus(t *testing.T, state *operations.OperationState, stepID string, expected operations.StepStatus) {
	t.Helper()
	step := state.GetStep(stepID)
	require.NotNil(t, step, "step %s not found", stepID)
	assert.Equal(t, expected, step.GetStatus(), "step %s", stepID)
}

// AssertStepStatuses checks every step of a run in execution order
func AssertStepStatuses(t *testing.T, resp *operations.OperationResponse, expected map[string]operations.StepStatus) {
	t.Helper()
	require.Len(t, resp.Steps, len(expected))
	for _, step := range resp.Steps {
		want, ok := expected[step.ID]
		require.True(t, ok, "unexpected step %s", step.ID)
		assert.Equal(t, want, step.GetStatus(), "step %s", step.ID)
	}
}

// AssertErrorType checks the operation error type of err
func AssertErrorType(t *testing.T, err error, expected operations.ErrorType) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, expected, operations.GetErrorType(err))
}
