package operations_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/IhorStoiko/Projekt/internal/errors"
	"github.com/IhorStoiko/Projekt/internal/infrastructure"
	"github.com/IhorStoiko/Projekt/internal/operations"
	"github.com/IhorStoiko/Projekt/internal/operations/testutil"
)

func newTestManager(t *testing.T, logs *bytes.Buffer, steps ...operations.Step) *operations.Manager {
	t.Helper()
	manager := operations.NewManager(nil, nil, infrastructure.NewLogger(logs, "debug"))
	for _, s := range steps {
		require.NoError(t, manager.RegisterStep(s))
	}
	return manager
}

func TestManager(t *testing.T) {
	manager := operations.NewManager(nil, nil, nil)
	require.NotNil(t, manager)
	assert.NotNil(t, manager.GetRegistry())

	require.NoError(t, manager.RegisterStep(testutil.CreateSuccessfulStep("test", "Test Step")))
	assert.True(t, manager.GetRegistry().Has("test"))
}

func TestManagerExecuteSequential(t *testing.T) {
	var log testutil.ExecutionLog
	manager := newTestManager(t, &bytes.Buffer{}, log.Step("a"), log.Step("b"), log.Step("c"))

	resp, err := manager.Execute(context.Background(), operations.OperationRequest{ID: "run-1"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, log.IDs())
	assert.Equal(t, "run-1", resp.ID)
	assert.Equal(t, operations.OperationStatusCompleted, resp.Status)
	assert.Empty(t, resp.Error)
	testutil.AssertStepStatuses(t, resp, map[string]operations.StepStatus{
		"a": operations.StepStatusCompleted,
		"b": operations.StepStatusCompleted,
		"c": operations.StepStatusCompleted,
	})
}

func TestManagerExecuteGeneratesID(t *testing.T) {
	manager := newTestManager(t, &bytes.Buffer{}, testutil.CreateSuccessfulStep("a", "A"))

	resp, err := manager.Execute(context.Background(), operations.OperationRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)

	ctx := infrastructure.WithTraceID(context.Background(), "trace-42")
	resp, err = manager.Execute(ctx, operations.OperationRequest{})
	require.NoError(t, err)
	assert.Equal(t, "trace-42", resp.ID)
}

func TestManagerStopsAtFirstFailure(t *testing.T) {
	cause := apperrors.NewParsingError("invalid order amount", errors.New("bad"))
	first := testutil.CreateSuccessfulStep("load", "Load")
	failing := testutil.CreateFailingStep("clean", "Clean", cause)
	after1 := testutil.CreateSuccessfulStep("metrics", "Metrics")
	after2 := testutil.CreateSuccessfulStep("report", "Report")

	var logs bytes.Buffer
	manager := newTestManager(t, &logs, first, failing, after1, after2)

	resp, err := manager.Execute(context.Background(), operations.OperationRequest{})
	testutil.AssertErrorType(t, err, operations.ErrorTypeExecution)

	var opErr *operations.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "clean", opErr.Step)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParsing))

	assert.Equal(t, operations.OperationStatusFailed, resp.Status)
	assert.Equal(t, err.Error(), resp.Error)
	assert.Equal(t, 0, after1.GetExecuteCalls())
	assert.Equal(t, 0, after2.GetExecuteCalls())

	testutil.AssertStepStatuses(t, resp, map[string]operations.StepStatus{
		"load":    operations.StepStatusCompleted,
		"clean":   operations.StepStatusFailed,
		"metrics": operations.StepStatusSkipped,
		"report":  operations.StepStatusSkipped,
	})
	assert.Contains(t, logs.String(), "step_error")
}

func TestManagerValidationFailure(t *testing.T) {
	step := testutil.CreateValidationFailingStep("clean", "Clean", errors.New("table not available"))
	after := testutil.CreateSuccessfulStep("report", "Report")
	manager := newTestManager(t, &bytes.Buffer{}, step, after)

	resp, err := manager.Execute(context.Background(), operations.OperationRequest{})
	testutil.AssertErrorType(t, err, operations.ErrorTypeValidation)
	assert.ErrorContains(t, err, "table not available")

	assert.Equal(t, 0, step.GetExecuteCalls())
	testutil.AssertStepStatus(t, resp.State, "clean", operations.StepStatusFailed)
	testutil.AssertStepStatus(t, resp.State, "report", operations.StepStatusSkipped)
}

func TestManagerSkipsDisabledSteps(t *testing.T) {
	var log testutil.ExecutionLog
	disabled := log.Step("charts")
	disabled.Disabled = true

	manager := newTestManager(t, &bytes.Buffer{}, log.Step("metrics"), disabled, log.Step("report"))

	resp, err := manager.Execute(context.Background(), operations.OperationRequest{})
	require.NoError(t, err)

	assert.Equal(t, []string{"metrics", "report"}, log.IDs())
	assert.Equal(t, operations.OperationStatusCompleted, resp.Status)
	testutil.AssertStepStatus(t, resp.State, "charts", operations.StepStatusSkipped)
	assert.Equal(t, "disabled", resp.State.GetStep("charts").Message)
}

func TestManagerSelectedSteps(t *testing.T) {
	var log testutil.ExecutionLog
	manager := newTestManager(t, &bytes.Buffer{}, log.Step("load"), log.Step("clean"), log.Step("report"))

	resp, err := manager.Execute(context.Background(), operations.OperationRequest{Steps: []string{"clean", "load"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"load", "clean"}, log.IDs())
	assert.Len(t, resp.Steps, 2)
}

func TestManagerUnknownStep(t *testing.T) {
	manager := newTestManager(t, &bytes.Buffer{}, testutil.CreateSuccessfulStep("load", "Load"))

	resp, err := manager.Execute(context.Background(), operations.OperationRequest{Steps: []string{"nope"}})
	testutil.AssertErrorType(t, err, operations.ErrorTypeNotFound)
	assert.Equal(t, operations.OperationStatusFailed, resp.Status)
}

func TestManagerCancelledContext(t *testing.T) {
	step := testutil.CreateSuccessfulStep("load", "Load")
	after := testutil.CreateSuccessfulStep("clean", "Clean")
	manager := newTestManager(t, &bytes.Buffer{}, step, after)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := manager.Execute(ctx, operations.OperationRequest{})
	testutil.AssertErrorType(t, err, operations.ErrorTypeCancellation)
	assert.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, operations.OperationStatusCancelled, resp.Status)
	assert.Equal(t, 0, step.GetExecuteCalls())
	testutil.AssertStepStatus(t, resp.State, "load", operations.StepStatusSkipped)
	testutil.AssertStepStatus(t, resp.State, "clean", operations.StepStatusSkipped)
}

func TestManagerPassesContextBetweenSteps(t *testing.T) {
	producer := testutil.CreateContextStep("produce", "Produce", "value", 42)
	var seen int
	consumer := &testutil.MockStep{
		IDValue:   "consume",
		NameValue: "Consume",
		ExecuteFunc: func(ctx context.Context, state *operations.OperationState) error {
			v, err := operations.ContextValue[int](state, "value")
			seen = v
			return err
		},
	}

	manager := newTestManager(t, &bytes.Buffer{}, producer, consumer)
	_, err := manager.Execute(context.Background(), operations.OperationRequest{})
	require.NoError(t, err)
	assert.Equal(t, 42, seen)
}

func TestManagerRecordsMetrics(t *testing.T) {
	providers, err := infrastructure.InitializeOTel(infrastructure.DefaultOTelConfig(), infrastructure.NewLogger(&bytes.Buffer{}, "error"))
	require.NoError(t, err)
	defer providers.Shutdown(context.Background())

	tracer, err := operations.NewOperationTracer(providers)
	require.NoError(t, err)
	require.NotNil(t, tracer.Metrics())

	manager := operations.NewManager(nil, tracer, infrastructure.NewLogger(&bytes.Buffer{}, "error"))
	require.NoError(t, manager.RegisterStep(testutil.CreateSuccessfulStep("load", "Load")))

	_, err = manager.Execute(context.Background(), operations.OperationRequest{})
	require.NoError(t, err)

	families, err := providers.Registry.Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["pipeline_steps_total"], "got %v", names)
	assert.True(t, names["pipeline_runs_total"], "got %v", names)
}
