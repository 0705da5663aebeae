package testutil

import (
	"context"
	"sync"

	"github.com/IhorStoiko/Projekt/internal/operations"
)

// CreateSuccessfulStep creates a step that always succeeds
func CreateSuccessfulStep(id, name string) *MockStep {
	return &MockStep{IDValue: id, NameValue: name}
}

// CreateFailingStep creates a step whose Execute returns err
func CreateFailingStep(id, name string, err error) *MockStep {
	return &MockStep{
		IDValue:   id,
		NameValue: name,
		ExecuteFunc: func(ctx context.Context, state *operations.OperationState) error {
			return err
		},
	}
}

// CreateValidationFailingStep creates a step whose Validate returns err
func CreateValidationFailingStep(id, name string, err error) *MockStep {
	return &MockStep{
		IDValue:   id,
		NameValue: name,
		ValidateFunc: func(state *operations.OperationState) error {
			return err
		},
	}
}

// CreateContextStep creates a step that stores value under key
func CreateContextStep(id, name, key string, value interface{}) *MockStep {
	return &MockStep{
		IDValue:   id,
		NameValue: name,
		ExecuteFunc: func(ctx context.Context, state *operations.OperationState) error {
			state.SetContext(key, value)
			return nil
		},
	}
}

// ExecutionLog records the order in which steps ran
type ExecutionLog struct {
	mu  sync.Mutex
	ids []string
}

// Step creates a step that appends its id to the log
func (l *ExecutionLog) Step(id string) *MockStep {
	return &MockStep{
		IDValue:   id,
		NameValue: id,
		ExecuteFunc: func(ctx context.Context, state *operations.OperationState) error {
			l.mu.Lock()
			defer l.mu.Unlock()
			l.ids = append(l.ids, id)
			return nil
		},
	}
}

// IDs returns the executed ids in order
func (l *ExecutionLog) IDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.ids))
	copy(out, l.ids)
	return out
}
