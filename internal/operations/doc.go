// Package operations runs the sales pipeline as an ordered list of steps.
//
// Core Components:
//
// Manager: Executes the registered steps strictly in registration order on
// the calling goroutine. The first failing step stops the run, every later
// step is marked skipped and the failure is returned as an *OperationError.
//
// Step: A single unit of work. Steps exchange results through the run's
// OperationState context and can be disabled, in which case they are skipped.
//
// Registry: Holds the steps in registration order and selects subsets.
//
// OperationTracer: Wraps the run and each step in a span and records the
// pipeline metrics.
//
// Example usage:
//
//	manager, err := operations.NewSalesManager(cfg, paths, logger, providers)
//	if err != nil {
//		return err
//	}
//	resp, err := manager.Execute(ctx, operations.OperationRequest{})
package operations
