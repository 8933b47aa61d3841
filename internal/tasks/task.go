// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

// Package tasks provides a registry of named host tasks and the getMocks
// task handler.
package tasks

import "context"

// Task is a named operation the host test runner can invoke.
type Task interface {
	// Name returns the task identifier (e.g., "getMocks").
	Name() string

	// Run executes the task with the caller's options bag.
	Run(ctx context.Context, args map[string]any) (any, error)
}

// Func adapts a function to the Task interface.
type Func struct {
	// TaskName is the task identifier
	TaskName string

	// Fn is called by Run
	Fn func(ctx context.Context, args map[string]any) (any, error)
}

// Name returns the task identifier.
func (f Func) Name() string {
	return f.TaskName
}

// Run calls Fn.
func (f Func) Run(ctx context.Context, args map[string]any) (any, error) {
	return f.Fn(ctx, args)
}
