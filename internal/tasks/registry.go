// SPDX-FileCopyrightText: 2026 fixturemocks
// SPDX-License-Identifier: FSL-1.1-MIT

package tasks

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownTask is returned when running a task that is not registered.
var ErrUnknownTask = errors.New("unknown task")

// Registry manages named tasks.
type Registry struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

// NewRegistry creates a new task registry.
func NewRegistry() *Registry {
	return &Registry{
		tasks: make(map[string]Task),
	}
}

// Register adds a task to the registry.
// It returns an error if a task with the same name is already registered.
func (r *Registry) Register(task Task) error {
	if task == nil {
		return fmt.Errorf("cannot register nil task")
	}

	name := task.Name()
	if name == "" {
		return fmt.Errorf("task name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[name]; exists {
		return fmt.Errorf("task %q is already registered", name)
	}

	r.tasks[name] = task
	return nil
}

// MustRegister adds a task to the registry, panicking on error.
func (r *Registry) MustRegister(task Task) {
	if err := r.Register(task); err != nil {
		panic(fmt.Sprintf("failed to register task: %v", err))
	}
}

// Get returns a task by name, or nil if not found.
func (r *Registry) Get(name string) Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.tasks[name]
}

// Has checks if a task is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.tasks[name]
	return exists
}

// List returns a sorted list of registered task names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes the named task.
func (r *Registry) Run(ctx context.Context, name string, args map[string]any) (any, error) {
	task := r.Get(name)
	if task == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTask, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return task.Run(ctx, args)
}
