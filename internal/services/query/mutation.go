package query

import (
	"context"
	"sync"
)

// Status is the lifecycle of a mutation.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Mutation tracks the latest run of one kind of write. The zero value is
// idle and ready to use.
type Mutation struct {
	mu     sync.Mutex
	status Status
	err    error
	runs   uint64
}

// Run executes fn and records its outcome. Only the most recent run may
// set the final status.
func (m *Mutation) Run(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	m.runs++
	run := m.runs
	m.status = StatusPending
	m.err = nil
	m.mu.Unlock()

	err := fn(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if run == m.runs {
		if err != nil {
			m.status = StatusError
			m.err = err
		} else {
			m.status = StatusSuccess
		}
	}
	return err
}

// State returns the current status and the last error, if any.
func (m *Mutation) State() (Status, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.status == "" {
		return StatusIdle, nil
	}
	return m.status, m.err
}

func (m *Mutation) IsSuccess() bool {
	status, _ := m.State()
	return status == StatusSuccess
}

// Reset returns the mutation to idle.
func (m *Mutation) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = StatusIdle
	m.err = nil
}
