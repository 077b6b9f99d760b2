// Package detail holds the pieces shared by the customer and merchant detail
// views: the fetch state machine, the tab set and the status panels.
package detail

import (
	"context"
	"sync"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Loader runs one fetch through idle -> loading -> success | error. A
// successful result is kept until Retry replaces it.
type Loader[T any] struct {
	load func(context.Context) (T, error)

	mu    sync.Mutex
	state State
	data  T
	err   error
}

func NewLoader[T any](load func(context.Context) (T, error)) *Loader[T] {
	return &Loader[T]{load: load, state: StateIdle}
}

// Load fetches unless a result is already held or a fetch is running.
func (l *Loader[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	switch l.state {
	case StateSuccess, StateLoading:
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()
	return l.run(ctx)
}

// Retry fetches again after an error or to refresh a success.
func (l *Loader[T]) Retry(ctx context.Context) error {
	l.mu.Lock()
	if l.state == StateLoading {
		l.mu.Unlock()
		return nil
	}
	l.mu.Unlock()
	return l.run(ctx)
}

func (l *Loader[T]) run(ctx context.Context) error {
	l.mu.Lock()
	l.state = StateLoading
	l.err = nil
	l.mu.Unlock()

	data, err := l.load(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.state = StateError
		l.err = err
		return err
	}
	l.state = StateSuccess
	l.data = data
	return nil
}

// Snapshot returns the state, the last good data and the last error.
func (l *Loader[T]) Snapshot() (State, T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state, l.data, l.err
}
