// Package notification queues the short-lived notices (toasts) a view shows
// the operator on its next render.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Level string

const (
	LevelError   Level = "error"
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
)

type Notice struct {
	ID        string    `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Queue holds a view's undelivered notices.
type Queue struct {
	mu      sync.Mutex
	notices []Notice
	logger  *zap.Logger
}

func NewQueue(logger *zap.Logger) *Queue {
	return &Queue{logger: logger}
}

func (q *Queue) Error(message string) Notice {
	return q.push(LevelError, message)
}

func (q *Queue) Success(message string) Notice {
	return q.push(LevelSuccess, message)
}

func (q *Queue) Info(message string) Notice {
	return q.push(LevelInfo, message)
}

func (q *Queue) push(level Level, message string) Notice {
	n := Notice{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	q.mu.Lock()
	q.notices = append(q.notices, n)
	q.mu.Unlock()

	q.logger.Info("notice queued",
		zap.String("notice_id", n.ID),
		zap.String("level", string(level)),
		zap.String("message", message))
	return n
}

// Drain returns the pending notices, oldest first, and empties the queue.
func (q *Queue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.notices
	q.notices = nil
	if out == nil {
		return []Notice{}
	}
	return out
}

func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.notices)
}
