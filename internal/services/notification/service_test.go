package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestQueue_DrainEmptiesInOrder(t *testing.T) {
	q := NewQueue(zap.NewNop())
	assert.Empty(t, q.Drain())

	first := q.Error("Admin user not found")
	q.Success("Points adjusted")
	assert.Equal(t, 2, q.Pending())
	assert.NotEmpty(t, first.ID)

	notices := q.Drain()
	require.Len(t, notices, 2)
	assert.Equal(t, LevelError, notices[0].Level)
	assert.Equal(t, "Admin user not found", notices[0].Message)
	assert.Equal(t, LevelSuccess, notices[1].Level)

	assert.Equal(t, 0, q.Pending())
	assert.Empty(t, q.Drain())
}
