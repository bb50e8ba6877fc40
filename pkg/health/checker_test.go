package health

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRecordsResult(t *testing.T) {
	var fail atomic.Bool
	c := NewChecker("database", func(ctx context.Context) error {
		if fail.Load() {
			return errors.New("connection refused")
		}
		return nil
	})

	assert.False(t, c.Status().Checked)

	s := c.Check(context.Background())
	assert.True(t, s.Up)
	assert.True(t, s.Checked)
	assert.Empty(t, s.Err)

	fail.Store(true)
	s = c.Check(context.Background())
	assert.False(t, s.Up)
	assert.Equal(t, "connection refused", s.Err)
	assert.Equal(t, s, c.Status())
}

func TestStartRunsPeriodically(t *testing.T) {
	var calls atomic.Int32
	c := NewChecker("database", func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, c.Start("@every 1s"))
	defer c.Stop()

	assert.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
	assert.True(t, c.Status().Up)
}

func TestStartInvalidSpec(t *testing.T) {
	c := NewChecker("database", func(ctx context.Context) error { return nil })
	assert.Error(t, c.Start("not a spec"))
	c.Stop()
}
