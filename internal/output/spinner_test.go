package output

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests run without a TTY, so the action executes directly.

func TestRunWithSpinner_ReturnsActionError(t *testing.T) {
	want := errors.New("clone failed")
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		return want
	}, WithTitle("Fetching templates"))
	assert.ErrorIs(t, err, want)
}

func TestRunWithSpinner_Success(t *testing.T) {
	called := false
	err := RunWithSpinner(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_TimeoutPropagatesToAction(t *testing.T) {
	err := RunWithSpinner(context.Background(), func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		<-ctx.Done()
		return ctx.Err()
	}, WithTimeout(10*time.Millisecond))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
