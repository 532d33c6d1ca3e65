//go:build unit

package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"campsite-booking/internal/infra/outbox"
	"campsite-booking/internal/infra/scheduler"
	"campsite-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	calls atomic.Int32
}

func (r *countingRunner) RunOnce(_ context.Context) (outbox.Result, error) {
	r.calls.Add(1)
	return outbox.Result{}, nil
}

func TestScheduler(t *testing.T) {
	runner := &countingRunner{}
	s, err := scheduler.New(config.SchedulerConfig{OutboxInterval: 50 * time.Millisecond}, runner, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{scheduler.OutboxJobName}, s.Jobs())

	s.Start()
	assert.Eventually(t, func() bool { return runner.calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, s.Shutdown())
}
