package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_FiresAfterDelay(t *testing.T) {
	s := New()

	done := make(chan struct{})
	s.Schedule(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled task did not fire")
	}
}

func TestTask_Cancel(t *testing.T) {
	s := New()

	fired := make(chan struct{})
	task := s.Schedule(100*time.Millisecond, func() { close(fired) })

	require.True(t, task.Cancel())

	select {
	case <-fired:
		t.Fatal("canceled task fired anyway")
	case <-time.After(200 * time.Millisecond):
	}

	// Повторная отмена сообщает, что отменять уже нечего
	assert.False(t, task.Cancel())
}

func TestTask_CancelNil(t *testing.T) {
	var task *Task
	assert.False(t, task.Cancel())
}
