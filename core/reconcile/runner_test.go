package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_TriggerRemembersLast(t *testing.T) {
	runner := NewRunner(New(testConfig(), standardTree(), newFakeRecords(), &memSnapshots{}, nil), nil)

	last, err := runner.Last()
	assert.Nil(t, last)
	assert.NoError(t, err)

	report, err := runner.Trigger(context.Background(), ApplyOptions{})
	require.NoError(t, err)

	last, err = runner.Last()
	assert.NoError(t, err)
	assert.Same(t, report, last)

	status := runner.Status()
	assert.False(t, status.Running)
	assert.Equal(t, report.RunID, status.Last.RunID)
	assert.Empty(t, status.LastError)
}

func TestRunner_TriggerRemembersFailure(t *testing.T) {
	snaps := &memSnapshots{loadErr: errors.New("bucket unreachable")}
	runner := NewRunner(New(testConfig(), standardTree(), newFakeRecords(), snaps, nil), nil)

	_, err := runner.Trigger(context.Background(), ApplyOptions{})
	require.Error(t, err)

	status := runner.Status()
	assert.Nil(t, status.Last)
	assert.Contains(t, status.LastError, "bucket unreachable")
}

func TestRunner_StatusWhileRunning(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	tree := standardTree()
	tree.onList = func() {
		once.Do(func() { close(started) })
		<-release
	}
	runner := NewRunner(New(testConfig(), tree, newFakeRecords(), &memSnapshots{}, nil), nil)

	done := make(chan error, 1)
	go func() {
		_, err := runner.Trigger(context.Background(), ApplyOptions{})
		done <- err
	}()

	<-started
	assert.True(t, runner.Status().Running)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, runner.Status().Running)
	assert.NotNil(t, runner.Status().Last)
}

func TestRunner_LoopRunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree := standardTree()
	tree.onList = func() {
		if tree.listings >= 3 {
			cancel()
		}
	}
	runner := NewRunner(New(testConfig(), tree, newFakeRecords(), &memSnapshots{}, nil), nil)

	errCh := make(chan error, 1)
	go func() { errCh <- runner.Loop(ctx, 5*time.Millisecond, ApplyOptions{}) }()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, tree.listCount(), 3)
}

func TestRunner_LoopWithoutIntervalRunsOnce(t *testing.T) {
	tree := standardTree()
	runner := NewRunner(New(testConfig(), tree, newFakeRecords(), &memSnapshots{}, nil), nil)

	require.NoError(t, runner.Loop(context.Background(), 0, ApplyOptions{}))
	assert.Equal(t, 1, tree.listCount())

	failing := NewRunner(New(testConfig(), tree, newFakeRecords(), &memSnapshots{saveErr: errors.New("read-only")}, nil), nil)
	assert.Error(t, failing.Loop(context.Background(), 0, ApplyOptions{}))
}
