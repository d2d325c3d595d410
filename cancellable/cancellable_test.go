package cancellable

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCancelCause(t *testing.T) {
	errStop := errors.New("stop")
	c := New(context.Background())
	require.NoError(t, c.Err())
	go c.Cancel(errStop)
	assert.ErrorIs(t, c.Wait(), errStop)
	assert.ErrorIs(t, c.Err(), context.Canceled)
	assert.ErrorIs(t, context.Cause(c.GetContext()), errStop)

	c = New(context.Background())
	c.Cancel(nil)
	assert.ErrorIs(t, c.Wait(), context.Canceled)
}

func TestParentCancel(t *testing.T) {
	parent, cancel := context.WithCancelCause(context.Background())
	c := New(parent)
	defer c.Cancel(nil)
	cancel(context.DeadlineExceeded)
	assert.ErrorIs(t, c.Wait(), context.DeadlineExceeded)
}

func TestNewFromPanics(t *testing.T) {
	c := NewFrom(context.Background(), nil)
	assert.Panics(t, func() { c.Cancel(nil) })
	assert.Panics(t, func() { WrapChan[int](context.Background(), nil, nil) })
}

func TestChanSend(t *testing.T) {
	ch := NewChanSize[string](context.Background(), 0)
	defer ch.Cancel(nil)

	go func() {
		defer ch.CloseChan()
		for _, s := range []string{"1", "2", "3"} {
			if !ch.Send(s) {
				return
			}
		}
	}()
	var got []string
	for s := range ch.UpdatesChan() {
		got = append(got, s)
	}
	assert.Equal(t, []string{"1", "2", "3"}, got)
	ch.CloseChan()
}

func TestChanSendCancelled(t *testing.T) {
	ch := NewChanSize[int](context.Background(), 0)
	done := make(chan bool)
	go func() { done <- ch.Send(1) }()
	time.Sleep(10 * time.Millisecond)
	ch.Cancel(nil)
	assert.False(t, <-done)
	assert.False(t, ch.Send(2))

	buffered := NewChan[int](context.Background())
	require.True(t, buffered.Send(7))
	buffered.Cancel(nil)
	assert.False(t, buffered.Send(8), "done chan wins over free buffer")
	assert.Equal(t, 7, <-buffered.UpdatesChan())
}

func TestWrapChan(t *testing.T) {
	raw := make(chan int, 1)
	ch := WrapChan(nil, nil, raw)
	defer ch.Cancel(nil)
	ch.Ch() <- 5
	assert.Equal(t, 5, <-raw)
}
