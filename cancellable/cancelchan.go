package cancellable

import (
	"context"
	"sync"
)

var _ Cancellable = (*cancellableChan[uint])(nil)
var _ Chan[uint] = (*cancellableChan[uint])(nil)

var CHANBUFSIZE = 1000 // default buffer size for NewChan

// Chan holds a context, a channel and a cancelfunc.
type Chan[T any] interface {
	Cancellable
	UpdatesChan() <-chan T // receiver side
	Send(v T) bool         // false once the context is done
	CloseChan()            // only when no more sending to chan. safe to call twice.
	Ch() chan<- T          // sender only, for signal.Notify and friends
}

// NewChanFrom for type T (must Cancel, optionally CloseChan)
func NewChanFrom[T any](parent context.Context, cancelfunc context.CancelCauseFunc) Chan[T] {
	return WrapChan[T](parent, cancelfunc, nil)
}

// WrapChan for pre-existing channel. All fields may be nil for behavior like NewChanFrom
func WrapChan[T any](parent context.Context, cancelfunc context.CancelCauseFunc, ch chan T) Chan[T] {
	if parent == nil && cancelfunc == nil {
		parent, cancelfunc = context.WithCancelCause(context.Background())
	}
	if parent == nil || cancelfunc == nil {
		panic("WrapChan: parent and cancelfunc must be both nil or both non-nil")
	}
	if ch == nil {
		ch = make(chan T, CHANBUFSIZE)
	}
	return &cancellableChan[T]{
		cancellable: newFrom(parent, cancelfunc),
		ch:          ch,
	}
}

// NewChan for type T (must Cancel, optionally CloseChan)
func NewChan[T any](parent context.Context) Chan[T] {
	return NewChanSize[T](parent, CHANBUFSIZE)
}

// NewChanSize is NewChan with a buffer of size. Zero makes every Send wait
// for a receiver.
func NewChanSize[T any](parent context.Context, size int) Chan[T] {
	ctx, cancel := context.WithCancelCause(parent)
	return WrapChan(ctx, cancel, make(chan T, size))
}

type cancellableChan[T any] struct {
	*cancellable
	ch     chan T
	closed sync.Once
}

func (c *cancellableChan[T]) UpdatesChan() <-chan T {
	return c.ch
}

func (c *cancellableChan[T]) CloseChan() {
	c.closed.Do(func() { close(c.ch) })
}

func (c *cancellableChan[T]) Send(v T) bool {
	if c.Err() != nil {
		return false
	}
	select {
	case c.ch <- v:
		return true
	case <-c.Done():
		return false
	}
}

func (c *cancellableChan[T]) Ch() chan<- T {
	return c.ch
}
