// Package superchan ties a cancellable context to process signals and runs
// deferred funcs once, when the context is done.
package superchan

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/aerth/str2num/cancellable"
)

var Log = log.Default()

var MakeSignalError = func(sig os.Signal) error {
	return fmt.Errorf("caught sig: %v", sig)
}

// CancelBeforeDefer determines if the context is cancelled before running deferred funcs.
//
// Default is true so incoming signals will act the same as Cancel(err).
var CancelBeforeDefer = true

// UseGoroutineDefer runs the funcs of each stage (first, Defer, last) in
// their own goroutines. Stages still run in order.
var UseGoroutineDefer = true

// MaxWaitDuration bounds how long Wait waits for deferred funcs after the
// context is done.
var MaxWaitDuration = time.Second * 5

// Superchan handles signals, is a cancellable.Chan[T] with defer funcs
//
// Use as main context, for example:
//
//	mainctx := superchan.NewMain(context.Background(), os.Interrupt, syscall.SIGTERM)
//	mainctx.DeferLast(flush)
//	...
//	mainctx.Cancel(nil)
//	err := mainctx.Wait()
type Superchan[T any] struct {
	cancellable.Chan[T]
	mu                    sync.Mutex
	deferfuncs            []func()
	deferlast, deferfirst func()
	once                  sync.Once
	dead                  chan struct{}
}

type Main = Superchan[os.Signal]

// IsDead reports whether the deferred funcs have all returned.
func (s *Superchan[T]) IsDead() bool {
	select {
	case <-s.dead:
		return true
	default:
		return false
	}
}

// Wait (blocks) for the context to be done and the deferred funcs to
// return, then gives the cancel cause.
func (s *Superchan[T]) Wait() error {
	<-s.Done()
	err := context.Cause(s)
	t := time.NewTimer(MaxWaitDuration)
	defer t.Stop()
	select {
	case <-s.dead:
	case <-t.C:
		Log.Printf("warn: shutdown timed out after %s", MaxWaitDuration)
	}
	return err
}

// Defer a function to run when the context is cancelled. See CancelBeforeDefer.
//
// Ordering: funcs added later are run first (see DeferLast for a single lastfunc)
func (s *Superchan[T]) Defer(f ...func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLive()
	for _, ff := range f {
		s.deferfuncs = append([]func(){ff}, s.deferfuncs...)
	}
}

// DeferFirst is called first after context is finished.
func (s *Superchan[T]) DeferFirst(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLive()
	if s.deferfirst != nil {
		panic("deferfirst already set")
	}
	s.deferfirst = f
}

// DeferLast is called last after context is finished.
//
// Could be a call to flush buffered output, for example
func (s *Superchan[T]) DeferLast(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mustLive()
	if s.deferlast != nil {
		panic("deferlast already set")
	}
	s.deferlast = f
}

func (s *Superchan[T]) mustLive() {
	if s.Err() != nil {
		panic("cannot defer after cancel")
	}
}

// rundeferred runs deferfirst, the Defer funcs, then deferlast. A panic in
// one of them is logged and does not stop the others.
func (s *Superchan[T]) rundeferred() {
	s.once.Do(func() {
		defer close(s.dead)
		s.mu.Lock()
		first, funcs, last := s.deferfirst, s.deferfuncs, s.deferlast
		s.deferfirst, s.deferfuncs, s.deferlast = nil, nil, nil
		s.mu.Unlock()

		var wg sync.WaitGroup
		call := func(fn func()) {
			defer func() {
				if r := recover(); r != nil {
					Log.Printf("error in deferred func (panic): %v", r)
				}
			}()
			fn()
		}
		caller := call
		if UseGoroutineDefer {
			caller = func(fn func()) {
				wg.Add(1)
				go func() {
					defer wg.Done()
					call(fn)
				}()
			}
		}
		if first != nil {
			caller(first)
		}
		wg.Wait()
		for _, f := range funcs {
			caller(f)
		}
		wg.Wait()
		if last != nil {
			caller(last)
		}
		wg.Wait()
	})
}

// NewMain Superchan for signal handling with defer funcs and context cancellation.
// One goroutine waits for a signal or a Cancel, then runs the defer funcs,
// see CancelBeforeDefer. The signal's error is the cancel cause.
func NewMain(parent context.Context, signals ...os.Signal) *Main {
	if len(signals) == 0 {
		panic("superchan: no signals provided")
	}
	chctx := newRaw[os.Signal](parent)
	signal.Notify(chctx.Ch(), signals...)
	go func() {
		defer signal.Stop(chctx.Ch())
		select {
		case <-chctx.Done(): // someone else cancelled the ctx
			chctx.rundeferred()
		case in := <-chctx.UpdatesChan(): // signal caught, lets cancel the context
			if CancelBeforeDefer {
				chctx.Cancel(MakeSignalError(in))
				chctx.rundeferred()
			} else {
				chctx.rundeferred()
				chctx.Cancel(MakeSignalError(in))
			}
		}
	}()
	return chctx
}

func newRaw[T any](parent context.Context) *Superchan[T] {
	return &Superchan[T]{
		Chan: cancellable.NewChan[T](parent),
		dead: make(chan struct{}),
	}
}
