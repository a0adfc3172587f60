// Package pipeline provides an unbounded, ordered channel with any number of
// senders and a single receiver.
//
// Send never blocks. The receiving side observes the end of the stream once
// every Sender has been closed and the queue is drained.
package pipeline

import (
	"errors"
	"iter"
	"sync"
)

var (
	// ErrSenderClosed is returned by Send on a Sender that was already closed.
	ErrSenderClosed = errors.New("send on closed sender")
	// ErrReceiverClosed is returned by Send once the receiver has gone away.
	ErrReceiverClosed = errors.New("receiver closed")
)

type channel[T any] struct {
	mu         sync.Mutex
	ready      *sync.Cond
	queue      []T
	senders    int
	recvClosed bool
}

// Sender is one producer handle. Each handle must be closed exactly once;
// Clone hands out further handles for other goroutines.
type Sender[T any] struct {
	ch     *channel[T]
	mu     sync.Mutex
	closed bool
}

// Receiver is the single consumer handle.
type Receiver[T any] struct {
	ch *channel[T]
}

// New creates a channel and returns its first Sender and its Receiver.
func New[T any]() (*Sender[T], *Receiver[T]) {
	ch := &channel[T]{senders: 1}
	ch.ready = sync.NewCond(&ch.mu)
	return &Sender[T]{ch: ch}, &Receiver[T]{ch: ch}
}

// Clone returns a new Sender on the same channel.
// Cloning a closed Sender returns a Sender that is already closed.
func (s *Sender[T]) Clone() *Sender[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return &Sender[T]{ch: s.ch, closed: true}
	}

	s.ch.mu.Lock()
	s.ch.senders++
	s.ch.mu.Unlock()
	return &Sender[T]{ch: s.ch}
}

// Send enqueues v without blocking.
func (s *Sender[T]) Send(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSenderClosed
	}

	ch := s.ch
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.recvClosed {
		return ErrReceiverClosed
	}
	ch.queue = append(ch.queue, v)
	ch.ready.Signal()
	return nil
}

// Close drops this Sender. Closing twice is a no-op.
func (s *Sender[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true

	ch := s.ch
	ch.mu.Lock()
	ch.senders--
	if ch.senders == 0 {
		ch.ready.Broadcast()
	}
	ch.mu.Unlock()
}

// Recv blocks until a value is available or every Sender is closed.
// ok is false only when the channel is closed and drained.
func (r *Receiver[T]) Recv() (v T, ok bool) {
	ch := r.ch
	ch.mu.Lock()
	defer ch.mu.Unlock()
	for len(ch.queue) == 0 && ch.senders > 0 && !ch.recvClosed {
		ch.ready.Wait()
	}
	if len(ch.queue) == 0 {
		return v, false
	}

	v = ch.queue[0]
	var zero T
	ch.queue[0] = zero
	ch.queue = ch.queue[1:]
	return v, true
}

// All returns the remaining values in arrival order. Iteration blocks like
// Recv and ends when the channel is closed and drained.
func (r *Receiver[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := r.Recv()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Len reports the number of queued values.
func (r *Receiver[T]) Len() int {
	r.ch.mu.Lock()
	defer r.ch.mu.Unlock()
	return len(r.ch.queue)
}

// Close drops the receiver and discards queued values; later sends fail with
// ErrReceiverClosed and a blocked Recv returns.
func (r *Receiver[T]) Close() {
	ch := r.ch
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.recvClosed = true
	ch.queue = nil
	ch.ready.Broadcast()
}
