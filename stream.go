package fsesl

import (
	"context"
	"sync"
	"sync/atomic"
)

// OverflowPolicy controls what the reader does when the event queue is
// full and another event arrives (spec §5, §9 Open Question).
type OverflowPolicy int

const (
	// OverflowDropOldest discards the oldest queued event to make room
	// for the new one, incrementing a drop counter. Default: never
	// stalls the reader, at the cost of losing telemetry under load.
	OverflowDropOldest OverflowPolicy = iota
	// OverflowBlock backpressures the reader until the consumer makes
	// room. Preserves every event but stalls reply delivery too, since
	// the same reader goroutine drives both streams.
	OverflowBlock
	// OverflowDisconnect terminates the connection with a QueueFull
	// error the instant the queue is full. For deployments where a
	// dropped or delayed event is worse than a dropped connection.
	OverflowDisconnect
)

// EventStream is the single-consumer side of the event queue. It is
// produced by Connect/AcceptOutbound alongside the Client handle.
type EventStream struct {
	ch      chan *Event
	dropped atomic.Uint64
	policy  OverflowPolicy
	mu      sync.Mutex
	closed  bool
}

func newEventStream(capacity int, policy OverflowPolicy) *EventStream {
	if capacity <= 0 {
		capacity = 256
	}
	return &EventStream{ch: make(chan *Event, capacity), policy: policy}
}

// Recv blocks until an event is available, the stream is closed (the
// reader task exited; it returns false), or ctx is cancelled.
func (s *EventStream) Recv(ctx context.Context) (*Event, bool, error) {
	select {
	case e, ok := <-s.ch:
		if !ok {
			return nil, false, nil
		}
		return e, true, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

// TryRecv returns immediately: an event if one was queued, or (nil,
// false) if the queue is currently empty. It never reports closure —
// use Recv or Dropped/err from the status watcher to detect that.
func (s *EventStream) TryRecv() (*Event, bool) {
	select {
	case e, ok := <-s.ch:
		if !ok {
			return nil, false
		}
		return e, true
	default:
		return nil, false
	}
}

// Dropped returns the number of events discarded so far under
// OverflowDropOldest.
func (s *EventStream) Dropped() uint64 {
	return s.dropped.Load()
}

// push delivers e according to the configured overflow policy. Called
// only by the reader task. Returns an error only under
// OverflowDisconnect when the queue was full; the reader treats that as
// connection-terminating.
func (s *EventStream) push(e *Event) error {
	select {
	case s.ch <- e:
		return nil
	default:
	}

	switch s.policy {
	case OverflowBlock:
		s.ch <- e
		return nil
	case OverflowDisconnect:
		return errQueueFull()
	default: // OverflowDropOldest
		select {
		case <-s.ch:
			s.dropped.Add(1)
		default:
		}
		select {
		case s.ch <- e:
		default:
			// Another producer raced us and refilled the slot; drop
			// this event too rather than blocking.
			s.dropped.Add(1)
		}
		return nil
	}
}

// close shuts the stream down; Recv callers waiting on it observe a
// closed channel. Called once, by the reader, on exit.
func (s *EventStream) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}
