package fsesl

import "sync"

// pendingSlot is a one-shot delivery point for a single reply. It is
// buffered with capacity 1 so the reader never blocks delivering into a
// slot whose caller has already given up waiting (cancellation simply
// leaves the value unread).
type pendingSlot struct {
	ch chan pendingResult
}

// pendingResult is what the reader delivers into a pendingSlot: either
// the classified value the slot was waiting for, or an error (most
// commonly NotConnected on drain).
type pendingResult struct {
	reply *CommandReply
	api   *ApiResponse
	err   error
}

func newPendingSlot() *pendingSlot {
	return &pendingSlot{ch: make(chan pendingResult, 1)}
}

func (s *pendingSlot) deliver(r pendingResult) {
	select {
	case s.ch <- r:
	default:
		// Already delivered or the buffer is full; should not happen
		// since each slot is used exactly once, but never block the
		// reader over a programming error elsewhere.
	}
}

// pendingTables holds the three reply FIFOs and the Job-UUID keyed
// background-job correlation map described in spec §3/§4.4. A single
// mutex guards all four structures. Senders call push while holding the
// client's writer mutex, in the same critical section that flushes the
// command bytes that will eventually produce the reply occupying the
// slot, so wire order and FIFO order always agree.
type pendingTables struct {
	mu sync.Mutex

	commandReply []*pendingSlot
	api          []*pendingSlot
	bgapi        []*pendingSlot

	jobs map[string]chan *Event // Job-UUID -> BACKGROUND_JOB delivery
}

func newPendingTables() *pendingTables {
	return &pendingTables{jobs: make(map[string]chan *Event)}
}

// class identifies which FIFO a pending slot belongs to.
type class int

const (
	classCommandReply class = iota
	classAPI
	classBgapi
)

// push appends a fresh slot to the named FIFO under the writer mutex.
// Callers must hold (or be about to release) the same send-ordering
// discipline the writer uses: push happens before the corresponding
// command bytes are flushed, and in the same critical section.
func (t *pendingTables) push(c class) *pendingSlot {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := newPendingSlot()
	switch c {
	case classCommandReply:
		t.commandReply = append(t.commandReply, s)
	case classAPI:
		t.api = append(t.api, s)
	case classBgapi:
		t.bgapi = append(t.bgapi, s)
	}
	return s
}

// popFront removes and returns the oldest slot in the named FIFO, or
// nil if it is empty (an unmatched reply, which the reader logs at
// debug level and discards).
func (t *pendingTables) popFront(c class) *pendingSlot {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch c {
	case classCommandReply:
		if len(t.commandReply) == 0 {
			return nil
		}
		s := t.commandReply[0]
		t.commandReply = t.commandReply[1:]
		return s
	case classAPI:
		if len(t.api) == 0 {
			return nil
		}
		s := t.api[0]
		t.api = t.api[1:]
		return s
	case classBgapi:
		if len(t.bgapi) == 0 {
			return nil
		}
		s := t.bgapi[0]
		t.bgapi = t.bgapi[1:]
		return s
	default:
		return nil
	}
}

// registerJob records a channel to receive the BACKGROUND_JOB event
// correlated to jobUUID. If the event has already arrived (race between
// the bgapi reply and the job event), deliverJob will have buffered it
// on a channel, and registerJob returns that channel, from which the
// event can be read immediately.
func (t *pendingTables) registerJob(jobUUID string) chan *Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ch, ok := t.jobs[jobUUID]; ok {
		// deliverJob already ran and buffered the event before this
		// caller registered; hand back the existing channel rather
		// than clobbering it with a fresh, empty one.
		return ch
	}
	ch := make(chan *Event, 1)
	t.jobs[jobUUID] = ch
	return ch
}

// deliverJob routes a BACKGROUND_JOB event to its registered channel, if
// any. If no caller has registered for this Job-UUID yet (spec §8
// boundary case: the event can arrive before the caller registers), the
// event is buffered on a fresh channel so a later registerJob call still
// observes it.
func (t *pendingTables) deliverJob(jobUUID string, e *Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ch, ok := t.jobs[jobUUID]; ok {
		delete(t.jobs, jobUUID)
		ch <- e
		return
	}
	buffered := make(chan *Event, 1)
	buffered <- e
	t.jobs[jobUUID] = buffered
}

// drain empties every FIFO and buffered job channel, delivering err to
// each waiting slot. Called once, by the reader, on disconnect.
func (t *pendingTables) drain(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, s := range t.commandReply {
		s.deliver(pendingResult{err: err})
	}
	for _, s := range t.api {
		s.deliver(pendingResult{err: err})
	}
	for _, s := range t.bgapi {
		s.deliver(pendingResult{err: err})
	}
	t.commandReply = nil
	t.api = nil
	t.bgapi = nil
	for uuid, ch := range t.jobs {
		close(ch)
		delete(t.jobs, uuid)
	}
}
