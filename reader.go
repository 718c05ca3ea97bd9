package fsesl

import (
	"io"
	"log/slog"
	"net"
	"time"
)

// readerTask owns the read half of the connection, the frame codec, and
// the shared pending-call tables. Exactly one goroutine runs its loop
// per connection (spec §4.4, §5). It never acquires the writer mutex
// and never blocks the client handle.
type readerTask struct {
	conn    net.Conn
	fr      *frameReader
	pending *pendingTables
	stream  *EventStream
	status  *statusWatcher
	cfg     *clientConfig

	authCh chan *AuthRequest

	liveness time.Duration
}

func newReaderTask(conn net.Conn, pending *pendingTables, stream *EventStream, status *statusWatcher, cfg *clientConfig) *readerTask {
	return &readerTask{
		conn:     conn,
		fr:       newFrameReader(conn, cfg.maxBodyBytes),
		pending:  pending,
		stream:   stream,
		status:   status,
		cfg:      cfg,
		authCh:   make(chan *AuthRequest, 1),
		liveness: cfg.livenessTimeout,
	}
}

// run is the reader loop. It returns only when the connection is dead;
// callers spawn it with `go rt.run()` and observe the outcome through
// the status watcher and EventStream closure.
func (rt *readerTask) run() {
	defer rt.stream.close()

	type frameResult struct {
		f   *frame
		err error
	}
	frames := make(chan frameResult, 1)

	readOne := func() {
		f, err := rt.fr.readFrame()
		frames <- frameResult{f: f, err: err}
	}

	go readOne()

	for {
		timer := time.NewTimer(rt.cfg.livenessTimeout)
		select {
		case res := <-frames:
			timer.Stop()
			if res.err != nil {
				rt.shutdown(rt.classifyReadError(res.err))
				return
			}
			rt.dispatch(res.f)
			go readOne()

		case <-timer.C:
			rt.shutdown(ConnStatus{State: StateDisconnected, Reason: ReasonHeartbeatExpired})
			return
		}
	}
}

func (rt *readerTask) classifyReadError(err error) ConnStatus {
	if err == io.EOF {
		return ConnStatus{State: StateDisconnected, Reason: ReasonEOF}
	}
	if e, ok := err.(*Error); ok && e.Kind != KindIO {
		return ConnStatus{State: StateDisconnected, Reason: ReasonProtocolError, Cause: err}
	}
	return ConnStatus{State: StateDisconnected, Reason: ReasonIO, Cause: err}
}

func (rt *readerTask) dispatch(f *frame) {
	c, err := classifyFrame(f)
	if err != nil {
		rt.shutdown(ConnStatus{State: StateDisconnected, Reason: ReasonProtocolError, Cause: err})
		return
	}

	switch {
	case c.auth != nil:
		select {
		case rt.authCh <- c.auth:
		default:
		}

	case c.reply != nil:
		rt.dispatchReply(c.reply)

	case c.api != nil:
		if slot := rt.pending.popFront(classAPI); slot != nil {
			slot.deliver(pendingResult{api: c.api})
		} else {
			rt.cfg.logf(slog.LevelDebug, "fsesl: unmatched api/response")
		}

	case c.event != nil:
		rt.dispatchEvent(c.event)

	case c.disconnect != nil:
		rt.shutdown(ConnStatus{State: StateDisconnected, Reason: ReasonGraceful})

	case c.log != nil:
		// No dedicated log channel is wired in this configuration;
		// discarding matches spec §4.4's "push to an optional log
		// channel if enabled, else discard".
	}
}

// dispatchReply handles a command/reply frame. A reply carrying a
// Job-UUID header is the acknowledgement of a bgapi call and is routed
// to the bgapi FIFO; every other command/reply goes to the default
// FIFO.
func (rt *readerTask) dispatchReply(r *CommandReply) {
	if _, ok := r.Header("Job-UUID"); ok {
		if slot := rt.pending.popFront(classBgapi); slot != nil {
			slot.deliver(pendingResult{reply: r})
			return
		}
	}
	if slot := rt.pending.popFront(classCommandReply); slot != nil {
		slot.deliver(pendingResult{reply: r})
		return
	}
	rt.cfg.logf(slog.LevelDebug, "fsesl: unmatched command/reply", "reply_text", r.ReplyText)
}

func (rt *readerTask) dispatchEvent(e *Event) {
	if e.EventName() == "BACKGROUND_JOB" {
		if jobUUID := e.JobUUID(); jobUUID != "" {
			rt.pending.deliverJob(jobUUID, e)
		}
	}
	if err := rt.stream.push(e); err != nil {
		rt.shutdown(ConnStatus{State: StateDisconnected, Reason: ReasonProtocolError, Cause: err})
	}
}

func (rt *readerTask) shutdown(status ConnStatus) {
	var cause error
	switch status.Reason {
	case ReasonHeartbeatExpired:
		cause = errHeartbeatExpired()
	case ReasonProtocolError:
		if status.Cause != nil {
			cause = status.Cause
		} else {
			cause = errProtocol("disconnected")
		}
	case ReasonEOF, ReasonIO:
		cause = errNotConnected()
	default:
		cause = errNotConnected()
	}
	rt.pending.drain(cause)
	rt.status.publish(status)
	rt.conn.Close()
}
