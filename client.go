package fsesl

import (
	"context"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Client is a clonable handle to one ESL connection: the writer half
// guarded by a mutex, a reference to the shared pending-call tables, a
// status watcher, and configuration. Any number of goroutines may share
// one Client; every operation serializes its own write under the
// mutex and never holds it across a reply wait (spec §4.5, §5).
type Client struct {
	conn    net.Conn
	writeMu *sync.Mutex
	pending *pendingTables
	status  *statusWatcher
	cfg     *clientConfig

	controlFull atomic.Bool
	channelData atomic.Pointer[CommandReply]
}

// Connect opens an inbound ESL connection: dials host:port, spawns the
// reader, waits for the server's auth/request, sends "auth <password>",
// and awaits the command/reply. On "-ERR" it returns an AuthFailed
// error and the connection is closed.
func Connect(ctx context.Context, addr string, password string, opts ...ClientOption) (*Client, *EventStream, error) {
	return connectInbound(ctx, addr, func(c *Client) ([]byte, error) {
		return buildAuth(password), nil
	}, opts...)
}

// ConnectUser opens an inbound ESL connection using "userauth
// <user>@<domain>:<password>" instead of the bare password form.
func ConnectUser(ctx context.Context, addr string, user, domain, password string, opts ...ClientOption) (*Client, *EventStream, error) {
	return connectInbound(ctx, addr, func(c *Client) ([]byte, error) {
		return buildUserAuth(user, domain, password), nil
	}, opts...)
}

func connectInbound(ctx context.Context, addr string, authCmd func(*Client) ([]byte, error), opts ...ClientOption) (*Client, *EventStream, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, nil, errIO(err)
	}

	c, stream, rt := newClient(conn, opts...)
	c.status.publish(ConnStatus{State: StateConnecting})
	go rt.run()

	select {
	case <-rt.authCh:
	case <-ctx.Done():
		conn.Close()
		return nil, nil, errIO(ctx.Err())
	}

	cmd, err := authCmd(c)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	reply, err := c.sendAwait(ctx, classCommandReply, cmd)
	if err != nil {
		conn.Close()
		if e, ok := err.(*Error); ok && e.Kind == KindCommandFailed {
			return nil, nil, errAuthFailed()
		}
		return nil, nil, err
	}
	if !reply.OK() {
		conn.Close()
		return nil, nil, errAuthFailed()
	}

	c.status.publish(ConnStatus{State: StateConnected})
	return c, stream, nil
}

// AcceptOutbound accepts a single outbound connection FreeSWITCH
// initiates (dialplan `socket` app) and spawns the reader. The first
// operation the caller must perform on the returned Client is
// ConnectSession.
func AcceptOutbound(listener net.Listener, opts ...ClientOption) (*Client, *EventStream, error) {
	conn, err := listener.Accept()
	if err != nil {
		return nil, nil, errIO(err)
	}
	c, stream, rt := newClient(conn, opts...)
	c.status.publish(ConnStatus{State: StateConnecting})
	go rt.run()
	return c, stream, nil
}

func newClient(conn net.Conn, opts ...ClientOption) (*Client, *EventStream, *readerTask) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	pending := newPendingTables()
	stream := newEventStream(cfg.queueCapacity, cfg.overflowPolicy)
	status := newStatusWatcher()
	rt := newReaderTask(conn, pending, stream, status, cfg)

	c := &Client{
		conn:    conn,
		writeMu: &sync.Mutex{},
		pending: pending,
		status:  status,
		cfg:     cfg,
	}
	return c, stream, rt
}

// ConnectSession sends "connect" (outbound sessions only) and returns
// the channel-data map carried by the reply headers, exposed as an
// Event-shaped value per spec §4.5. It also records whether the
// session is Control: full, gating nothing client-side (the server is
// authoritative) but available via IsFullControl.
func (c *Client) ConnectSession(ctx context.Context) (*Event, error) {
	reply, err := c.sendAwait(ctx, classCommandReply, buildConnect())
	if err != nil {
		return nil, err
	}
	c.channelData.Store(reply)
	if control, ok := reply.Header("Control"); ok && control == "full" {
		c.controlFull.Store(true)
	}
	e := NewEvent()
	for _, h := range reply.Headers {
		e.AddHeader(h.Name, h.Value)
	}
	return e, nil
}

// IsFullControl reports whether the outbound session negotiated
// Control: full (as opposed to single-channel) during ConnectSession.
func (c *Client) IsFullControl() bool {
	return c.controlFull.Load()
}

// ControlMode returns the raw "Control" header ("full" or
// "single-channel") from the ConnectSession reply, or "" if
// ConnectSession has not been called yet (design note "Outbound full
// vs. single-channel").
func (c *Client) ControlMode() string {
	reply := c.channelData.Load()
	if reply == nil {
		return ""
	}
	v, _ := reply.Header("Control")
	return v
}

// SocketMode returns the raw "Socket-Mode" header ("async" or
// "static") from the ConnectSession reply, or "" if ConnectSession has
// not been called yet.
func (c *Client) SocketMode() string {
	reply := c.channelData.Load()
	if reply == nil {
		return ""
	}
	v, _ := reply.Header("Socket-Mode")
	return v
}

// ChannelData returns the connect reply captured by ConnectSession, or
// nil if ConnectSession has not been called yet.
func (c *Client) ChannelData() *CommandReply {
	return c.channelData.Load()
}

// Api sends "api <cmd>" and returns the command's textual output.
func (c *Client) Api(ctx context.Context, cmd string) ([]byte, error) {
	slot, err := c.write(classAPI, buildAPI(cmd))
	if err != nil {
		return nil, err
	}
	res, err := c.awaitSlot(ctx, slot)
	if err != nil {
		return nil, err
	}
	if res.api == nil {
		return nil, errUnexpectedReply("expected api/response, got command/reply")
	}
	return res.api.Body, nil
}

// Bgapi sends "bgapi <cmd>" and returns the command/reply, whose
// Job-UUID header correlates the later BACKGROUND_JOB event. Use
// AwaitJob to wait for that event.
func (c *Client) Bgapi(ctx context.Context, cmd string) (*CommandReply, error) {
	return c.sendAwait(ctx, classBgapi, buildBgapi(cmd))
}

// AwaitJob blocks until the BACKGROUND_JOB event correlated to jobUUID
// arrives, or ctx is cancelled. It is safe to call before or after the
// event has actually arrived (spec §8 boundary case).
func (c *Client) AwaitJob(ctx context.Context, jobUUID string) (*Event, error) {
	ch := c.pending.registerJob(jobUUID)
	select {
	case e, ok := <-ch:
		if !ok {
			return nil, errNotConnected()
		}
		return e, nil
	case <-ctx.Done():
		return nil, errTimeout()
	}
}

// Send issues a raw protocol command and awaits its command/reply.
func (c *Client) Send(ctx context.Context, raw string) (*CommandReply, error) {
	cmd := raw
	if !strings.HasSuffix(cmd, "\n\n") {
		cmd = strings.TrimRight(cmd, "\n") + "\n\n"
	}
	return c.sendAwait(ctx, classCommandReply, []byte(cmd))
}

// SubscribeEvents sends "event <format> <kinds...>".
func (c *Client) SubscribeEvents(ctx context.Context, format EventFormat, kinds []EventKind) (*CommandReply, error) {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return c.sendAwait(ctx, classCommandReply, buildEvent(format, names))
}

// Nixevent sends "nixevent <names...>".
func (c *Client) Nixevent(ctx context.Context, names []string) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildNixevent(names))
}

// Noevents sends "noevents".
func (c *Client) Noevents(ctx context.Context) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildNoevents())
}

// Filter sends "filter <header> <value>".
func (c *Client) Filter(ctx context.Context, header, value string) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildFilter(header, value))
}

// FilterDelete sends "filter delete <header> [<value>]".
func (c *Client) FilterDelete(ctx context.Context, header, value string) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildFilterDelete(header, value))
}

// Myevents sends "myevents [<uuid>] [<format>]".
func (c *Client) Myevents(ctx context.Context, uuid string, format EventFormat) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildMyevents(uuid, format))
}

// Linger sends "linger [<secs>]".
func (c *Client) Linger(ctx context.Context, secs int) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildLinger(secs))
}

// Nolinger sends "nolinger".
func (c *Client) Nolinger(ctx context.Context) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildNolinger())
}

// Resume sends "resume".
func (c *Client) Resume(ctx context.Context) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildResume())
}

// DivertEvents sends "divert_events on|off".
func (c *Client) DivertEvents(ctx context.Context, on bool) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildDivertEvents(on))
}

// Log sends "log <level>".
func (c *Client) Log(ctx context.Context, level string) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildLog(level))
}

// Nolog sends "nolog".
func (c *Client) Nolog(ctx context.Context) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildNolog())
}

// Getvar sends "getvar <name>" (outbound sessions only).
func (c *Client) Getvar(ctx context.Context, name string) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildGetvar(name))
}

// Sendevent sends "sendevent <name>\n<headers>\n\n<body>".
func (c *Client) Sendevent(ctx context.Context, name string, headers []Header, body []byte) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildSendevent(name, headers, body))
}

// Execute runs a dialplan application on the given channel (or the
// current one, for a single-channel outbound session, if uuid is
// empty) via sendmsg.
func (c *Client) Execute(ctx context.Context, uuid, app, args string) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildExecute(uuid, app, args))
}

// Sendmsg sends a raw "sendmsg" frame with caller-supplied headers.
func (c *Client) Sendmsg(ctx context.Context, uuid string, headers []Header, body []byte) (*CommandReply, error) {
	return c.sendAwait(ctx, classCommandReply, buildSendmsg(uuid, headers, body))
}

// NewJobUUID generates a fresh UUID suitable for use as a bgapi
// correlation id when the caller wants to choose it rather than take
// the server-assigned one from the command/reply.
func NewJobUUID() string {
	return uuid.NewString()
}

// Disconnect sends "exit", waits for the graceful close, and publishes
// Disconnected(Graceful). The reader task, not this call, performs the
// publish; this call only waits for it to happen.
func (c *Client) Disconnect(ctx context.Context) error {
	_, err := c.sendAwait(ctx, classCommandReply, buildExit())
	if err != nil && !IsConnectionError(err) {
		return err
	}
	sub := c.status.Subscribe()
	for {
		select {
		case s, ok := <-sub:
			if !ok {
				return nil
			}
			if s.State == StateDisconnected {
				return nil
			}
		case <-ctx.Done():
			return errTimeout()
		}
	}
}

// SetCommandTimeout changes the per-command reply timeout for
// subsequent calls on this Client (and any clone sharing its config).
func (c *Client) SetCommandTimeout(d time.Duration) {
	c.cfg.commandTimeout = d
}

// SetLivenessTimeout changes the inbound-byte deadline. Takes effect on
// the reader's next timer reset; it does not retroactively shorten a
// deadline already in flight.
func (c *Client) SetLivenessTimeout(d time.Duration) {
	c.cfg.livenessTimeout = d
}

// IsConnected reports whether the connection's status is still
// Connected (neither Connecting nor Disconnected).
func (c *Client) IsConnected() bool {
	return c.status.Current().State == StateConnected
}

// Status returns the current connection status snapshot.
func (c *Client) Status() ConnStatus {
	return c.status.Current()
}

// Watch returns a channel of status transitions; see statusWatcher.
func (c *Client) Watch() <-chan ConnStatus {
	return c.status.Subscribe()
}

// sendAwait appends a pending slot to class cls and writes cmd, both
// under the writer mutex, releases it, and awaits the reply with the
// configured command timeout. The writer mutex is never held across the
// await.
func (c *Client) sendAwait(ctx context.Context, cls class, cmd []byte) (*CommandReply, error) {
	slot, err := c.write(cls, cmd)
	if err != nil {
		return nil, err
	}
	res, err := c.awaitSlot(ctx, slot)
	if err != nil {
		return nil, err
	}
	if res.reply == nil {
		return nil, errUnexpectedReply("expected command/reply, got api/response")
	}
	if !res.reply.OK() {
		return nil, errCommandFailed(res.reply.ReplyText)
	}
	return res.reply, nil
}

func (c *Client) awaitSlot(ctx context.Context, slot *pendingSlot) (pendingResult, error) {
	timeout := c.cfg.commandTimeout
	var timeoutCh <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timeoutCh = t.C
	}
	select {
	case res := <-slot.ch:
		if res.err != nil {
			return pendingResult{}, res.err
		}
		return res, nil
	case <-timeoutCh:
		return pendingResult{}, errTimeout()
	case <-ctx.Done():
		return pendingResult{}, errTimeout()
	}
}

// write appends a pending slot to class cls and flushes b in one
// critical section of the writer mutex, so FIFO order and wire order
// agree across concurrent senders.
func (c *Client) write(cls class, b []byte) (*pendingSlot, error) {
	if !c.IsConnected() && c.status.Current().State != StateConnecting {
		return nil, errNotConnected()
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	slot := c.pending.push(cls)
	_, err := c.conn.Write(b)
	if err != nil {
		return nil, errIO(err)
	}
	return slot, nil
}
