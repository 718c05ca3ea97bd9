package fsesl

import (
	"context"
	"log/slog"
	"time"
)

// clientConfig holds every knob a ClientOption can set. Defaults are
// applied in newClientConfig before options run, so each option only
// needs to override what it cares about.
type clientConfig struct {
	commandTimeout  time.Duration
	livenessTimeout time.Duration
	queueCapacity   int
	overflowPolicy  OverflowPolicy
	maxBodyBytes    int64
	logger          *slog.Logger
}

func newClientConfig() *clientConfig {
	return &clientConfig{
		commandTimeout:  5 * time.Second,
		livenessTimeout: 60 * time.Second,
		queueCapacity:   256,
		overflowPolicy:  OverflowDropOldest,
		maxBodyBytes:    DefaultMaxBodyBytes,
		logger:          nil,
	}
}

// ClientOption configures a Client at construction time (Connect,
// ConnectUser, AcceptOutbound).
type ClientOption func(*clientConfig)

// WithCommandTimeout overrides the default 5s timeout a caller waits for
// a command's reply before observing Timeout. The pending slot is not
// cancelled; a late reply is simply discarded.
func WithCommandTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) { c.commandTimeout = d }
}

// WithLivenessTimeout overrides the default 60s deadline for inbound
// bytes before the connection is reported Disconnected(HeartbeatExpired).
// Must be comfortably larger than the server's HEARTBEAT interval
// (default 20s) to avoid false positives under normal jitter.
func WithLivenessTimeout(d time.Duration) ClientOption {
	return func(c *clientConfig) { c.livenessTimeout = d }
}

// WithEventQueueCapacity overrides the default 256-event bound on the
// consumer queue.
func WithEventQueueCapacity(n int) ClientOption {
	return func(c *clientConfig) { c.queueCapacity = n }
}

// WithOverflowPolicy overrides the default OverflowDropOldest behavior
// for a full event queue.
func WithOverflowPolicy(p OverflowPolicy) ClientOption {
	return func(c *clientConfig) { c.overflowPolicy = p }
}

// WithMaxBodyBytes overrides the hard cap on a single frame's declared
// Content-Length; a larger declared size is rejected as a ProtocolError
// rather than read.
func WithMaxBodyBytes(n int64) ClientOption {
	return func(c *clientConfig) { c.maxBodyBytes = n }
}

// WithLogger attaches a logger for trace/debug-level wire activity. A
// nil logger (the default) disables logging entirely; every log call
// site nil-checks first so this option is optional, not required.
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *clientConfig) { c.logger = l }
}

func (c *clientConfig) logf(level slog.Level, msg string, args ...any) {
	if c.logger == nil {
		return
	}
	c.logger.Log(context.Background(), level, msg, args...)
}
