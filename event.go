package fsesl

import "strings"

// Header is a single name/value pair as it appeared on the wire. Header
// values are stored already percent-decoded.
type Header struct {
	Name  string
	Value string
}

// Event is an ordered, possibly multi-valued mapping from header name to
// header value, plus an optional body. Every event received from
// FreeSWITCH carries at least an Event-Name header. Headers preserve
// insertion order and duplicate names are never merged — last-writer-wins
// is not performed by Event itself. parseEventJSON decodes the payload
// into a map, so a member name repeated in a JSON payload yields one
// header holding the last value.
type Event struct {
	headers []Header
	body    []byte
}

// NewEvent creates an empty Event. Headers and a body may be attached
// with AddHeader and SetBody; this is the constructor used when
// building events locally (e.g. for tests or for re-serialization).
func NewEvent() *Event {
	return &Event{}
}

// AddHeader appends a header, preserving any existing headers of the
// same name. Order of calls is the order exposed by Headers.
func (e *Event) AddHeader(name, value string) {
	e.headers = append(e.headers, Header{Name: name, Value: value})
}

// SetBody attaches a body to the event. A nil or empty slice clears it.
func (e *Event) SetBody(body []byte) {
	if len(body) == 0 {
		e.body = nil
		return
	}
	e.body = body
}

// Header returns the first value recorded for name (case-insensitive),
// and whether any value was found.
func (e *Event) Header(name string) (string, bool) {
	for _, h := range e.headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// Headers returns every value recorded for name (case-insensitive), in
// insertion order. The returned slice is nil if name was never set.
func (e *Event) Headers(name string) []string {
	var out []string
	for _, h := range e.headers {
		if strings.EqualFold(h.Name, name) {
			out = append(out, h.Value)
		}
	}
	return out
}

// All returns every header in insertion order. The returned slice must
// not be mutated by the caller.
func (e *Event) All() []Header {
	return e.headers
}

// Body returns the event's raw body, or nil if it has none.
func (e *Event) Body() []byte {
	return e.body
}

// EventName returns the raw Event-Name header value, or "" if absent.
func (e *Event) EventName() string {
	v, _ := e.Header("Event-Name")
	return v
}

// EventSubclass returns the raw Event-Subclass header value, or "" if
// absent. Only meaningful when EventName is "CUSTOM".
func (e *Event) EventSubclass() string {
	v, _ := e.Header("Event-Subclass")
	return v
}

// Kind resolves the event's EventKind from Event-Name, folding in
// Event-Subclass to build a Custom kind (e.g. "sofia::register") when
// the event name is CUSTOM and a subclass is present. Returns false if
// Event-Name is absent.
func (e *Event) Kind() (EventKind, bool) {
	name := e.EventName()
	if name == "" {
		return EventKind{}, false
	}
	if name == "CUSTOM" {
		if sub := e.EventSubclass(); sub != "" {
			return CustomEventKind(sub), true
		}
	}
	return parseEventKind(name), true
}

// UniqueID returns the Unique-ID header (the channel's call leg
// identifier), or "" if absent.
func (e *Event) UniqueID() string {
	v, _ := e.Header("Unique-ID")
	return v
}

// JobUUID returns the Job-UUID header (correlating a BACKGROUND_JOB
// event to the bgapi call that spawned it), or "" if absent.
func (e *Event) JobUUID() string {
	v, _ := e.Header("Job-UUID")
	return v
}

// ChannelState returns the Channel-State header, or "" if absent.
func (e *Event) ChannelState() string {
	v, _ := e.Header("Channel-State")
	return v
}

// HangupCause returns the Hangup-Cause header, or "" if absent.
func (e *Event) HangupCause() string {
	v, _ := e.Header("Hangup-Cause")
	return v
}

// Equal reports whether e and other have identical headers (name,
// value, and order) and identical bodies.
func (e *Event) Equal(other *Event) bool {
	if other == nil {
		return false
	}
	if len(e.headers) != len(other.headers) {
		return false
	}
	for i, h := range e.headers {
		if h != other.headers[i] {
			return false
		}
	}
	return string(e.body) == string(other.body)
}
