package fsesl

// EventKind identifies the canonical class of an event. The zero value
// is not a valid kind; use parseEventKind or CustomEventKind to build
// one. Equality is by value, so two EventKind values compare equal with
// ==.
type EventKind struct {
	name   string
	custom bool
}

// String returns the wire form of the kind: the bare name for standard
// kinds, or "CUSTOM" for a subclassed kind (use Subclass to recover the
// subclass string).
func (k EventKind) String() string {
	if k.custom {
		return "CUSTOM"
	}
	return k.name
}

// IsCustom reports whether k is a CUSTOM/subclassed event kind.
func (k EventKind) IsCustom() bool {
	return k.custom
}

// Subclass returns the subclass string (e.g. "sofia::register") for a
// custom kind, or "" for a standard kind.
func (k EventKind) Subclass() string {
	if !k.custom {
		return ""
	}
	return k.name
}

// CustomEventKind builds the EventKind for a CUSTOM event with the
// given subclass.
func CustomEventKind(subclass string) EventKind {
	return EventKind{name: subclass, custom: true}
}

// standardEventNames is the closed set of canonical event names, taken
// from FreeSWITCH's EVENT_NAMES table. Its trailing "ALL" entry is
// filtered out of standardEventNameSet and StandardEventNames: it is a
// subscription-only pseudo-name (spec §8, property 6), not a real event
// kind a received event can carry.
var standardEventNames = []string{
	"CUSTOM",
	"CLONE",
	"CHANNEL_CREATE",
	"CHANNEL_DESTROY",
	"CHANNEL_STATE",
	"CHANNEL_CALLSTATE",
	"CHANNEL_ANSWER",
	"CHANNEL_HANGUP",
	"CHANNEL_HANGUP_COMPLETE",
	"CHANNEL_EXECUTE",
	"CHANNEL_EXECUTE_COMPLETE",
	"CHANNEL_HOLD",
	"CHANNEL_UNHOLD",
	"CHANNEL_BRIDGE",
	"CHANNEL_UNBRIDGE",
	"CHANNEL_PROGRESS",
	"CHANNEL_PROGRESS_MEDIA",
	"CHANNEL_OUTGOING",
	"CHANNEL_PARK",
	"CHANNEL_UNPARK",
	"CHANNEL_APPLICATION",
	"CHANNEL_ORIGINATE",
	"CHANNEL_UUID",
	"API",
	"LOG",
	"INBOUND_CHAN",
	"OUTBOUND_CHAN",
	"STARTUP",
	"SHUTDOWN",
	"PUBLISH",
	"UNPUBLISH",
	"TALK",
	"NOTALK",
	"SESSION_CRASH",
	"MODULE_LOAD",
	"MODULE_UNLOAD",
	"DTMF",
	"MESSAGE",
	"PRESENCE_IN",
	"NOTIFY_IN",
	"PRESENCE_OUT",
	"PRESENCE_PROBE",
	"MESSAGE_WAITING",
	"MESSAGE_QUERY",
	"ROSTER",
	"CODEC",
	"BACKGROUND_JOB",
	"DETECTED_SPEECH",
	"DETECTED_TONE",
	"PRIVATE_COMMAND",
	"HEARTBEAT",
	"TRAP",
	"ADD_SCHEDULE",
	"DEL_SCHEDULE",
	"EXE_SCHEDULE",
	"RE_SCHEDULE",
	"RELOADXML",
	"NOTIFY",
	"PHONE_FEATURE",
	"PHONE_FEATURE_SUBSCRIBE",
	"SEND_MESSAGE",
	"RECV_MESSAGE",
	"REQUEST_PARAMS",
	"CHANNEL_DATA",
	"GENERAL",
	"COMMAND",
	"SESSION_HEARTBEAT",
	"CLIENT_DISCONNECTED",
	"SERVER_DISCONNECTED",
	"SEND_INFO",
	"RECV_INFO",
	"RECV_RTCP_MESSAGE",
	"SEND_RTCP_MESSAGE",
	"CALL_SECURE",
	"NAT",
	"RECORD_START",
	"RECORD_STOP",
	"PLAYBACK_START",
	"PLAYBACK_STOP",
	"CALL_UPDATE",
	"FAILURE",
	"SOCKET_DATA",
	"MEDIA_BUG_START",
	"MEDIA_BUG_STOP",
	"CONFERENCE_DATA_QUERY",
	"CONFERENCE_DATA",
	"CALL_SETUP_REQ",
	"CALL_SETUP_RESULT",
	"CALL_DETAIL",
	"DEVICE_STATE",
	"DEVICE_STATE_RESPONSE",
	"SHUTDOWN_REQUESTED",
	"DOCUMENT",
	"ALL", // kept last; skipped by standardEventNameSet and StandardEventNames, so IsStandardName("ALL") is false
}

// standardEventNameSet indexes standardEventNames for O(1) membership
// checks, excluding the "ALL" pseudo-name.
var standardEventNameSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(standardEventNames))
	for _, n := range standardEventNames {
		if n == "ALL" {
			continue
		}
		m[n] = struct{}{}
	}
	return m
}()

// StandardEventNames returns the closed set of canonical event names
// (excluding the "ALL" subscription pseudo-name), for verification
// against the reference server's name table.
func StandardEventNames() []string {
	out := make([]string, 0, len(standardEventNames)-1)
	for _, n := range standardEventNames {
		if n != "ALL" {
			out = append(out, n)
		}
	}
	return out
}

// parseEventKind resolves a bare Event-Name value (never "CUSTOM" with a
// subclass — use Event.Kind for that) into an EventKind. Unknown names
// are preserved verbatim rather than rejected, since the server's name
// table may grow; IsCustom will be false and Subclass "" for these, only
// StandardEventNames membership distinguishes a truly recognized name.
func parseEventKind(name string) EventKind {
	return EventKind{name: name}
}

// IsStandardName reports whether name is one of the closed set of
// canonical event names (excluding "ALL").
func IsStandardName(name string) bool {
	_, ok := standardEventNameSet[name]
	return ok
}
