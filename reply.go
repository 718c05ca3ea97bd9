package fsesl

import "strings"

// EventFormat selects how event payloads are encoded on the wire, both
// for what the reader expects to decode and for what "event <format>
// ..." subscription commands request.
type EventFormat int

const (
	// FormatPlain requests text/event-plain: percent-encoded headers.
	FormatPlain EventFormat = iota
	// FormatJSON requests text/event-json: a flat JSON object.
	FormatJSON
	// FormatXML requests text/event-xml.
	FormatXML
)

func (f EventFormat) String() string {
	switch f {
	case FormatPlain:
		return "plain"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "plain"
	}
}

// CommandReply is the synchronous acknowledgement of a protocol command.
// ReplyText holds the raw status line ("+OK accepted", "-ERR ...").
type CommandReply struct {
	ReplyText string
	Headers   []Header
}

// OK reports whether the reply's status line indicates success.
func (r *CommandReply) OK() bool {
	return strings.HasPrefix(r.ReplyText, "+OK")
}

// Header returns the first value recorded for name (case-insensitive).
func (r *CommandReply) Header(name string) (string, bool) {
	for _, h := range r.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// ApiResponse is the textual body of an "api" command.
type ApiResponse struct {
	Body []byte
}

// AuthRequest is the server's handshake solicitation, seen once on
// inbound connect.
type AuthRequest struct{}

// DisconnectNotice is the terminal frame a server sends before closing
// the connection gracefully.
type DisconnectNotice struct {
	Headers []Header
	Body    []byte
}

// LogData is a log/data frame: free text plus the level it was logged
// at.
type LogData struct {
	Level string
	Body  []byte
}

// classified is the sum type readFrame+classify produce: exactly one of
// its fields is non-nil.
type classified struct {
	auth       *AuthRequest
	reply      *CommandReply
	api        *ApiResponse
	event      *Event
	disconnect *DisconnectNotice
	log        *LogData
}

// classifyFrame interprets a fully-read envelope by its Content-Type
// header, per the dispatch table in spec §4.1.
func classifyFrame(f *frame) (*classified, error) {
	ct := f.contentType()
	switch ct {
	case "auth/request":
		return &classified{auth: &AuthRequest{}}, nil

	case "command/reply":
		replyText, _ := f.header("Reply-Text")
		return &classified{reply: &CommandReply{ReplyText: replyText, Headers: f.headers}}, nil

	case "api/response":
		return &classified{api: &ApiResponse{Body: f.body}}, nil

	case "text/event-plain":
		e, err := parseEventPlain(f.body)
		if err != nil {
			return nil, err
		}
		return &classified{event: e}, nil

	case "text/event-json":
		e, err := parseEventJSON(f.body)
		if err != nil {
			return nil, err
		}
		return &classified{event: e}, nil

	case "text/event-xml":
		e, err := parseEventXML(f.body)
		if err != nil {
			return nil, err
		}
		return &classified{event: e}, nil

	case "text/disconnect-notice":
		return &classified{disconnect: &DisconnectNotice{Headers: f.headers, Body: f.body}}, nil

	case "log/data":
		level, _ := f.header("Log-Level")
		return &classified{log: &LogData{Level: level, Body: f.body}}, nil

	default:
		return nil, errProtocol("unknown Content-Type %q", ct)
	}
}
