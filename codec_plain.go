package fsesl

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// percentDecode decodes a single percent-encoded header value the way
// FreeSWITCH encodes plain-format event headers: '+' is a literal plus
// sign, not a space, so this cannot reuse url.QueryUnescape directly
// (it treats '+' as space, a form-encoding convention ESL does not
// follow). Invalid escapes surface as a ProtocolError.
func percentDecode(s string) (string, error) {
	if !strings.ContainsRune(s, '%') {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return "", errProtocol("invalid percent-encoding in %q: truncated escape", s)
		}
		hi, okHi := hexVal(s[i+1])
		lo, okLo := hexVal(s[i+2])
		if !okHi || !okLo {
			return "", errProtocol("invalid percent-encoding in %q: bad hex digits", s)
		}
		b.WriteByte(byte(hi<<4 | lo))
		i += 2
	}
	return b.String(), nil
}

func hexVal(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// percentEncode encodes a header value for plain-format emission. Every
// byte outside an unreserved set is escaped, matching the decoder above
// byte-for-byte (round-trip law).
func percentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedHeaderByte(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isUnreservedHeaderByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '_' || c == '.' || c == '~':
		return true
	default:
		return false
	}
}

// parseEventPlain parses the nested text/event-plain payload carried as
// the outer envelope's body: a percent-encoded header block, optionally
// followed by a body whose length is given by a nested Content-Length
// header (spec §4.1).
func parseEventPlain(payload []byte) (*Event, error) {
	headerBlock, rest, found := splitHeaderBlock(payload)
	if !found {
		headerBlock, rest = payload, nil
	}

	lines := bytes.Split(headerBlock, []byte("\n"))
	e := &Event{}
	var nestedContentLength string
	var hasNestedContentLength bool
	for _, line := range lines {
		line = bytes.TrimRight(line, "\r")
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		name, value, ok := splitHeaderLine(string(line))
		if !ok {
			return nil, errProtocol("malformed nested header line: %q", line)
		}
		decoded, err := percentDecode(value)
		if err != nil {
			return nil, err
		}
		// Content-Length here is the nested payload's body-length
		// framing metadata, not a logical header of the event itself
		// (mirroring how the outer envelope's Content-Length never
		// appears as a CommandReply/event header either) — consumed
		// below, not stored.
		if strings.EqualFold(name, "Content-Length") {
			nestedContentLength, hasNestedContentLength = decoded, true
			continue
		}
		e.headers = append(e.headers, Header{Name: name, Value: decoded})
	}

	if hasNestedContentLength {
		clStr := nestedContentLength
		cl, convErr := strconv.Atoi(strings.TrimSpace(clStr))
		if convErr != nil {
			return nil, errProtocol("invalid nested Content-Length %q: %v", clStr, convErr)
		}
		if cl > 0 {
			if cl > len(rest) {
				return nil, errProtocol("nested Content-Length %d exceeds available payload (%d bytes)", cl, len(rest))
			}
			e.body = append([]byte(nil), rest[:cl]...)
		}
	}
	return e, nil
}

// splitHeaderBlock splits payload at the first blank-line boundary
// ("\n\n" or "\r\n\r\n"), returning the header block and whatever
// follows it. found is false if no blank line was present, meaning the
// whole payload is headers with no body.
func splitHeaderBlock(payload []byte) (headerBlock, rest []byte, found bool) {
	if idx := bytes.Index(payload, []byte("\r\n\r\n")); idx >= 0 {
		return payload[:idx], payload[idx+4:], true
	}
	if idx := bytes.Index(payload, []byte("\n\n")); idx >= 0 {
		return payload[:idx], payload[idx+2:], true
	}
	return nil, nil, false
}

// ToPlain serializes the event to its canonical plain-text wire form:
// percent-encoded "Name: value" lines, a blank line, and the raw body.
// A Content-Length header is emitted in place of any pre-existing one
// so it always matches the actual body length.
func (e *Event) ToPlain() []byte {
	var b bytes.Buffer
	wroteContentLength := false
	for _, h := range e.headers {
		if strings.EqualFold(h.Name, "Content-Length") {
			wroteContentLength = true
			continue
		}
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(percentEncode(h.Value))
		b.WriteByte('\n')
	}
	if len(e.body) > 0 || wroteContentLength {
		b.WriteString("Content-Length: ")
		b.WriteString(strconv.Itoa(len(e.body)))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	b.Write(e.body)
	return b.Bytes()
}
