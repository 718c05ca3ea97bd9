package fsesl

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultMaxBodyBytes is the default hard cap on a declared
// Content-Length before the codec refuses to read it and reports a
// ProtocolError. Callers may override it with WithMaxBodyBytes.
const DefaultMaxBodyBytes = 64 << 20 // 64 MiB

// frame is a fully-read envelope: its header block plus the raw body
// bytes, if Content-Length declared one. It is the unit the reader loop
// classifies and dispatches.
type frame struct {
	headers []Header
	body    []byte
}

func (f *frame) header(name string) (string, bool) {
	for _, h := range f.headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value, true
		}
	}
	return "", false
}

// frameReader reads envelope frames off a byte stream. It owns no
// socket semantics of its own — the reader task pairs it with the
// liveness deadline and disconnect classification.
type frameReader struct {
	br          *bufio.Reader
	maxBody     int64
}

func newFrameReader(r io.Reader, maxBody int64) *frameReader {
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &frameReader{br: bufio.NewReaderSize(r, 8192), maxBody: maxBody}
}

// readFrame reads one envelope: a block of "Name: value" lines
// terminated by a blank line, followed by exactly Content-Length bytes
// of body if that header was present and nonzero. A truncated read at
// EOF is reported as io.EOF so the reader task can classify it as
// Disconnected(Eof).
func (fr *frameReader) readFrame() (*frame, error) {
	headers, err := fr.readHeaderBlock(false)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		// A bare blank line with no headers at all; treat as an empty
		// frame rather than looping forever. Should not occur on a
		// well-behaved FreeSWITCH connection.
		return &frame{}, nil
	}

	f := &frame{headers: headers}

	clStr, hasCL := f.header("Content-Length")
	if !hasCL {
		return f, nil
	}
	cl, convErr := strconv.Atoi(strings.TrimSpace(clStr))
	if convErr != nil {
		return nil, errProtocol("invalid Content-Length header %q: %v", clStr, convErr)
	}
	if cl == 0 {
		return f, nil
	}
	if int64(cl) > fr.maxBody {
		return nil, errProtocol("declared body size %s exceeds configured cap %s",
			humanize.Bytes(uint64(cl)), humanize.Bytes(uint64(fr.maxBody)))
	}

	body := make([]byte, cl)
	if _, err := io.ReadFull(fr.br, body); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, io.EOF
		}
		return nil, errIO(err)
	}
	f.body = body
	return f, nil
}

// readHeaderBlock reads "Name: value" lines until a blank line. Casing
// of the first occurrence of a header name is preserved for display;
// lookups are always case-insensitive. The outer envelope (Content-Type,
// Content-Length, Reply-Text, ...) is never percent-encoded on the
// wire, so readFrame passes decode=false. The nested event-plain
// payload header block (§4.1), which is percent-encoded, is parsed by
// parseEventPlain, not by this function.
func (fr *frameReader) readHeaderBlock(decode bool) ([]Header, error) {
	var headers []Header
	for {
		line, err := fr.br.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				if len(bytes.TrimSpace(line)) == 0 {
					return nil, io.EOF
				}
				// Partial line at EOF: a truncated frame.
				return nil, io.EOF
			}
			return nil, errIO(err)
		}
		trimmed := bytes.TrimRight(line, "\r\n")
		if len(bytes.TrimSpace(trimmed)) == 0 {
			break
		}
		name, value, ok := splitHeaderLine(string(trimmed))
		if !ok {
			return nil, errProtocol("malformed header line: %q", trimmed)
		}
		if decode {
			decoded, decErr := percentDecode(value)
			if decErr != nil {
				return nil, decErr
			}
			value = decoded
		}
		headers = append(headers, Header{Name: name, Value: value})
	}
	return headers, nil
}

func splitHeaderLine(line string) (name, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(line[:idx])
	value = strings.TrimSpace(line[idx+1:])
	if name == "" {
		return "", "", false
	}
	return name, value, true
}

// contentType returns the envelope's Content-Type header value.
func (f *frame) contentType() string {
	v, _ := f.header("Content-Type")
	return v
}
