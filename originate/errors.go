package originate

import "fmt"

// ParseError reports a malformed string passed to one of this
// package's Parse functions.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string {
	return "originate: " + e.msg
}

func errMalformed(format string, args ...any) *ParseError {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}
