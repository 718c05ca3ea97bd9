package originate

import (
	"strconv"
	"strings"
)

// Originate is the round-trippable builder for the "originate" command
// (spec §4.7). Dialplan, Context, CallerIDName, CallerIDNumber, and
// Timeout are positional trailing arguments; String omits a trailing
// run of unset fields but preserves an unset field in the middle of a
// set one (FreeSWITCH itself requires the position, not the value, to
// be present).
type Originate struct {
	Endpoint       Endpoint
	Applications   ApplicationList
	Dialplan       string
	Context        string
	CallerIDName   string
	CallerIDNumber string
	Timeout        int // seconds; 0 means unset
}

// String renders "originate <endpoint> <applications> [tail...]".
func (o *Originate) String() string {
	parts := []string{"originate", o.Endpoint.String(), o.Applications.String()}

	tail := []string{o.Dialplan, o.Context, o.CallerIDName, o.CallerIDNumber, ""}
	if o.Timeout > 0 {
		tail[4] = strconv.Itoa(o.Timeout)
	}
	for len(tail) > 0 && tail[len(tail)-1] == "" {
		tail = tail[:len(tail)-1]
	}

	parts = append(parts, tail...)
	return strings.Join(parts, " ")
}

// ParseOriginate parses a full "originate ..." command line as
// produced by String.
func ParseOriginate(s string) (*Originate, error) {
	s = strings.TrimPrefix(s, "originate ")
	// Split on unquoted spaces, keeping quotes and escapes for
	// ParseVariables to resolve per variable (an escaped "\," stays one).
	var tokens []string
	start, inQuote := 0, false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s):
			i++
		case s[i] == '\'':
			inQuote = !inQuote
		case s[i] == ' ' && !inQuote:
			tokens = append(tokens, s[start:i])
			start = i + 1
		}
	}
	tokens = append(tokens, s[start:])
	if len(tokens) < 2 {
		return nil, errMalformed("originate command missing endpoint/applications: %q", s)
	}

	endpoint, err := ParseEndpoint(tokens[0])
	if err != nil {
		return nil, err
	}
	apps, err := ParseApplicationList(tokens[1])
	if err != nil {
		return nil, err
	}

	o := &Originate{Endpoint: endpoint, Applications: apps}
	tail := tokens[2:]
	if len(tail) > 0 {
		o.Dialplan = tail[0]
	}
	if len(tail) > 1 {
		o.Context = tail[1]
	}
	if len(tail) > 2 {
		o.CallerIDName = tail[2]
	}
	if len(tail) > 3 {
		o.CallerIDNumber = tail[3]
	}
	if len(tail) > 4 && tail[4] != "" {
		n, convErr := strconv.Atoi(tail[4])
		if convErr != nil {
			return nil, errMalformed("invalid originate timeout %q", tail[4])
		}
		o.Timeout = n
	}
	return o, nil
}

// Equal reports whether o and other describe the same originate call.
func (o *Originate) Equal(other *Originate) bool {
	if o == nil || other == nil {
		return o == other
	}
	if !o.Endpoint.Equal(other.Endpoint) {
		return false
	}
	if len(o.Applications) != len(other.Applications) {
		return false
	}
	for i := range o.Applications {
		if o.Applications[i] != other.Applications[i] {
			return false
		}
	}
	return o.Dialplan == other.Dialplan &&
		o.Context == other.Context &&
		o.CallerIDName == other.CallerIDName &&
		o.CallerIDNumber == other.CallerIDNumber &&
		o.Timeout == other.Timeout
}
