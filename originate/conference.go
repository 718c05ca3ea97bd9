package originate

import (
	"fmt"
	"strings"
)

// ConferenceMute renders "conference <name> mute <member>".
func ConferenceMute(name, member string) string {
	return fmt.Sprintf("conference %s mute %s", name, member)
}

// ConferenceUnmute renders "conference <name> unmute <member>".
func ConferenceUnmute(name, member string) string {
	return fmt.Sprintf("conference %s unmute %s", name, member)
}

// ConferenceHold renders "conference <name> hold <member>".
func ConferenceHold(name, member string) string {
	return fmt.Sprintf("conference %s hold %s", name, member)
}

// ConferenceUnhold renders "conference <name> unhold <member>".
func ConferenceUnhold(name, member string) string {
	return fmt.Sprintf("conference %s unhold %s", name, member)
}

// ConferenceDtmf is the round-trippable form of "conference <name>
// dtmf <member> <digits>".
type ConferenceDtmf struct {
	Conference string
	Member     string
	Digits     string
}

func (c ConferenceDtmf) String() string {
	return fmt.Sprintf("conference %s dtmf %s %s", c.Conference, c.Member, c.Digits)
}

// ParseConferenceDtmf parses a "conference ... dtmf ..." command as
// produced by String.
func ParseConferenceDtmf(s string) (ConferenceDtmf, error) {
	fields := strings.Fields(s)
	if len(fields) != 5 || fields[0] != "conference" || fields[2] != "dtmf" {
		return ConferenceDtmf{}, errMalformed("malformed conference dtmf command: %q", s)
	}
	return ConferenceDtmf{Conference: fields[1], Member: fields[3], Digits: fields[4]}, nil
}
