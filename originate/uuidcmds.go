package originate

import (
	"fmt"
	"strings"
)

// UuidAnswer renders "uuid_answer <uuid>".
func UuidAnswer(uuid string) string {
	return "uuid_answer " + uuid
}

// UuidBridge renders "uuid_bridge <uuid1> <uuid2>".
func UuidBridge(uuid1, uuid2 string) string {
	return fmt.Sprintf("uuid_bridge %s %s", uuid1, uuid2)
}

// UuidDeflect renders "uuid_deflect <uuid> <target>".
func UuidDeflect(uuid, target string) string {
	return fmt.Sprintf("uuid_deflect %s %s", uuid, target)
}

// UuidHold renders "uuid_hold <uuid>", or "uuid_hold off <uuid>" to
// take the channel back off hold.
func UuidHold(uuid string, off bool) string {
	if off {
		return "uuid_hold off " + uuid
	}
	return "uuid_hold " + uuid
}

// UuidGetVar renders "uuid_getvar <uuid> <name>".
func UuidGetVar(uuid, name string) string {
	return fmt.Sprintf("uuid_getvar %s %s", uuid, name)
}

// UuidSetVar renders "uuid_setvar <uuid> <name> <value>".
func UuidSetVar(uuid, name, value string) string {
	return fmt.Sprintf("uuid_setvar %s %s %s", uuid, name, value)
}

// UuidTransfer renders "uuid_transfer <uuid> <dest> [<dialplan>
// [<context>]]".
func UuidTransfer(uuid, dest, dialplan, context string) string {
	parts := []string{"uuid_transfer", uuid, dest}
	if dialplan != "" {
		parts = append(parts, dialplan)
	}
	if context != "" {
		parts = append(parts, context)
	}
	return strings.Join(parts, " ")
}

// UuidSendDtmf renders "uuid_send_dtmf <uuid> <digits>".
func UuidSendDtmf(uuid, digits string) string {
	return fmt.Sprintf("uuid_send_dtmf %s %s", uuid, digits)
}

// UuidKill is the round-trippable form of "uuid_kill <uuid> [<cause>]".
type UuidKill struct {
	UUID  string
	Cause string
}

func (k UuidKill) String() string {
	if k.Cause == "" {
		return "uuid_kill " + k.UUID
	}
	return fmt.Sprintf("uuid_kill %s %s", k.UUID, k.Cause)
}

// ParseUuidKill parses a "uuid_kill ..." command as produced by String.
func ParseUuidKill(s string) (UuidKill, error) {
	fields := strings.Fields(strings.TrimPrefix(s, "uuid_kill "))
	switch len(fields) {
	case 1:
		return UuidKill{UUID: fields[0]}, nil
	case 2:
		return UuidKill{UUID: fields[0], Cause: fields[1]}, nil
	default:
		return UuidKill{}, errMalformed("malformed uuid_kill command: %q", s)
	}
}
