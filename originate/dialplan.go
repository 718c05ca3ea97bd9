package originate

import (
	"fmt"
	"strings"
)

// Answer renders the "answer" dialplan application.
func Answer() string {
	return "answer"
}

// Hangup renders "hangup", or "hangup:<cause>" when cause is given.
func Hangup(cause string) string {
	if cause == "" {
		return "hangup"
	}
	return "hangup:" + cause
}

// Playback renders "playback:<file>".
func Playback(file string) string {
	return "playback:" + file
}

// Bridge renders "bridge:<dest>".
func Bridge(dest string) string {
	return "bridge:" + dest
}

// Transfer renders "transfer:<ext> [<dialplan>] [<context>]".
func Transfer(ext, dialplan, context string) string {
	args := []string{ext}
	if dialplan != "" {
		args = append(args, dialplan)
	}
	if context != "" {
		args = append(args, context)
	}
	return "transfer:" + strings.Join(args, " ")
}

// Park renders the "park" dialplan application.
func Park() string {
	return "park"
}

// Sleep renders "sleep:<ms>".
func Sleep(ms int) string {
	return fmt.Sprintf("sleep:%d", ms)
}

// Set renders "set:<key>=<value>".
func Set(key, value string) string {
	return fmt.Sprintf("set:%s=%s", key, value)
}
