package fsesl

import (
	"fmt"
	"strings"
)

// buildAuth encodes the inbound handshake's "auth <password>" command.
func buildAuth(password string) []byte {
	return []byte("auth " + password + "\n\n")
}

// buildUserAuth encodes "userauth <user>@<domain>:<password>".
func buildUserAuth(user, domain, password string) []byte {
	return []byte(fmt.Sprintf("userauth %s@%s:%s\n\n", user, domain, password))
}

// buildAPI encodes "api <cmd>".
func buildAPI(cmd string) []byte {
	return []byte("api " + cmd + "\n\n")
}

// buildBgapi encodes "bgapi <cmd>"; the server's command/reply carries a
// Job-UUID header correlating the later BACKGROUND_JOB event.
func buildBgapi(cmd string) []byte {
	return []byte("bgapi " + cmd + "\n\n")
}

// buildEvent encodes "event <format> <name...>".
func buildEvent(format EventFormat, names []string) []byte {
	return []byte(fmt.Sprintf("event %s %s\n\n", format, strings.Join(names, " ")))
}

// buildNixevent encodes "nixevent <name...>".
func buildNixevent(names []string) []byte {
	return []byte("nixevent " + strings.Join(names, " ") + "\n\n")
}

// buildNoevents encodes "noevents".
func buildNoevents() []byte {
	return []byte("noevents\n\n")
}

// buildFilter encodes "filter <header> <value>".
func buildFilter(header, value string) []byte {
	return []byte(fmt.Sprintf("filter %s %s\n\n", header, value))
}

// buildFilterDelete encodes "filter delete <header> [<value>]".
func buildFilterDelete(header, value string) []byte {
	if value == "" {
		return []byte("filter delete " + header + "\n\n")
	}
	return []byte(fmt.Sprintf("filter delete %s %s\n\n", header, value))
}

// buildMyevents encodes "myevents [<uuid>] [<format>]".
func buildMyevents(uuid string, format EventFormat) []byte {
	if uuid == "" {
		return []byte("myevents " + format.String() + "\n\n")
	}
	return []byte(fmt.Sprintf("myevents %s %s\n\n", uuid, format))
}

// buildLinger encodes "linger [<secs>]". secs <= 0 omits the argument.
func buildLinger(secs int) []byte {
	if secs <= 0 {
		return []byte("linger\n\n")
	}
	return []byte(fmt.Sprintf("linger %d\n\n", secs))
}

// buildNolinger encodes "nolinger".
func buildNolinger() []byte {
	return []byte("nolinger\n\n")
}

// buildResume encodes "resume".
func buildResume() []byte {
	return []byte("resume\n\n")
}

// buildDivertEvents encodes "divert_events on|off".
func buildDivertEvents(on bool) []byte {
	if on {
		return []byte("divert_events on\n\n")
	}
	return []byte("divert_events off\n\n")
}

// buildLog encodes "log <level>".
func buildLog(level string) []byte {
	return []byte("log " + level + "\n\n")
}

// buildNolog encodes "nolog".
func buildNolog() []byte {
	return []byte("nolog\n\n")
}

// buildGetvar encodes "getvar <name>" (outbound sessions only).
func buildGetvar(name string) []byte {
	return []byte("getvar " + name + "\n\n")
}

// buildConnect encodes "connect" (outbound sessions only; must be the
// first command sent).
func buildConnect() []byte {
	return []byte("connect\n\n")
}

// buildSendevent encodes "sendevent <name>\n<headers>\n\n<body>".
func buildSendevent(name string, headers []Header, body []byte) []byte {
	var b strings.Builder
	b.WriteString("sendevent ")
	b.WriteString(name)
	b.WriteByte('\n')
	for _, h := range headers {
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(percentEncode(h.Value))
		b.WriteByte('\n')
	}
	if len(body) > 0 {
		fmt.Fprintf(&b, "Content-Length: %d\n", len(body))
	}
	b.WriteByte('\n')
	b.Write(body)
	return []byte(b.String())
}

// buildSendmsg encodes "sendmsg [<uuid>]\ncall-command: execute\n
// execute-app-name: X\nexecute-app-arg: Y\n\n" and its general form with
// arbitrary headers, used both by Execute and raw Sendmsg.
func buildSendmsg(uuid string, headers []Header, body []byte) []byte {
	var b strings.Builder
	b.WriteString("sendmsg")
	if uuid != "" {
		b.WriteByte(' ')
		b.WriteString(uuid)
	}
	b.WriteByte('\n')
	for _, h := range headers {
		b.WriteString(h.Name)
		b.WriteString(": ")
		b.WriteString(h.Value)
		b.WriteByte('\n')
	}
	if len(body) > 0 {
		fmt.Fprintf(&b, "Content-Length: %d\n", len(body))
	}
	b.WriteByte('\n')
	b.Write(body)
	return []byte(b.String())
}

// buildExecute encodes the sendmsg form of application execution.
func buildExecute(uuid, app, args string) []byte {
	headers := []Header{
		{Name: "call-command", Value: "execute"},
		{Name: "execute-app-name", Value: app},
	}
	if args != "" {
		headers = append(headers, Header{Name: "execute-app-arg", Value: args})
	}
	return buildSendmsg(uuid, headers, nil)
}

// buildExit encodes "exit".
func buildExit() []byte {
	return []byte("exit\n\n")
}
