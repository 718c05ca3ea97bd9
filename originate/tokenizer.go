// Package originate builds and parses the string forms of the
// "originate" command and its relatives: scoped channel variables,
// endpoint syntax, application chains, and the small family of uuid_*
// and conference_* dialplan helpers. It has no dependency on the
// transport package — every type here is a plain string producer or
// parser, usable for testing or logging without a live connection.
package originate

import "strings"

// Split is a quote-aware tokenizer: it splits s on delim except inside
// single-quoted regions, honours backslash escapes (\\ and \', or any
// \X, which yields the literal X), and strips the surrounding quotes
// from a quoted token. It undoes Escape for values without a backslash
// (see Escape).
func Split(s string, delim byte) []string {
	var tokens []string
	var cur strings.Builder
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			cur.WriteByte(s[i+1])
			i++
		case c == '\'':
			inQuote = !inQuote
		case c == delim && !inQuote:
			tokens = append(tokens, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	tokens = append(tokens, cur.String())
	return tokens
}

// Escape encodes a channel-variable value per the originate quoting
// rule: a literal "'" becomes "\'", a literal "," becomes "\,", and the
// whole value is wrapped in single quotes if it contains whitespace.
// Split(Escape(v), ',') recovers v when v contains no backslash; a
// backslash is left unescaped, so Split treats it as an escape and
// drops it.
func Escape(v string) string {
	v = strings.ReplaceAll(v, "'", "\\'")
	v = strings.ReplaceAll(v, ",", "\\,")
	if strings.ContainsAny(v, " \t\n\r") {
		v = "'" + v + "'"
	}
	return v
}

// splitBracket splits s at the matching close for an open bracket at
// s[0], honouring the same quote/escape rules as Split so a bracket
// character inside a quoted value is not mistaken for the close.
// Reports ok=false if s does not start with open or no matching close
// is found.
func splitBracket(s string, open, close byte) (content, rest string, ok bool) {
	if len(s) == 0 || s[0] != open {
		return "", s, false
	}
	inQuote := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			i++
		case c == '\'':
			inQuote = !inQuote
		case c == close && !inQuote:
			return s[1:i], s[i+1:], true
		}
	}
	return "", s, false
}
