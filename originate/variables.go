package originate

import "strings"

// KV is a single channel-variable assignment. Order matters: KV slices
// are rendered and parsed in insertion order, never sorted.
type KV struct {
	Key   string
	Value string
}

// Variables holds the three bracket-scoped variable bags an Originate
// (or an endpoint within one) can carry: Default applies to the whole
// origination, Enterprise to the outer endpoint group, Channel to the
// next endpoint only (spec §3, §4.7).
type Variables struct {
	Default    []KV
	Enterprise []KV
	Channel    []KV
}

// String renders the scope brackets in wire order: "{default}" is
// always emitted (even empty) since the default scope marks where an
// endpoint's variable prefix begins; "<enterprise>" and "[channel]" are
// omitted when empty.
func (v *Variables) String() string {
	var b strings.Builder
	b.WriteByte('{')
	writeKVs(&b, defaultKVs(v))
	b.WriteByte('}')
	if v != nil && len(v.Enterprise) > 0 {
		b.WriteByte('<')
		writeKVs(&b, v.Enterprise)
		b.WriteByte('>')
	}
	if v != nil && len(v.Channel) > 0 {
		b.WriteByte('[')
		writeKVs(&b, v.Channel)
		b.WriteByte(']')
	}
	return b.String()
}

func defaultKVs(v *Variables) []KV {
	if v == nil {
		return nil
	}
	return v.Default
}

func writeKVs(b *strings.Builder, kvs []KV) {
	for i, kv := range kvs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(kv.Key)
		if kv.Value != "" {
			b.WriteByte('=')
			b.WriteString(Escape(kv.Value))
		}
	}
}

// ParseVariables consumes a leading "{default}[<enterprise>][[channel]]"
// prefix from s, returning the parsed Variables and whatever remains.
func ParseVariables(s string) (*Variables, string, error) {
	content, rest, ok := splitBracket(s, '{', '}')
	if !ok {
		return nil, s, errMalformed("missing {} default variable scope")
	}
	v := &Variables{Default: parseKVs(content)}

	if content2, rest2, ok2 := splitBracket(rest, '<', '>'); ok2 {
		v.Enterprise = parseKVs(content2)
		rest = rest2
	}
	if content3, rest3, ok3 := splitBracket(rest, '[', ']'); ok3 {
		v.Channel = parseKVs(content3)
		rest = rest3
	}
	return v, rest, nil
}

func parseKVs(content string) []KV {
	if content == "" {
		return nil
	}
	var kvs []KV
	for _, tok := range Split(content, ',') {
		if tok == "" {
			continue
		}
		if idx := strings.Index(tok, "="); idx >= 0 {
			kvs = append(kvs, KV{Key: tok[:idx], Value: tok[idx+1:]})
		} else {
			kvs = append(kvs, KV{Key: tok})
		}
	}
	return kvs
}

// Equal reports whether v and other carry the same variables in the
// same order across all three scopes. A nil Variables is equal to an
// empty one.
func (v *Variables) Equal(other *Variables) bool {
	return kvsEqual(defaultKVs(v), defaultKVs(other)) &&
		kvsEqual(enterpriseKVs(v), enterpriseKVs(other)) &&
		kvsEqual(channelKVs(v), channelKVs(other))
}

func enterpriseKVs(v *Variables) []KV {
	if v == nil {
		return nil
	}
	return v.Enterprise
}

func channelKVs(v *Variables) []KV {
	if v == nil {
		return nil
	}
	return v.Channel
}

func kvsEqual(a, b []KV) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
