package originate

import "strings"

// EndpointKind distinguishes the three endpoint forms an Originate can
// dial (spec §3, §4.7).
type EndpointKind int

const (
	EndpointGeneric EndpointKind = iota
	EndpointLoopback
	EndpointSofiaGateway
)

// Endpoint is the tagged union of dialable endpoint forms. Fields
// outside the active Kind's are ignored by String and left zero by
// Parse.
type Endpoint struct {
	Kind EndpointKind
	Vars *Variables

	// Generic, Loopback
	URI string

	// Loopback only
	Context string

	// SofiaGateway only
	Gateway string
	Profile string
}

// String renders the endpoint in its wire form: "{vars}uri" for
// Generic, "{vars}loopback/uri[/context]" for Loopback, and
// "{vars}sofia/gateway/<gateway>/<uri>" for SofiaGateway (with Profile,
// when set, injected as "sofia/<profile>/gateway/<gateway>/<uri>").
func (e Endpoint) String() string {
	var b strings.Builder
	b.WriteString(e.Vars.String())
	switch e.Kind {
	case EndpointLoopback:
		b.WriteString("loopback/")
		b.WriteString(e.URI)
		if e.Context != "" {
			b.WriteByte('/')
			b.WriteString(e.Context)
		}
	case EndpointSofiaGateway:
		b.WriteString("sofia/")
		if e.Profile != "" {
			b.WriteString(e.Profile)
			b.WriteByte('/')
		}
		b.WriteString("gateway/")
		b.WriteString(e.Gateway)
		b.WriteByte('/')
		b.WriteString(e.URI)
	default:
		b.WriteString(e.URI)
	}
	return b.String()
}

// ParseEndpoint parses one "{vars}<...>[<enterprise>][channel]rest"
// endpoint token as produced by String.
func ParseEndpoint(s string) (Endpoint, error) {
	vars, rest, err := ParseVariables(s)
	if err != nil {
		return Endpoint{}, err
	}

	switch {
	case strings.HasPrefix(rest, "loopback/"):
		after := rest[len("loopback/"):]
		parts := strings.SplitN(after, "/", 2)
		e := Endpoint{Kind: EndpointLoopback, Vars: vars, URI: parts[0]}
		if len(parts) > 1 {
			e.Context = parts[1]
		}
		return e, nil

	case strings.HasPrefix(rest, "sofia/gateway/"):
		after := rest[len("sofia/gateway/"):]
		parts := strings.SplitN(after, "/", 2)
		if len(parts) != 2 {
			return Endpoint{}, errMalformed("sofia gateway endpoint missing uri: %q", rest)
		}
		return Endpoint{Kind: EndpointSofiaGateway, Vars: vars, Gateway: parts[0], URI: parts[1]}, nil

	case strings.HasPrefix(rest, "sofia/"):
		after := rest[len("sofia/"):]
		parts := strings.SplitN(after, "/", 4)
		if len(parts) != 4 || parts[1] != "gateway" {
			return Endpoint{}, errMalformed("sofia gateway endpoint with profile malformed: %q", rest)
		}
		return Endpoint{Kind: EndpointSofiaGateway, Vars: vars, Profile: parts[0], Gateway: parts[2], URI: parts[3]}, nil

	default:
		return Endpoint{Kind: EndpointGeneric, Vars: vars, URI: rest}, nil
	}
}

// Equal reports whether e and other are the same endpoint, including
// their variable scopes.
func (e Endpoint) Equal(other Endpoint) bool {
	return e.Kind == other.Kind &&
		e.URI == other.URI &&
		e.Context == other.Context &&
		e.Gateway == other.Gateway &&
		e.Profile == other.Profile &&
		e.Vars.Equal(other.Vars)
}
