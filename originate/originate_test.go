package originate

import "testing"

// TestOriginateSofiaGatewayRoundTrip mirrors spec §8 scenario S6: a
// gateway endpoint with no variables and a single XML-form application
// renders to, and parses back from, the documented wire form.
func TestOriginateSofiaGatewayRoundTrip(t *testing.T) {
	o := &Originate{
		Endpoint: Endpoint{
			Kind:    EndpointSofiaGateway,
			Gateway: "gw1",
			URI:     "18005551212",
		},
		Applications: ApplicationList{{Name: "conference", Args: "room1", XMLForm: true}},
		Dialplan:     "inline",
	}

	got := o.String()
	want := "originate {}sofia/gateway/gw1/18005551212 &conference(room1) inline"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}

	parsed, err := ParseOriginate(got)
	if err != nil {
		t.Fatalf("ParseOriginate: %v", err)
	}
	if !parsed.Equal(o) {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, o)
	}
}

func TestOriginateWithVariablesAndTrailingFields(t *testing.T) {
	o := &Originate{
		Endpoint: Endpoint{
			Kind: EndpointGeneric,
			URI:  "user/1000",
			Vars: &Variables{
				Default:    []KV{{Key: "origination_caller_id_name", Value: "Front Desk"}},
				Enterprise: []KV{{Key: "leg_timeout", Value: "30"}},
			},
		},
		Applications:   ApplicationList{{Name: "bridge", Args: "sofia/gateway/gw1/1001"}},
		Dialplan:       "XML",
		Context:        "default",
		CallerIDName:   "Alice",
		CallerIDNumber: "1000",
		Timeout:        45,
	}

	got := o.String()
	parsed, err := ParseOriginate(got)
	if err != nil {
		t.Fatalf("ParseOriginate(%q): %v", got, err)
	}
	if !parsed.Equal(o) {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, o)
	}
}

func TestOriginateMissingEndpointIsError(t *testing.T) {
	if _, err := ParseOriginate("originate"); err == nil {
		t.Fatalf("expected error for malformed originate command")
	}
}
