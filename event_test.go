package fsesl

import "testing"

func TestEventHeaderAccessors(t *testing.T) {
	e := NewEvent()
	e.AddHeader("Event-Name", "CHANNEL_ANSWER")
	e.AddHeader("Unique-ID", "abcd-1234")
	e.AddHeader("Job-UUID", "job-9")
	e.AddHeader("Channel-State", "CS_EXECUTE")
	e.AddHeader("Hangup-Cause", "NORMAL_CLEARING")
	e.SetBody([]byte("hello"))

	if e.EventName() != "CHANNEL_ANSWER" {
		t.Errorf("EventName() = %q", e.EventName())
	}
	if e.UniqueID() != "abcd-1234" {
		t.Errorf("UniqueID() = %q", e.UniqueID())
	}
	if e.JobUUID() != "job-9" {
		t.Errorf("JobUUID() = %q", e.JobUUID())
	}
	if e.ChannelState() != "CS_EXECUTE" {
		t.Errorf("ChannelState() = %q", e.ChannelState())
	}
	if e.HangupCause() != "NORMAL_CLEARING" {
		t.Errorf("HangupCause() = %q", e.HangupCause())
	}
	if string(e.Body()) != "hello" {
		t.Errorf("Body() = %q", e.Body())
	}
}

func TestEventMultiValuedHeaders(t *testing.T) {
	e := NewEvent()
	e.AddHeader("Variable-foo", "1")
	e.AddHeader("Variable-foo", "2")

	v, ok := e.Header("Variable-foo")
	if !ok || v != "1" {
		t.Errorf("Header() = %q, %v, want 1, true", v, ok)
	}
	all := e.Headers("Variable-foo")
	if len(all) != 2 || all[0] != "1" || all[1] != "2" {
		t.Errorf("Headers() = %v, want [1 2]", all)
	}
}

func TestEventKindResolution(t *testing.T) {
	e := NewEvent()
	e.AddHeader("Event-Name", "CUSTOM")
	e.AddHeader("Event-Subclass", "sofia::register")
	k, ok := e.Kind()
	if !ok {
		t.Fatal("expected ok")
	}
	if !k.IsCustom() || k.Subclass() != "sofia::register" {
		t.Errorf("Kind() = %+v, want custom sofia::register", k)
	}
}

func TestEventKindMissingName(t *testing.T) {
	e := NewEvent()
	if _, ok := e.Kind(); ok {
		t.Fatal("expected no kind without Event-Name")
	}
}

func TestEventEqual(t *testing.T) {
	a := NewEvent()
	a.AddHeader("Event-Name", "HEARTBEAT")
	a.SetBody([]byte("x"))

	b := NewEvent()
	b.AddHeader("Event-Name", "HEARTBEAT")
	b.SetBody([]byte("x"))

	if !a.Equal(b) {
		t.Fatal("expected equal events")
	}

	c := NewEvent()
	c.AddHeader("Event-Name", "HEARTBEAT")
	if a.Equal(c) {
		t.Fatal("expected unequal events (body differs)")
	}
}

func TestEventPlainRoundTrip(t *testing.T) {
	e := NewEvent()
	e.AddHeader("Event-Name", "CHANNEL_ANSWER")
	e.AddHeader("Unique-ID", "abcd-1234")
	e.AddHeader("Caller-Caller-ID-Number", "1001, x")
	e.SetBody([]byte("hello"))

	plain := e.ToPlain()
	got, err := parseEventPlain(plain)
	if err != nil {
		t.Fatalf("parseEventPlain: %v", err)
	}
	if !e.Equal(got) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, e)
	}
}

func TestEventJSONRoundTrip(t *testing.T) {
	e := NewEvent()
	e.AddHeader("Event-Name", "HEARTBEAT")
	e.AddHeader("Event-Info", "System Ready")
	e.SetBody([]byte("body text"))

	js, err := e.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	got, err := parseEventJSON(js)
	if err != nil {
		t.Fatalf("parseEventJSON: %v", err)
	}
	if got.EventName() != "HEARTBEAT" {
		t.Errorf("EventName() = %q", got.EventName())
	}
	if string(got.Body()) != "body text" {
		t.Errorf("Body() = %q", got.Body())
	}
}

func TestEventXMLRoundTrip(t *testing.T) {
	e := NewEvent()
	e.AddHeader("Event-Name", "HEARTBEAT")
	e.SetBody([]byte("xml body"))

	xmlBytes, err := e.ToXML()
	if err != nil {
		t.Fatalf("ToXML: %v", err)
	}
	got, err := parseEventXML(xmlBytes)
	if err != nil {
		t.Fatalf("parseEventXML: %v", err)
	}
	if got.EventName() != "HEARTBEAT" {
		t.Errorf("EventName() = %q", got.EventName())
	}
	if string(got.Body()) != "xml body" {
		t.Errorf("Body() = %q", got.Body())
	}
}
