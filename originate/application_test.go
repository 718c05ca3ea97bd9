package originate

import "testing"

func TestApplicationInlineFormRoundTrip(t *testing.T) {
	a := Application{Name: "playback", Args: "/tmp/foo.wav"}
	got := a.String()
	if got != "playback:/tmp/foo.wav" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseApplication(got)
	if err != nil {
		t.Fatalf("ParseApplication: %v", err)
	}
	if parsed != a {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, a)
	}
}

func TestApplicationNoArgsRoundTrip(t *testing.T) {
	a := Application{Name: "park"}
	got := a.String()
	if got != "park" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseApplication(got)
	if err != nil {
		t.Fatalf("ParseApplication: %v", err)
	}
	if parsed != a {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, a)
	}
}

func TestApplicationXMLFormRoundTrip(t *testing.T) {
	a := Application{Name: "conference", Args: "room1", XMLForm: true}
	got := a.String()
	if got != "&conference(room1)" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseApplication(got)
	if err != nil {
		t.Fatalf("ParseApplication: %v", err)
	}
	if parsed != a {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, a)
	}
}

func TestApplicationXMLFormMalformed(t *testing.T) {
	if _, err := ParseApplication("&conference(room1"); err == nil {
		t.Fatalf("expected error for unclosed XML-form application")
	}
}

func TestApplicationListRoundTrip(t *testing.T) {
	list := ApplicationList{
		{Name: "answer"},
		{Name: "playback", Args: "/tmp/foo.wav"},
		{Name: "conference", Args: "room1", XMLForm: true},
	}
	got := list.String()
	want := "answer,playback:/tmp/foo.wav,&conference(room1)"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	parsed, err := ParseApplicationList(got)
	if err != nil {
		t.Fatalf("ParseApplicationList: %v", err)
	}
	if len(parsed) != len(list) {
		t.Fatalf("length mismatch: got %d, want %d", len(parsed), len(list))
	}
	for i := range list {
		if parsed[i] != list[i] {
			t.Fatalf("index %d mismatch: got %+v, want %+v", i, parsed[i], list[i])
		}
	}
}

func TestDialplanHelpers(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{Answer(), "answer"},
		{Hangup(""), "hangup"},
		{Hangup("USER_BUSY"), "hangup:USER_BUSY"},
		{Playback("/tmp/foo.wav"), "playback:/tmp/foo.wav"},
		{Bridge("sofia/gateway/gw1/1000"), "bridge:sofia/gateway/gw1/1000"},
		{Transfer("1000", "", ""), "transfer:1000"},
		{Transfer("1000", "XML", "default"), "transfer:1000 XML default"},
		{Park(), "park"},
		{Sleep(500), "sleep:500"},
		{Set("hold_music", "local_stream"), "set:hold_music=local_stream"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("got %q, want %q", tt.got, tt.want)
		}
	}
}
