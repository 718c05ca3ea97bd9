package originate

import "testing"

func TestConferenceDtmfRoundTrip(t *testing.T) {
	c := ConferenceDtmf{Conference: "room1", Member: "3", Digits: "1234"}
	got := c.String()
	if got != "conference room1 dtmf 3 1234" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseConferenceDtmf(got)
	if err != nil {
		t.Fatalf("ParseConferenceDtmf: %v", err)
	}
	if parsed != c {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, c)
	}
}

func TestConferenceDtmfMalformed(t *testing.T) {
	if _, err := ParseConferenceDtmf("conference room1 mute 3"); err == nil {
		t.Fatalf("expected error for non-dtmf conference command")
	}
}

func TestConferenceMuteUnmuteHoldUnhold(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{ConferenceMute("room1", "3"), "conference room1 mute 3"},
		{ConferenceUnmute("room1", "3"), "conference room1 unmute 3"},
		{ConferenceHold("room1", "3"), "conference room1 hold 3"},
		{ConferenceUnhold("room1", "3"), "conference room1 unhold 3"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("got %q, want %q", tt.got, tt.want)
		}
	}
}
