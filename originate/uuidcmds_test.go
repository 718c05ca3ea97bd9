package originate

import "testing"

func TestUuidKillRoundTripWithCause(t *testing.T) {
	k := UuidKill{UUID: "abcd-1234", Cause: "CALL_REJECTED"}
	got := k.String()
	if got != "uuid_kill abcd-1234 CALL_REJECTED" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseUuidKill(got)
	if err != nil {
		t.Fatalf("ParseUuidKill: %v", err)
	}
	if parsed != k {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, k)
	}
}

func TestUuidKillRoundTripWithoutCause(t *testing.T) {
	k := UuidKill{UUID: "abcd-1234"}
	got := k.String()
	if got != "uuid_kill abcd-1234" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseUuidKill(got)
	if err != nil {
		t.Fatalf("ParseUuidKill: %v", err)
	}
	if parsed != k {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, k)
	}
}

func TestUuidKillMalformed(t *testing.T) {
	if _, err := ParseUuidKill("uuid_kill a b c"); err == nil {
		t.Fatalf("expected error for malformed uuid_kill command")
	}
}

func TestSimpleUuidCommands(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"answer", UuidAnswer("u1"), "uuid_answer u1"},
		{"bridge", UuidBridge("u1", "u2"), "uuid_bridge u1 u2"},
		{"deflect", UuidDeflect("u1", "sip:1000@example.com"), "uuid_deflect u1 sip:1000@example.com"},
		{"hold", UuidHold("u1", false), "uuid_hold u1"},
		{"hold off", UuidHold("u1", true), "uuid_hold off u1"},
		{"getvar", UuidGetVar("u1", "hangup_cause"), "uuid_getvar u1 hangup_cause"},
		{"setvar", UuidSetVar("u1", "hold_music", "local_stream"), "uuid_setvar u1 hold_music local_stream"},
		{"transfer bare", UuidTransfer("u1", "1000", "", ""), "uuid_transfer u1 1000"},
		{"transfer full", UuidTransfer("u1", "1000", "XML", "default"), "uuid_transfer u1 1000 XML default"},
		{"dtmf", UuidSendDtmf("u1", "1234"), "uuid_send_dtmf u1 1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
