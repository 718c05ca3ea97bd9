package originate

import (
	"reflect"
	"testing"
)

func TestEslArrayRoundTrip(t *testing.T) {
	a := EslArray{Items: []string{"a", "b", "c"}}
	got := a.String()
	if got != "ARRAY::a|:b|:c" {
		t.Fatalf("String() = %q", got)
	}
	parsed, err := ParseEslArray(got)
	if err != nil {
		t.Fatalf("ParseEslArray: %v", err)
	}
	if !reflect.DeepEqual(parsed, a) {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, a)
	}
}

func TestEslArrayEmpty(t *testing.T) {
	parsed, err := ParseEslArray("ARRAY::")
	if err != nil {
		t.Fatalf("ParseEslArray: %v", err)
	}
	if len(parsed.Items) != 0 {
		t.Fatalf("expected no items, got %v", parsed.Items)
	}
}

func TestEslArrayRejectsNonArrayValue(t *testing.T) {
	if _, err := ParseEslArray("plainvalue"); err == nil {
		t.Fatalf("expected error for non-ARRAY:: value")
	}
}

func TestMultipartBodyRoundTrip(t *testing.T) {
	m := MultipartBody{Parts: []MultipartPart{
		{MimeType: "text/plain", Body: "hello"},
		{MimeType: "text/html", Body: "<b>hi</b>"},
	}}
	got := m.String()
	want := "ARRAY::text/plain:hello|:text/html:<b>hi</b>"
	if got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	parsed, err := ParseMultipartBody(got)
	if err != nil {
		t.Fatalf("ParseMultipartBody: %v", err)
	}
	if !reflect.DeepEqual(parsed, m) {
		t.Fatalf("round-trip mismatch: got %+v, want %+v", parsed, m)
	}
}

func TestMultipartBodyByMimeType(t *testing.T) {
	m := MultipartBody{Parts: []MultipartPart{
		{MimeType: "text/plain", Body: "hello"},
		{MimeType: "text/html", Body: "<b>hi</b>"},
	}}
	body, ok := m.ByMimeType("text/html")
	if !ok || body != "<b>hi</b>" {
		t.Fatalf("ByMimeType(text/html) = %q, %v", body, ok)
	}
	if _, ok := m.ByMimeType("missing"); ok {
		t.Fatalf("expected no match for missing mime type")
	}
}
