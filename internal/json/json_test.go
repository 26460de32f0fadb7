package json

import "testing"

type document struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags,omitempty"`
}

func TestRoundTrip(t *testing.T) {
	in := document{Pattern: `(?:foo|bar)+\d`, Flags: "gi"}

	data, err := Marshal(in)
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	var out document
	if err := Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}

	if out != in {
		t.Fatalf("round trip = %+v, want %+v", out, in)
	}
}

func TestOmitEmpty(t *testing.T) {
	data, err := Marshal(document{Pattern: "a"})
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	const want = `{"pattern":"a"}`
	if string(data) != want {
		t.Fatalf("marshal = %q, want %q", string(data), want)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	var out document
	if err := Unmarshal([]byte(`{"pattern":`), &out); err == nil {
		t.Fatalf("expected error for truncated payload")
	}
}
