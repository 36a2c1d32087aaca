package serializer

import (
	"strings"
	"testing"
	"time"
)

type payload struct {
	ID      int       `json:"id" msgpack:"id"`
	Name    string    `json:"name" msgpack:"name"`
	Created time.Time `json:"created" msgpack:"created"`
}

func TestRoundTrips(t *testing.T) {
	want := payload{ID: 42, Name: "fixture", Created: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	cases := map[string]Serializer[payload]{
		"json":    JSON[payload]{},
		"msgpack": Msgpack[payload]{},
		"cbor":    MustCBOR[payload](true),
	}
	for name, s := range cases {
		b, err := s.Encode(want)
		if err != nil {
			t.Fatalf("%s Encode: %v", name, err)
		}
		got, err := s.Decode(b)
		if err != nil {
			t.Fatalf("%s Decode: %v", name, err)
		}
		if got.ID != want.ID || got.Name != want.Name || !got.Created.Equal(want.Created) {
			t.Fatalf("%s round-trip: got %+v want %+v", name, got, want)
		}
	}
}

func TestLimitRejectsOversizedPayload(t *testing.T) {
	s := Limit[string]{Inner: String{}, MaxDecode: 8}

	small, err := s.Encode("tiny")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, err := s.Decode(small); err != nil || got != "tiny" {
		t.Fatalf("Decode small: %q %v", got, err)
	}

	big := []byte(strings.Repeat("x", 9))
	if _, err := s.Decode(big); err == nil {
		t.Fatalf("oversized payload accepted")
	}

	// Encode is never limited
	if _, err := s.Encode(strings.Repeat("y", 100)); err != nil {
		t.Fatalf("Encode limited: %v", err)
	}
}
