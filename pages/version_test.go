package pages

import (
	"errors"
	"testing"

	"github.com/segmentio/encoding/json"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"5.1.4", Version{5, 1, 4}},
		{"4.2.11.final.0", Version{4, 2, 11}},
		{" 5.0 ", Version{5, 0, 0}},
		{"6", Version{6, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVersion(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseVersion_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "x.1.2", "5.-1.0", "5..1", "5.1.4rc1"} {
		if _, err := ParseVersion(in); !errors.Is(err, ErrInvalidVersion) {
			t.Errorf("ParseVersion(%q): expected ErrInvalidVersion, got %v", in, err)
		}
	}
}

func TestDefaultVersionParses(t *testing.T) {
	if _, err := ParseVersion(DefaultVersion); err != nil {
		t.Fatalf("DefaultVersion %q does not parse: %v", DefaultVersion, err)
	}
}

func TestVersion_StringJoinsWithDots(t *testing.T) {
	if got := (Version{5, 1, 4}).String(); got != "5.1.4" {
		t.Errorf("expected 5.1.4, got %q", got)
	}
}

func TestVersion_EncodesAsTriple(t *testing.T) {
	body, err := json.Marshal(Version{4, 2, 11})
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "[4,2,11]" {
		t.Errorf("expected [4,2,11], got %s", body)
	}
}
