package main

import "testing"

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "too_short", raw: "ox", wantErr: true},
		{name: "exactly_min", raw: "fox", want: "fox"},
		{name: "upcased", raw: "FOX", want: "fox"},
		{name: "padded", raw: "  fox  ", want: "fox"},
		{name: "empty", raw: "", wantErr: true},
		{name: "whitespace_only", raw: "   ", wantErr: true},
		{name: "short_after_trim", raw: " ox ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validateWord(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("validateWord(%q) = %q, want error", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("validateWord(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("validateWord(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeRoomCode(t *testing.T) {
	if got := normalizeRoomCode(" abcd "); got != "ABCD" {
		t.Fatalf("normalizeRoomCode = %q, want %q", got, "ABCD")
	}
	if got := normalizeRoomCode("   "); got != "" {
		t.Fatalf("normalizeRoomCode = %q, want empty", got)
	}
}

func TestNearestFound(t *testing.T) {
	found := []foundWord{{word: "fox", points: 5}, {word: "boat", points: 2}}

	if near, ok := nearestFound("fix", found); !ok || near != "fox" {
		t.Fatalf("nearestFound(fix) = (%q,%v), want (fox,true)", near, ok)
	}
	// An exact match is the "Already used" case, not a typo hint.
	if _, ok := nearestFound("fox", found); ok {
		t.Fatal("nearestFound should skip exact matches")
	}
	if _, ok := nearestFound("zebra", found); ok {
		t.Fatal("nearestFound matched a distant word")
	}
}
