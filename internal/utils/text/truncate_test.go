package text

import "testing"

func TestCountRunes(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"привет", 6},
		{"hello мир", 9},
	}
	for _, tt := range tests {
		if got := CountRunes(tt.text); got != tt.want {
			t.Errorf("CountRunes(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"under limit", "short", 10, "short"},
		{"at limit", "exact", 5, "exact"},
		{"over limit", "longer text", 6, "longer…"},
		{"cyrillic over limit", "привет мир", 6, "привет…"},
		{"zero limit", "anything", 0, ""},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.limit); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.text, tt.limit, got, tt.want)
			}
		})
	}
}
