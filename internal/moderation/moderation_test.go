package moderation_test

import (
	"testing"

	"newsroom/internal/moderation"
)

func TestFirstMatch(t *testing.T) {
	blocklist := []string{"редиска", "негодяй"}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "clean text",
			text: "Текст комментария",
			want: "",
		},
		{
			name: "forbidden word alone",
			text: "редиска",
			want: "редиска",
		},
		{
			name: "forbidden word inside sentence",
			text: "Какой-то текст, редиска, еще текст",
			want: "редиска",
		},
		{
			name: "forbidden word inside a longer word",
			text: "суперредисками заросло поле",
			want: "редиска",
		},
		{
			name: "second blocklist entry",
			text: "ах ты негодяй",
			want: "негодяй",
		},
		{
			name: "first blocklist entry wins when both present",
			text: "негодяй и редиска",
			want: "редиска",
		},
		{
			name: "matching is case-sensitive",
			text: "РЕДИСКА",
			want: "",
		},
		{
			name: "empty text",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := moderation.FirstMatch(tt.text, blocklist)
			if got != tt.want {
				t.Errorf("FirstMatch(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestAllowed(t *testing.T) {
	if !moderation.Allowed("Просто текст.", moderation.BadWords) {
		t.Error("Allowed() = false for clean text, want true")
	}
	if moderation.Allowed("Какой-то текст, "+moderation.BadWords[0]+", еще текст", moderation.BadWords) {
		t.Error("Allowed() = true for text with forbidden word, want false")
	}
}

func TestFirstMatchEmptyBlocklist(t *testing.T) {
	if got := moderation.FirstMatch("редиска", nil); got != "" {
		t.Errorf("FirstMatch with nil blocklist = %q, want empty", got)
	}
	if got := moderation.FirstMatch("редиска", []string{""}); got != "" {
		t.Errorf("FirstMatch with blank blocklist entry = %q, want empty", got)
	}
}
