package textutil

import "testing"

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "great video", "great video"},
		{"strips urls", "see https://example.com/watch?v=abc here", "see here"},
		{"strips markup", "so <b>good</b>", "so good"},
		{"collapses whitespace", "a  b\n\nc\t d", "a b c d"},
		{"folds fullwidth ascii", "ＧＯＯＤ！", "GOOD!"},
		{"folds halfwidth katakana", "ｽｺﾞｲ", "スゴイ"},
		{"url only becomes empty", "https://example.com", ""},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.in); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "abc", 10, "abc"},
		{"exact length", "abc", 3, "abc"},
		{"cuts ascii", "abcdef", 3, "abc"},
		{"cuts multibyte on rune boundary", "こんにちは", 2, "こん"},
		{"zero max", "abc", 0, ""},
		{"negative max", "abc", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
