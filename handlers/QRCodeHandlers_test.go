package handlers

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"short stays", "Quote", 30, "Quote"},
		{"exact stays", "abcdef", 6, "abcdef"},
		{"long ascii", "abcdefghij", 8, "abcde..."},
		{"long cyrillic", "Натяжной потолок в зале", 10, "Натяжно..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateLabel(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("truncateLabel(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateLabel(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}
