package domain

import "testing"

func TestDownloadFilename(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"plain", "homepage", "homepage.js"},
		{"spaces collapse", "My  Winter   Popunder", "My_Winter_Popunder.js"},
		{"surrounding space trimmed", "  padded  ", "padded.js"},
		{"tabs and newlines", "a\tb\nc", "a_b_c.js"},
		{"empty falls back", "", "script.js"},
		{"only whitespace falls back", "   ", "script.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GeneratedScript{Name: tt.script}
			if got := s.DownloadFilename(); got != tt.want {
				t.Fatalf("DownloadFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}
