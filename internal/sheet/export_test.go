package sheet

import "testing"

// TestSanitizeFilename ensures disallowed characters are stripped and the
// fallback applies when nothing remains.
func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Test/File:Name", "TestFileName"},
		{"   ", "character"},
		{"", "character"},
		{"Hero🦸Name", "HeroName"},
		{"Nails O'Reilly", "Nails OReilly"},
		{"under_score-dash 9", "under_score-dash 9"},
		{"  padded  ", "padded"},
		{"///:::", "character"},
	}
	for _, tc := range tests {
		if got := SanitizeFilename(tc.input); got != tc.want {
			t.Fatalf("SanitizeFilename(%q): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

// TestExportFilename ensures the download naming convention.
func TestExportFilename(t *testing.T) {
	got := ExportFilename("FATE", "Zird the Arcane")
	if got != "FATE - Zird the Arcane.char.json" {
		t.Fatalf("unexpected filename %q", got)
	}
	got = ExportFilename("Blades", "///")
	if got != "Blades - character.char.json" {
		t.Fatalf("unexpected fallback filename %q", got)
	}
}
