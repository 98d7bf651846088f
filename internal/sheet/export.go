package sheet

import (
	"regexp"
	"strings"
)

var filenameDisallowed = regexp.MustCompile(`[^a-zA-Z0-9 _-]+`)

// SanitizeFilename strips everything except letters, digits, spaces,
// hyphens, and underscores, trims surrounding whitespace, and falls back
// to "character" when nothing remains.
func SanitizeFilename(name string) string {
	sanitized := strings.TrimSpace(filenameDisallowed.ReplaceAllString(name, ""))
	if sanitized == "" {
		return "character"
	}
	return sanitized
}

// ExportFilename builds the download filename for an exported sheet:
// "<SystemName> - <sanitized character name>.char.json".
func ExportFilename(system, characterName string) string {
	return system + " - " + SanitizeFilename(characterName) + ".char.json"
}
