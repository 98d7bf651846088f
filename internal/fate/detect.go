package fate

// Format sniffing for imported files. Documents exported by this code
// carry an explicit kind discriminator; legacy files are identified by the
// keys they happen to have, which is inherently ambiguous for sparse
// documents, so the discriminator always wins when present.

// IsSingleFormat reports whether a decoded JSON object looks like a
// single-sheet document.
func IsSingleFormat(doc map[string]any) bool {
	if kind, ok := doc["kind"].(string); ok {
		return kind == KindSingle
	}
	if _, ok := doc["highConcept"]; ok {
		return true
	}
	if _, ok := doc["trouble"]; ok {
		return true
	}
	_, hasSkills := doc["skills"]
	_, hasCharacters := doc["characters"]
	return hasSkills && !hasCharacters
}

// IsGroupFormat reports whether a decoded JSON object looks like a
// group-tracker document.
func IsGroupFormat(doc map[string]any) bool {
	if kind, ok := doc["kind"].(string); ok {
		return kind == KindGroup
	}
	_, hasCharacters := doc["characters"]
	return hasCharacters
}
