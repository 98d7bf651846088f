package sheet

import (
	"errors"
	"testing"

	platformerrors "github.com/louisbranch/tabletop/internal/platform/errors"
)

// TestValidateImportDataRejectsNil ensures nil payloads fail with the
// generic format message.
func TestValidateImportDataRejectsNil(t *testing.T) {
	err := ValidateImportData(nil)
	if err == nil || err.Error() != "Invalid data format" {
		t.Fatalf("expected \"Invalid data format\", got %v", err)
	}
}

// TestValidateImportDataRejectsArray ensures arrays get a distinguishable
// message.
func TestValidateImportDataRejectsArray(t *testing.T) {
	err := ValidateImportData([]any{1, 2, 3})
	if err == nil || err.Error() != "Expected object, got array" {
		t.Fatalf("expected \"Expected object, got array\", got %v", err)
	}
	var domainErr *platformerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code != platformerrors.CodeSheetImportArray {
		t.Fatalf("expected array import code, got %v", err)
	}
}

// TestValidateImportDataRejectsScalars ensures non-object payloads fail.
func TestValidateImportDataRejectsScalars(t *testing.T) {
	for _, doc := range []any{"text", 42.0, true} {
		err := ValidateImportData(doc)
		if err == nil || err.Error() != "Invalid data format" {
			t.Fatalf("expected rejection for %T, got %v", doc, err)
		}
	}
}

// TestValidateImportDataNamesFirstMissingField ensures the error names the
// first required field that is absent.
func TestValidateImportDataNamesFirstMissingField(t *testing.T) {
	err := ValidateImportData(map[string]any{"name": "x"}, "name", "version")
	if err == nil || err.Error() != "Missing required field: version" {
		t.Fatalf("expected \"Missing required field: version\", got %v", err)
	}
}

// TestValidateImportDataAcceptsPartialDocuments ensures validation stays
// permissive beyond the required-field list.
func TestValidateImportDataAcceptsPartialDocuments(t *testing.T) {
	if err := ValidateImportData(map[string]any{"name": "x"}, "name"); err != nil {
		t.Fatalf("expected partial document to pass, got %v", err)
	}
	if err := ValidateImportData(map[string]any{"unrelated": 1}); err != nil {
		t.Fatalf("expected document with no required list to pass, got %v", err)
	}
}

// TestParseImportRejectsMalformedJSON ensures undecodable payloads abort
// without partial application.
func TestParseImportRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseImport([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	doc, err := ParseImport([]byte(`{"name":"x"}`), "name")
	if err != nil {
		t.Fatalf("ParseImport returned error: %v", err)
	}
	if doc["name"] != "x" {
		t.Fatalf("expected decoded document, got %v", doc)
	}
}

// TestDetectFormat ensures the importer picks the right conversion path.
func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		doc  map[string]any
		want Format
	}{
		{"fate single kind", map[string]any{"kind": "fate-single"}, FormatFateSingle},
		{"fate group kind", map[string]any{"kind": "fate-group"}, FormatFateGroup},
		{"blades kind", map[string]any{"kind": "blades-character"}, FormatBlades},
		{"legacy tracker", map[string]any{"characters": []any{}}, FormatFateGroup},
		{"legacy blades", map[string]any{"actions": map[string]any{}}, FormatBlades},
		{"legacy single", map[string]any{"highConcept": "Wizard"}, FormatFateSingle},
		{"unknown", map[string]any{"foo": 1}, FormatUnknown},
	}
	for _, tc := range tests {
		if got := DetectFormat(tc.doc); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
