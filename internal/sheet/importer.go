// Package sheet implements the import/export plumbing shared by the
// character sheets: payload validation, format detection, filename
// sanitization, row reconciliation, and PDF rendering.
package sheet

import (
	"encoding/json"
	"fmt"

	"github.com/louisbranch/tabletop/internal/blades"
	"github.com/louisbranch/tabletop/internal/fate"
	"github.com/louisbranch/tabletop/internal/platform/errors"
)

// ValidateImportData checks an imported payload before any of it is
// merged into app state. Non-objects are rejected outright, arrays with a
// distinguishable message, and documents missing a required field name the
// first one missing. The check is intentionally permissive beyond that so
// older or partial documents still import.
//
// Error messages here are user-visible and surface verbatim.
func ValidateImportData(doc any, required ...string) error {
	if doc == nil {
		return errors.New(errors.CodeSheetImportInvalid, "Invalid data format")
	}

	switch doc.(type) {
	case []any:
		return errors.New(errors.CodeSheetImportArray, "Expected object, got array")
	case map[string]any:
	default:
		return errors.New(errors.CodeSheetImportInvalid, "Invalid data format")
	}

	object := doc.(map[string]any)
	for _, field := range required {
		if _, ok := object[field]; !ok {
			return errors.WithMetadata(
				errors.CodeSheetImportMissingField,
				fmt.Sprintf("Missing required field: %s", field),
				map[string]string{"field": field},
			)
		}
	}
	return nil
}

// Format identifies which schema an imported document uses.
type Format string

const (
	FormatUnknown    Format = ""
	FormatFateSingle Format = "fate-single"
	FormatFateGroup  Format = "fate-group"
	FormatBlades     Format = "blades"
)

// DetectFormat sniffs an imported document's schema so the importer can
// pick a conversion path before merging.
func DetectFormat(doc map[string]any) Format {
	if kind, ok := doc["kind"].(string); ok {
		switch kind {
		case fate.KindSingle:
			return FormatFateSingle
		case fate.KindGroup:
			return FormatFateGroup
		case blades.KindCharacter:
			return FormatBlades
		}
	}
	if fate.IsGroupFormat(doc) {
		return FormatFateGroup
	}
	if _, ok := doc["actions"]; ok {
		return FormatBlades
	}
	if fate.IsSingleFormat(doc) {
		return FormatFateSingle
	}
	return FormatUnknown
}

// ParseImport decodes and validates an imported file in one step.
func ParseImport(data []byte, required ...string) (map[string]any, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.CodeSheetImportInvalid, "Invalid data format", err)
	}
	if err := ValidateImportData(doc, required...); err != nil {
		return nil, err
	}
	return doc.(map[string]any), nil
}
