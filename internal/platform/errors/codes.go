// Package errors provides structured error handling with machine codes.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Dice errors
	CodeDiceInvalidFaces Code = "DICE_INVALID_FACES"
	CodeDiceInvalidCount Code = "DICE_INVALID_COUNT"

	// Blades errors
	CodeBladesEmptyPool       Code = "BLADES_EMPTY_POOL"
	CodeBladesInvalidDie      Code = "BLADES_INVALID_DIE"
	CodeBladesInvalidPosition Code = "BLADES_INVALID_POSITION"
	CodeBladesBonusUsed       Code = "BLADES_BONUS_ALREADY_USED"
	CodeBladesUnknownBonus    Code = "BLADES_UNKNOWN_BONUS"

	// FATE errors
	CodeFateInvalidVariant Code = "FATE_INVALID_VARIANT"

	// Track errors
	CodeTrackInvalidCapacity Code = "TRACK_INVALID_CAPACITY"
	CodeTrackIndexOutOfRange Code = "TRACK_INDEX_OUT_OF_RANGE"

	// Sheet import/export errors
	CodeSheetImportInvalid      Code = "SHEET_IMPORT_INVALID"
	CodeSheetImportArray        Code = "SHEET_IMPORT_ARRAY"
	CodeSheetImportMissingField Code = "SHEET_IMPORT_MISSING_FIELD"
	CodeSheetUnknownFormat      Code = "SHEET_UNKNOWN_FORMAT"

	// Storage errors
	CodeNotFound             Code = "NOT_FOUND"
	CodeStorageQuotaExceeded Code = "STORAGE_QUOTA_EXCEEDED"
	CodeStorageFailure       Code = "STORAGE_FAILURE"

	// Name generator errors
	CodeNamegenNoMatches   Code = "NAMEGEN_NO_MATCHES"
	CodeNamegenInvalidRow  Code = "NAMEGEN_INVALID_ROW"
	CodeNamegenInvalidArgs Code = "NAMEGEN_INVALID_ARGS"
)

// HTTPStatus maps the code to the HTTP status the JSON API responds with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeSheetImportInvalid, CodeSheetImportArray, CodeSheetImportMissingField, CodeSheetUnknownFormat:
		return http.StatusUnprocessableEntity
	case CodeStorageQuotaExceeded:
		return http.StatusInsufficientStorage
	case CodeStorageFailure, CodeUnknown:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
