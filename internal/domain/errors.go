package domain

import "errors"

var (
	// Extraction errors
	ErrExtractionFailure = errors.New("document text extraction failed")
	ErrNoLedgerLines     = errors.New("no trial-balance lines found in document")

	// Reference sheet errors
	ErrSheetUnavailable    = errors.New("staff reference sheet unavailable")
	ErrSheetSchemaMismatch = errors.New("staff reference sheet is missing expected columns")
	ErrStaffNotFound       = errors.New("no staff assigned to company")
)
