package workgen

import "errors"

// Sentinel errors for common error conditions
var (
	// Configuration errors, rejected before any I/O begins
	ErrLineTooShort      = errors.New("line length must be at least 2")
	ErrNegativeLineCount = errors.New("line count must not be negative")

	// Verification errors
	ErrLineCountMismatch = errors.New("line count does not match meta")
	ErrLineWidthMismatch = errors.New("line width does not match meta")
	ErrMalformedLine     = errors.New("malformed workload line")
	ErrFileSizeMismatch  = errors.New("file size does not match meta")
	ErrFileNameMismatch  = errors.New("file name does not match meta")
	ErrChecksumMismatch  = errors.New("checksum does not match meta")

	// Version/compatibility errors
	ErrIncompatibleVersion = errors.New("incompatible catalog version")
)
