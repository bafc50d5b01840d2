// SPDX-License-Identifier: MIT

package field

import "errors"

// Sentinel errors. Every message is prefixed with "field:" for grep-ability;
// wrap with fmt.Errorf("ctx: %w", ErrX) and match with errors.Is.
var (
	// ErrNotFinite is returned when a NaN or ±Inf value is used where a finite one is required.
	ErrNotFinite = errors.New("field: value is NaN or Inf")

	// ErrBadTolerance is returned for a negative or NaN tolerance.
	ErrBadTolerance = errors.New("field: tolerance must be finite and non-negative")

	// ErrBadDenominator is returned when the denominator bound is below 1.
	ErrBadDenominator = errors.New("field: maximal denominator must be >= 1")

	// ErrBadIterations is returned for a negative iteration cap.
	ErrBadIterations = errors.New("field: iteration cap must be >= 0")

	// ErrOverflow is returned when a value does not fit the int64 convergent range.
	ErrOverflow = errors.New("field: value out of int64 range")

	// ErrParse is returned when a textual scalar cannot be parsed.
	ErrParse = errors.New("field: cannot parse scalar")

	// ErrUnknownKind is returned by ParseKind for unsupported field names.
	ErrUnknownKind = errors.New("field: unknown field kind")
)
