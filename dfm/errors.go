// SPDX-License-Identifier: MIT
// Package dfm: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the dfm
// package. Operations return these sentinels and tests check them via
// errors.Is. Panics are reserved for internal invariant violations (a
// corrupted sparse structure or a store referencing unknown types), which
// signal a bug rather than bad user input.

package dfm

import "errors"

var (
	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("dfm: nil matrix")

	// ErrNilStore indicates Build was given a nil token store.
	ErrNilStore = errors.New("dfm: nil store")

	// ErrOutOfRange indicates a row or column index outside the matrix
	// bounds at an ingestion boundary (At, FromTriples).
	ErrOutOfRange = errors.New("dfm: index out of range")

	// ErrDimensionMismatch indicates incompatible label sets or lengths,
	// e.g. a grouping key list whose length differs from the row count.
	ErrDimensionMismatch = errors.New("dfm: dimension mismatch")

	// ErrDuplicateLabel indicates a row or column label list contained the
	// same label twice; labels must be unique.
	ErrDuplicateLabel = errors.New("dfm: duplicate label")

	// ErrUnknownMode indicates a select Mode outside the declared enum.
	ErrUnknownMode = errors.New("dfm: unknown select mode")

	// ErrUnknownScheme indicates a weighting Scheme outside the declared
	// enum.
	ErrUnknownScheme = errors.New("dfm: unknown weighting scheme")

	// ErrBadThreshold indicates a negative trim threshold or an inverted
	// min/max pair.
	ErrBadThreshold = errors.New("dfm: invalid trim threshold")

	// ErrBadWorkers indicates WithWorkers was given n < 1.
	ErrBadWorkers = errors.New("dfm: worker count must be >= 1")

	// ErrNegativeValue indicates FromTriples received a negative cell
	// value; counts and weights are non-negative.
	ErrNegativeValue = errors.New("dfm: negative cell value")
)
