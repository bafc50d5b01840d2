// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooSmall indicates a size parameter below the constructor's minimum.
	ErrTooSmall = errors.New("builder: parameter too small")

	// ErrTooLarge indicates a size parameter whose data would overflow int64.
	ErrTooLarge = errors.New("builder: parameter too large")

	// ErrShape indicates inconsistent slice or matrix dimensions.
	ErrShape = errors.New("builder: dimension mismatch")

	// ErrUnbalanced indicates total supply differs from total demand.
	ErrUnbalanced = errors.New("builder: supply and demand are unbalanced")

	// ErrNegative indicates a supply, demand or cost entry below zero.
	ErrNegative = errors.New("builder: negative entry")

	// ErrNeedRandSource indicates a random constructor called without WithSeed
	// or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")
)

// builderErrorf prefixes a sentinel with the constructor name.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, err, fmt.Sprintf(format, args...))
}
