package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned by ParseType for unrecognised names.
	ErrUnknownType = errors.New("window: unknown type")

	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window: size must be > 0: %d", size)
	}
	return nil
}

func unknownType(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownType, name)
}
