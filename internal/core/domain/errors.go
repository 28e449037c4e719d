package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a caller contract violation such as an
	// unknown filter mode or a non-positive limit.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSourceNotFound is returned when an export file does not exist.
	ErrSourceNotFound = errors.New("source not found")
	// ErrUnknownDataset is returned for ids absent from the catalog.
	ErrUnknownDataset = errors.New("unknown dataset")
)

// InvalidArgument formats a message wrapped around ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
