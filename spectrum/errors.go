package spectrum

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidBounds     = errors.New("invalid bounds")
	ErrGroupSizeMismatch = errors.New("group size mismatch")
	ErrShortRead         = errors.New("short read")
)

// FileOpenError reports an input that cannot be read or an output that cannot be created
type FileOpenError struct {
	Op   string // "open", "create"
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("unable to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error {
	return e.Err
}

// ShortReadError reports a file that ends before the configured sample array does
type ShortReadError struct {
	Path     string
	Expected int // bytes
	Got      int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("%s: expected %d data bytes, file holds %d", e.Path, e.Expected, e.Got)
}

func (e *ShortReadError) Unwrap() error {
	return ErrShortRead
}

// BoundsError reports a degenerate or out-of-range wavenumber bound
type BoundsError struct {
	Op     string
	Reason string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

func (e *BoundsError) Unwrap() error {
	return ErrInvalidBounds
}

// GroupSizeError reports a spectrum count that is not a multiple of the group size
type GroupSizeError struct {
	Count     int
	GroupSize int
}

func (e *GroupSizeError) Error() string {
	if e.GroupSize < 1 {
		return fmt.Sprintf("group size must be positive, got %d", e.GroupSize)
	}
	return fmt.Sprintf("%d spectra cannot be divided into groups of %d", e.Count, e.GroupSize)
}

func (e *GroupSizeError) Unwrap() error {
	return ErrGroupSizeMismatch
}
