package thermal

import (
	"errors"
	"fmt"
)

// Recoverable error kinds reported by the editor and the file layer.
var (
	ErrOutOfBounds        = errors.New("point outside image bounds")
	ErrInsufficientPoints = errors.New("need at least 3 points to create a region")
	ErrEmptySelection     = errors.New("selected region is empty")
	ErrNoOriginalLoaded   = errors.New("no image loaded")
	ErrShapeMismatch      = errors.New("mask shape does not match image")
	ErrSelectionClosed    = errors.New("region already closed")
	ErrNoSelection        = errors.New("please select a region first")
	ErrFillCancelled      = errors.New("fill cancelled")
	ErrFillRange          = errors.New("fill value out of range")
	ErrIO                 = errors.New("i/o failure")
)

// IOError is returned for load and save failures. It matches ErrIO with
// errors.Is and unwraps to the underlying cause.
type IOError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIO) true for every IOError.
func (e *IOError) Is(target error) bool { return target == ErrIO }
