// Package matrix: sentinel error set. All exported operations return
// these sentinels (possibly wrapped with an operation tag) and tests
// match them via errors.Is. No operation panics on user-triggered
// conditions.
package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested size is invalid (size ≤ 0)
	// or when serialized data does not describe a square matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds,
	// including out-of-range submatrix extraction.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes for
	// Add/Sub/Mul/StrassenMul. It carries context with both sizes when
	// wrapped at the operation boundary.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that row-major input data is ragged or
	// rectangular where a square matrix is required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags used for uniform error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opStrassen  = "StrassenMul"
	opSubmatrix = "Submatrix"
	opPad       = "PadToPowerOfTwo"
	opUnpad     = "Unpad"
)

// opErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Callers must only pass non-nil errors.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mismatchErrorf wraps ErrDimensionMismatch with both operand sizes.
func mismatchErrorf(tag string, a, b int) error {
	return fmt.Errorf("%s: %dx%d vs %dx%d: %w", tag, a, a, b, b, ErrDimensionMismatch)
}
