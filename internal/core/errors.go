// Error taxonomy shared by every core operation
package core

import "errors"

var (
	// ErrOutOfRange reports a coordinate or rectangle outside the buffer.
	ErrOutOfRange = errors.New("out of range")

	// ErrInvalidArgument reports a malformed pixel, kernel or option set.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrColorSpaceMismatch reports an operation invoked on an image tagged
	// with a different color space.
	ErrColorSpaceMismatch = errors.New("color space mismatch")
)
