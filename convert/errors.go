package convert

import (
	"fmt"

	"github.com/moffa90/go-uf2/uf2"
)

// IncompatibleLengthError indicates that the source length is not a
// multiple of the requested page size, so the device's page granularity
// cannot address a partial final page. Raised before any output is
// produced.
type IncompatibleLengthError struct {
	Length   int64
	PageSize uint32
}

func (e *IncompatibleLengthError) Error() string {
	return fmt.Sprintf("cannot encode image of %d bytes for device with page size %d: length is not a multiple of the page size",
		e.Length, e.PageSize)
}

// ShortReadError indicates that a combiner input provided fewer than
// one full frame's worth of bytes.
type ShortReadError struct {
	// Input is the zero-based index of the input that came up short
	Input int

	// Got is the number of bytes the input actually provided
	Got int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("input %d: short read: got %d bytes, need %d",
		e.Input, e.Got, uf2.FrameSize)
}
