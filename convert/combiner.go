package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/moffa90/go-uf2/uf2"
)

// Combine reads exactly one 512-byte frame from each source, in order,
// and appends them verbatim to dst. Frame contents are not interpreted
// or validated; each source is assumed to already hold a single valid
// frame. Bytes beyond the first frame of a source are ignored.
//
// Returns the number of bytes written. A source providing fewer than
// uf2.FrameSize bytes fails with ShortReadError.
func Combine(dst io.Writer, srcs ...io.Reader) (int64, error) {
	var buf [uf2.FrameSize]byte
	var written int64

	for i, src := range srcs {
		n, err := io.ReadFull(src, buf[:])
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return written, &ShortReadError{Input: i, Got: n}
			}
			return written, fmt.Errorf("read input %d: %w", i, err)
		}

		if _, err := dst.Write(buf[:]); err != nil {
			return written, fmt.Errorf("write output: %w", err)
		}
		written += uf2.FrameSize
	}

	return written, nil
}

// CombineFiles concatenates the first frame of each input file, in
// argument order, into the file at outputPath. Every opened file is
// closed before CombineFiles returns, on success or error.
//
// Example:
//
//	n, err := convert.CombineFiles("image.uf2", []string{"a.uf2", "b.uf2"})
func CombineFiles(outputPath string, inputPaths []string) (int64, error) {
	out, err := os.Create(outputPath)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := bufio.NewWriter(out)
	var written int64

	for i, path := range inputPaths {
		n, err := combineOne(w, i, path)
		written += n
		if err != nil {
			return written, err
		}
	}

	if err := w.Flush(); err != nil {
		return written, fmt.Errorf("flush output: %w", err)
	}
	if err := out.Close(); err != nil {
		return written, fmt.Errorf("close output: %w", err)
	}

	return written, nil
}

// combineOne appends the first frame of one input file to w, keeping
// the file handle scoped to this single input.
func combineOne(w io.Writer, index int, path string) (int64, error) {
	in, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open input %q: %w", path, err)
	}
	defer func() { _ = in.Close() }()

	n, err := Combine(w, bufio.NewReader(in))
	if err != nil {
		var short *ShortReadError
		if errors.As(err, &short) {
			// Rewrite the per-call index to the position in the
			// overall input list.
			return n, &ShortReadError{Input: index, Got: short.Got}
		}
		return n, err
	}

	return n, nil
}
