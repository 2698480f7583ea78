package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/moffa90/go-uf2/uf2"
)

// frameOf builds one 512-byte chunk filled with the given byte.
func frameOf(fill byte) []byte {
	chunk := make([]byte, uf2.FrameSize)
	for i := range chunk {
		chunk[i] = fill
	}
	return chunk
}

func TestCombine(t *testing.T) {
	var dst bytes.Buffer

	n, err := Combine(&dst,
		bytes.NewReader(frameOf(0xAA)),
		bytes.NewReader(frameOf(0xBB)),
		bytes.NewReader(frameOf(0xCC)),
	)
	if err != nil {
		t.Fatalf("Combine() error: %v", err)
	}

	if n != 3*uf2.FrameSize {
		t.Errorf("Combine() wrote %d bytes, want %d", n, 3*uf2.FrameSize)
	}
	if dst.Len() != 3*uf2.FrameSize {
		t.Fatalf("output is %d bytes, want %d", dst.Len(), 3*uf2.FrameSize)
	}

	out := dst.Bytes()
	for i, fill := range []byte{0xAA, 0xBB, 0xCC} {
		chunk := out[i*uf2.FrameSize : (i+1)*uf2.FrameSize]
		if !bytes.Equal(chunk, frameOf(fill)) {
			t.Errorf("chunk %d does not match input %d verbatim", i, i)
		}
	}
}

func TestCombineIgnoresTrailingBytes(t *testing.T) {
	// Only the first frame of each input is taken.
	input := append(frameOf(0x11), []byte("trailing garbage")...)
	var dst bytes.Buffer

	n, err := Combine(&dst, bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Combine() error: %v", err)
	}
	if n != uf2.FrameSize {
		t.Errorf("Combine() wrote %d bytes, want %d", n, uf2.FrameSize)
	}
	if !bytes.Equal(dst.Bytes(), frameOf(0x11)) {
		t.Error("output does not match the first frame of the input")
	}
}

func TestCombineShortRead(t *testing.T) {
	tests := []struct {
		name      string
		inputs    [][]byte
		wantInput int
		wantGot   int
	}{
		{
			name:      "first input short",
			inputs:    [][]byte{make([]byte, 100)},
			wantInput: 0,
			wantGot:   100,
		},
		{
			name:      "second input empty",
			inputs:    [][]byte{frameOf(0x01), {}},
			wantInput: 1,
			wantGot:   0,
		},
		{
			name:      "one byte missing",
			inputs:    [][]byte{make([]byte, uf2.FrameSize-1)},
			wantInput: 0,
			wantGot:   uf2.FrameSize - 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srcs := make([]io.Reader, len(tt.inputs))
			for i, in := range tt.inputs {
				srcs[i] = bytes.NewReader(in)
			}

			var dst bytes.Buffer
			_, err := Combine(&dst, srcs...)

			var short *ShortReadError
			if !errors.As(err, &short) {
				t.Fatalf("Combine() error = %v, want ShortReadError", err)
			}
			if short.Input != tt.wantInput || short.Got != tt.wantGot {
				t.Errorf("error carries (input=%d, got=%d), want (%d, %d)",
					short.Input, short.Got, tt.wantInput, tt.wantGot)
			}
		})
	}
}

func TestCombineFiles(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "combined.uf2")

	var inputs []string
	for i, fill := range []byte{0xAA, 0xBB, 0xCC} {
		path := filepath.Join(dir, fmt.Sprintf("part%d.uf2", i))
		if err := os.WriteFile(path, frameOf(fill), 0o644); err != nil {
			t.Fatal(err)
		}
		inputs = append(inputs, path)
	}

	n, err := CombineFiles(output, inputs)
	if err != nil {
		t.Fatalf("CombineFiles() error: %v", err)
	}
	if n != 3*uf2.FrameSize {
		t.Errorf("CombineFiles() wrote %d bytes, want %d", n, 3*uf2.FrameSize)
	}

	out, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	want := append(append(frameOf(0xAA), frameOf(0xBB)...), frameOf(0xCC)...)
	if !bytes.Equal(out, want) {
		t.Error("combined output is not the byte-identical concatenation of the inputs")
	}
}

func TestCombineFilesShortInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "combined.uf2")

	full := filepath.Join(dir, "full.uf2")
	if err := os.WriteFile(full, frameOf(0x01), 0o644); err != nil {
		t.Fatal(err)
	}
	truncated := filepath.Join(dir, "truncated.uf2")
	if err := os.WriteFile(truncated, make([]byte, 12), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := CombineFiles(output, []string{full, truncated})

	var short *ShortReadError
	if !errors.As(err, &short) {
		t.Fatalf("CombineFiles() error = %v, want ShortReadError", err)
	}
	if short.Input != 1 {
		t.Errorf("ShortReadError.Input = %d, want 1 (position in the input list)", short.Input)
	}
	if short.Got != 12 {
		t.Errorf("ShortReadError.Got = %d, want 12", short.Got)
	}
}

func TestCombineFilesMissingInput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "combined.uf2")

	_, err := CombineFiles(output, []string{filepath.Join(dir, "nope.uf2")})
	if err == nil {
		t.Fatal("CombineFiles() succeeded with a missing input file")
	}
}
