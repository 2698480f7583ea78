package convert

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/moffa90/go-uf2/uf2"
)

// Report summarizes a completed generation.
type Report struct {
	// Frames is the number of frames emitted
	Frames int

	// Bytes is the number of payload bytes encoded (equal to the source length)
	Bytes int64

	// Digest is the xxhash64 digest of the source image, for logging and
	// summary output
	Digest uint64
}

// Generate encodes length bytes from src into a sequence of 512-byte
// UF2 frames written to dst.
//
// The payload size per frame is the largest multiple of the configured
// page size not exceeding uf2.MaxPayloadSize, so every frame stays
// page-aligned while maximizing utilization. A page size larger than
// uf2.MaxPayloadSize falls back to 1. If length is not a multiple of
// the page size, Generate fails with IncompatibleLengthError before
// writing any output.
//
// A zero-length source emits zero frames. A source that runs out before
// length bytes were read is an I/O error; no partial-output cleanup is
// attempted, the caller decides what to do with a partially written
// destination.
//
// Example:
//
//	report, err := convert.Generate(dst, src, 1024,
//	    convert.WithPageSize(256),
//	    convert.WithFamily(0xE48BFF56),
//	)
func Generate(dst io.Writer, src io.Reader, length int64, opts ...Option) (*Report, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	pageSize, err := cfg.plan(length)
	if err != nil {
		return nil, err
	}

	if length == 0 {
		cfg.logDebug("empty source, emitting zero frames")
		return &Report{}, nil
	}

	// Largest multiple of the page size that fits in one frame.
	payloadSize := pageSize * (uf2.MaxPayloadSize / pageSize)

	block := uf2.NewBlock(payloadSize, uint32(length))
	if cfg.HasFamily {
		block.SetFamily(cfg.Family)
	}

	cfg.logDebug("generating",
		"length", length,
		"page_size", pageSize,
		"payload_size", payloadSize,
		"num_blocks", block.NumBlocks,
	)

	digest := xxhash.New()
	src = io.TeeReader(src, digest)

	totalFrames := int(block.NumBlocks)
	remaining := uint32(length)
	var bytesEncoded int64

	for remaining > 0 {
		if remaining < block.PayloadSize {
			block.PayloadSize = remaining
		}

		if _, err := io.ReadFull(src, block.Data[:block.PayloadSize]); err != nil {
			return nil, fmt.Errorf("read source at frame %d: %w", block.BlockNo, err)
		}

		frame := block.MarshalFrame()
		if _, err := dst.Write(frame[:]); err != nil {
			return nil, fmt.Errorf("write frame %d: %w", block.BlockNo, err)
		}

		remaining -= block.PayloadSize
		bytesEncoded += int64(block.PayloadSize)

		cfg.reportProgress(Progress{
			CurrentFrame: int(block.BlockNo),
			TotalFrames:  totalFrames,
			Percentage:   float64(bytesEncoded) / float64(length) * 100,
			BytesEncoded: bytesEncoded,
		})

		block.BlockNo++
		block.TargetAddr += block.PayloadSize
	}

	report := &Report{
		Frames: totalFrames,
		Bytes:  bytesEncoded,
		Digest: digest.Sum64(),
	}

	cfg.logDebug("generation complete",
		"frames", report.Frames,
		"bytes", report.Bytes,
		"digest", fmt.Sprintf("%016x", report.Digest),
	)

	return report, nil
}

// GenerateFile encodes the full contents of the file at inputPath into
// UF2 frames written to outputPath. The source length is taken from the
// file metadata and I/O is buffered. Both files are closed before
// GenerateFile returns, on success or error.
//
// Example:
//
//	report, err := convert.GenerateFile("firmware.bin", "firmware.uf2",
//	    convert.WithPageSize(256))
func GenerateFile(inputPath, outputPath string, opts ...Option) (*Report, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = in.Close() }()

	info, err := in.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	// Validate before creating the output so an incompatible length
	// never truncates an existing destination.
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, err := cfg.plan(info.Size()); err != nil {
		return nil, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := bufio.NewWriter(out)
	report, err := Generate(w, bufio.NewReader(in), info.Size(), opts...)
	if err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("flush output: %w", err)
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("close output: %w", err)
	}

	return report, nil
}

// plan validates the source length against the configured page size and
// returns the effective page size. Runs before any output is produced,
// so a failing validation leaves the destination untouched.
func (c *Config) plan(length int64) (uint32, error) {
	if length < 0 {
		return 0, fmt.Errorf("invalid source length %d", length)
	}
	if length > math.MaxUint32 {
		return 0, fmt.Errorf("source of %d bytes exceeds the 32-bit frame addressing limit", length)
	}

	pageSize := c.PageSize
	if pageSize > uf2.MaxPayloadSize {
		// Oversized page sizes fall back to byte granularity.
		c.logDebug("page size exceeds max payload, falling back",
			"page_size", pageSize, "fallback", 1)
		pageSize = 1
	}

	if length%int64(pageSize) != 0 {
		return 0, &IncompatibleLengthError{Length: length, PageSize: pageSize}
	}

	return pageSize, nil
}

// reportProgress invokes the progress callback if one is configured.
func (c *Config) reportProgress(p Progress) {
	if c.ProgressCallback != nil {
		c.ProgressCallback(p)
	}
}

// logDebug logs a debug message if a logger is configured.
func (c *Config) logDebug(msg string, keysAndValues ...interface{}) {
	if c.Logger != nil {
		c.Logger.Debug(msg, keysAndValues...)
	}
}
