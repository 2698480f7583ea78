// Package convert implements the two UF2 transfer pipelines: generating
// a frame stream from a raw firmware image, and combining per-frame
// inputs into one stream.
//
// # Generation
//
// Generate splits a source image into fixed 512-byte frames. The
// payload size per frame is negotiated against the target device's page
// size: the largest multiple of the page size that fits the 476-byte
// payload area. The source length must be a multiple of the page size,
// since the device cannot program a partial page.
//
//	report, err := convert.GenerateFile("firmware.bin", "firmware.uf2",
//	    convert.WithPageSize(256),
//	    convert.WithFamily(0xE48BFF56),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d frames (%d bytes, digest %016x)\n",
//	    report.Frames, report.Bytes, report.Digest)
//
// # Combining
//
// Combine concatenates the first 512 bytes of each input, in order,
// without interpreting frame contents. It is the inverse of splitting a
// stream into one-frame files, not a validating UF2 parser.
//
//	n, err := convert.CombineFiles("image.uf2", inputs)
//
// # Error Handling
//
// Validation failures are typed: IncompatibleLengthError when the
// source length does not divide by the page size (raised before any
// output is written), ShortReadError when a combiner input holds less
// than one frame. I/O failures are wrapped with context. No operation
// retries; every failure propagates to the caller as a single terminal
// error.
package convert
