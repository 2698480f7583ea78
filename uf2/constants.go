package uf2

// FormatVersion is the UF2 container format revision implemented by this library.
const FormatVersion = "1.0"

// Frame structure constants per the UF2 family specification.
const (
	// FrameSize is the fixed size of every UF2 frame in bytes
	FrameSize = 512

	// MaxPayloadSize is the maximum number of data bytes in one frame:
	// FrameSize(512) - header(32) - trailing magic(4)
	MaxPayloadSize = 476

	// HeaderSize is the size of the frame header in bytes:
	// magic0(4) + magic1(4) + flags(4) + targetAddr(4) + payloadSize(4) +
	// blockNo(4) + numBlocks(4) + fileSizeOrFamily(4)
	HeaderSize = 32

	// DataOffset is the byte offset of the payload within a frame
	DataOffset = 32

	// MagicEndOffset is the byte offset of the trailing magic word
	MagicEndOffset = 508
)

// Magic words marking the start and end of every frame.
const (
	// MagicStart0 is the first magic word ("UF2\n" in ASCII)
	MagicStart0 = 0x0A324655

	// MagicStart1 is the second magic word
	MagicStart1 = 0x9E5D5157

	// MagicEnd is the final magic word closing the frame
	MagicEnd = 0x0AB16F30
)

// Flag bits for the frame flags field.
const (
	// FlagFamilyIDPresent indicates the fileSizeOrFamily slot carries a
	// family ID instead of the total source size
	FlagFamilyIDPresent = 0x00002000
)
