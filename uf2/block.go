package uf2

import "fmt"

// Block represents a single UF2 frame before serialization.
//
// One Block is typically constructed per stream and reused across
// iterations: the stream-wide fields (Flags, NumBlocks, the total-size
// slot) are set once, while PayloadSize, BlockNo, TargetAddr and Data
// are updated per emitted frame.
type Block struct {
	// Flags is the frame flag bit field
	Flags uint32

	// TargetAddr is the byte offset of this block's payload within the
	// destination address space
	TargetAddr uint32

	// PayloadSize is the number of valid data bytes in this block (<= MaxPayloadSize)
	PayloadSize uint32

	// BlockNo is the zero-based sequential index of this block
	BlockNo uint32

	// NumBlocks is the total block count for the stream
	NumBlocks uint32

	// Data is the payload buffer; bytes beyond PayloadSize are zero-padded
	// during serialization
	Data [MaxPayloadSize]byte

	// sizeOrFamily is the overloaded wire slot at offset 28. The wire
	// format reuses one u32 for either the total source size or the
	// family ID, discriminated by FlagFamilyIDPresent. Modeled as an
	// explicit variant so the two meanings cannot be confused.
	sizeOrFamily slotValue
}

// slotValue is the fileSizeOrFamily wire slot: a total size or a family
// ID, never both.
type slotValue struct {
	family bool
	value  uint32
}

// NewBlock creates a Block for a stream of totalSize bytes split into
// frames of payloadSize bytes. NumBlocks is the ceiling of
// totalSize / payloadSize.
//
// payloadSize must be in the range 1..MaxPayloadSize; NewBlock panics
// otherwise, since a payload size outside the frame layout is a
// programming error, not a runtime condition.
func NewBlock(payloadSize, totalSize uint32) *Block {
	if payloadSize == 0 || payloadSize > MaxPayloadSize {
		panic(fmt.Sprintf("uf2: payload size %d outside valid range 1-%d", payloadSize, MaxPayloadSize))
	}

	return &Block{
		PayloadSize:  payloadSize,
		NumBlocks:    (totalSize + payloadSize - 1) / payloadSize,
		sizeOrFamily: slotValue{value: totalSize},
	}
}

// SetFamily marks the stream as targeting a specific board family.
// Sets FlagFamilyIDPresent and repurposes the fileSizeOrFamily slot to
// carry the family ID; the total size is no longer representable in the
// frame afterwards.
func (b *Block) SetFamily(id uint32) {
	b.Flags |= FlagFamilyIDPresent
	b.sizeOrFamily = slotValue{family: true, value: id}
}

// TotalSize returns the total source size and true if the slot carries
// a size, or 0 and false if it was repurposed for a family ID.
func (b *Block) TotalSize() (uint32, bool) {
	if b.sizeOrFamily.family {
		return 0, false
	}
	return b.sizeOrFamily.value, true
}

// FamilyID returns the family ID and true if one was set via SetFamily,
// or 0 and false otherwise.
func (b *Block) FamilyID() (uint32, bool) {
	if !b.sizeOrFamily.family {
		return 0, false
	}
	return b.sizeOrFamily.value, true
}

// slot returns the raw u32 to serialize at offset 28, whichever variant
// is active.
func (b *Block) slot() uint32 {
	return b.sizeOrFamily.value
}
