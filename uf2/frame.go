package uf2

import "encoding/binary"

// MarshalFrame serializes the block into a complete 512-byte frame.
//
// Frame layout (all fields little-endian):
//
//	[MAGIC0(4)][MAGIC1(4)][FLAGS(4)][TARGET_ADDR(4)][PAYLOAD_SIZE(4)]
//	[BLOCK_NO(4)][NUM_BLOCKS(4)][FILE_SIZE_OR_FAMILY(4)][DATA(476)][MAGIC_END(4)]
//
// Bytes of Data beyond PayloadSize are zeroed in the output, so stale
// buffer contents from a previous iteration never leak into the frame.
// The serialization cannot fail; downstream flashing tools depend on
// exact offsets and magic values, so the output is bit-exact.
func (b *Block) MarshalFrame() [FrameSize]byte {
	var frame [FrameSize]byte

	binary.LittleEndian.PutUint32(frame[0:4], MagicStart0)
	binary.LittleEndian.PutUint32(frame[4:8], MagicStart1)
	binary.LittleEndian.PutUint32(frame[8:12], b.Flags)
	binary.LittleEndian.PutUint32(frame[12:16], b.TargetAddr)
	binary.LittleEndian.PutUint32(frame[16:20], b.PayloadSize)
	binary.LittleEndian.PutUint32(frame[20:24], b.BlockNo)
	binary.LittleEndian.PutUint32(frame[24:28], b.NumBlocks)
	binary.LittleEndian.PutUint32(frame[28:32], b.slot())

	n := b.PayloadSize
	if n > MaxPayloadSize {
		n = MaxPayloadSize
	}
	copy(frame[DataOffset:DataOffset+n], b.Data[:n])

	binary.LittleEndian.PutUint32(frame[MagicEndOffset:], MagicEnd)

	return frame
}
