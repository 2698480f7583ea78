// Package uf2 implements the UF2 frame layout used to transfer firmware
// images to microcontrollers exposing a mass-storage bootloader.
//
// # UF2 Frame Format
//
// A UF2 file is a sequence of fixed 512-byte frames. Each frame carries
// up to 476 bytes of payload plus addressing metadata, framed by three
// magic words. All fields are little-endian.
//
// Frame layout:
//
//	offset  size  field
//	0       4     magic0 (0x0A324655, "UF2\n")
//	4       4     magic1 (0x9E5D5157)
//	8       4     flags
//	12      4     targetAddr
//	16      4     payloadSize
//	20      4     blockNo
//	24      4     numBlocks
//	28      4     fileSizeOrFamily
//	32      476   data (zero-padded beyond payloadSize)
//	508     4     magicEnd (0x0AB16F30)
//
// The fileSizeOrFamily slot is overloaded by the wire format: it holds
// the total source size unless the FlagFamilyIDPresent bit is set in
// flags, in which case it holds the target board family ID instead.
// Block models the two meanings as an explicit variant so they cannot
// be confused.
//
// # Usage
//
// Build and serialize a frame:
//
//	b := uf2.NewBlock(256, 1024)
//	copy(b.Data[:], payload)
//	frame := b.MarshalFrame()
//	// frame is exactly 512 bytes, ready to write
//
// Tag a stream with a board family:
//
//	b.SetFamily(0xE48BFF56) // rp2040
//
// Resolve a family name or numeric ID:
//
//	id, err := uf2.ParseFamily("rp2040")
package uf2
