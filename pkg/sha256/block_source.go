package sha256

import (
	"encoding/binary"
	"fmt"
)

// BlockSize is the size of the blocks consumed by Compress, in bytes.
const BlockSize = 64

// minimumPaddingBytes is the amount of space needed at the end of the
// final block to store the 0x80 terminator and the 64-bit message
// length.
const minimumPaddingBytes = 1 + 8

// Block is a read-only 64 byte window of a padded message. Blocks
// either refer to the original message directly, or to padding that
// was synthesized by a BlockSource.
type Block struct {
	data        *[BlockSize]byte
	synthesized bool
}

// Word returns the i-th 32-bit word of the block, using big-endian
// byte order. Valid indices are 0 to 15.
func (b Block) Word(i int) uint32 {
	return binary.BigEndian.Uint32(b.data[i*4 : i*4+4])
}

// Bytes returns a copy of the contents of the block.
func (b Block) Bytes() [BlockSize]byte {
	return *b.data
}

// IsSynthesized returns true if the block contains padding, as opposed
// to being a view into the original message.
func (b Block) IsSynthesized() bool {
	return b.synthesized
}

// BlockSource splits a message into the sequence of blocks that needs
// to be processed by Compress. All blocks except the final one or two
// are borrowed from the message. The final blocks are constructed
// locally, as they need to contain the padding.
type BlockSource struct {
	message          []byte
	borrowedCount    int
	synthesizedCount int
	synthesized      [2][BlockSize]byte
}

// NewBlockSource creates a BlockSource for a message. The message is
// not copied, meaning it must not be modified for as long as the
// BlockSource is in use.
func NewBlockSource(message []byte) *BlockSource {
	return newBlockSource(message, uint64(len(message)))
}

// newBlockSource creates a BlockSource for the trailing bytes of a
// message that is messageSizeBytes long. The caller must ensure that
// len(message) and messageSizeBytes are congruent modulo BlockSize.
func newBlockSource(message []byte, messageSizeBytes uint64) *BlockSource {
	tailBytes := len(message) % BlockSize
	bs := &BlockSource{
		message:          message,
		borrowedCount:    len(message) / BlockSize,
		synthesizedCount: 1,
	}
	if BlockSize-tailBytes < minimumPaddingBytes {
		bs.synthesizedCount = 2
	}

	// Data is byte aligned, so there is always room for the
	// terminator directly after the trailing bytes of the message.
	copy(bs.synthesized[0][:], message[len(message)-tailBytes:])
	bs.synthesized[0][tailBytes] = 0x80

	// The message length in bits is stored in big-endian byte order
	// at the end of the final block.
	binary.BigEndian.PutUint64(
		bs.synthesized[bs.synthesizedCount-1][BlockSize-8:],
		messageSizeBytes*8)
	return bs
}

// Count returns the number of blocks that the padded message consists
// of.
func (bs *BlockSource) Count() int {
	return bs.borrowedCount + bs.synthesizedCount
}

// Get returns the block at a given index. Requesting a block outside
// the range [0, Count()) is a programming error and causes a panic.
func (bs *BlockSource) Get(index int) Block {
	if index < 0 || index >= bs.Count() {
		panic(fmt.Sprintf("Block index %d is out of range [0, %d)", index, bs.Count()))
	}
	if index < bs.borrowedCount {
		offset := index * BlockSize
		return Block{
			data: (*[BlockSize]byte)(bs.message[offset : offset+BlockSize]),
		}
	}
	return Block{
		data:        &bs.synthesized[index-bs.borrowedCount],
		synthesized: true,
	}
}
