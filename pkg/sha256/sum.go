// Package sha256 provides a portable implementation of the SHA-256
// hash function as specified in FIPS 180-4, together with the SHA-256d
// construction (SHA-256 applied to a SHA-256 digest) used by protocols
// such as Bitcoin.
//
// The implementation is split into a BlockSource that pads the message
// and splits it into blocks, a State that is carried between blocks,
// and Compress, a pure function that processes a single block. Sum256
// folds Compress over all blocks of a message.
package sha256

// SumState computes the SHA-256 state after processing all blocks of a
// padded message.
func SumState(message []byte) State {
	state := InitialState()
	blocks := NewBlockSource(message)
	for i, n := 0, blocks.Count(); i < n; i++ {
		state = Compress(state, blocks.Get(i))
	}
	return state
}

// Sum256 returns the SHA-256 digest of a message.
func Sum256(message []byte) [Size]byte {
	return SumState(message).Sum()
}

// Sum256d returns the SHA-256d digest of a message, which is the
// SHA-256 digest of its SHA-256 digest.
func Sum256d(message []byte) [Size]byte {
	first := Sum256(message)
	return Sum256(first[:])
}
