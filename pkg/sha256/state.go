package sha256

import (
	"encoding/binary"
)

// Size of SHA-256 and SHA-256d digests, in bytes.
const Size = 32

// State of the SHA-256 hash function in between blocks. After the
// final block has been processed, the state serialized in big-endian
// byte order is the digest.
type State [Size / 4]uint32

// The first 32 bits of the fractional parts of the square roots of the
// first 8 prime numbers.
var initialState = State{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// InitialState returns the state with which every SHA-256 computation
// starts.
func InitialState() State {
	return initialState
}

// Reset the state to the initial hash value.
func (s *State) Reset() {
	*s = initialState
}

// Word returns one of the eight words of the state.
func (s State) Word(index int) uint32 {
	return s[index]
}

// Words returns all of the words of the state.
func (s State) Words() [Size / 4]uint32 {
	return s
}

// Sum converts the state to a digest.
func (s State) Sum() [Size]byte {
	var sum [Size]byte
	for i, v := range s {
		binary.BigEndian.PutUint32(sum[i*4:], v)
	}
	return sum
}

// AppendSum appends the digest corresponding to the state to a byte
// slice, as needs to be done by hash.Hash.Sum().
func (s State) AppendSum(b []byte) []byte {
	for _, v := range s {
		b = binary.BigEndian.AppendUint32(b, v)
	}
	return b
}
