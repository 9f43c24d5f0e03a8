package sha256

import (
	"hash"
)

type hasher struct {
	state     State
	buffer    [BlockSize]byte
	buffered  int
	sizeBytes uint64
	double    bool
}

// New creates a hash.Hash that computes SHA-256 digests incrementally.
func New() hash.Hash {
	h := &hasher{}
	h.Reset()
	return h
}

// NewDouble creates a hash.Hash that computes SHA-256d digests
// incrementally.
func NewDouble() hash.Hash {
	h := &hasher{double: true}
	h.Reset()
	return h
}

func (h *hasher) Write(p []byte) (int, error) {
	nTotal := len(p)
	h.sizeBytes += uint64(nTotal)

	// Complete a partially filled block first.
	if h.buffered > 0 {
		n := copy(h.buffer[h.buffered:], p)
		h.buffered += n
		p = p[n:]
		if h.buffered < BlockSize {
			return nTotal, nil
		}
		h.state = Compress(h.state, Block{data: &h.buffer})
		h.buffered = 0
	}

	// Process full blocks directly from the input.
	for len(p) >= BlockSize {
		h.state = Compress(h.state, Block{data: (*[BlockSize]byte)(p[:BlockSize])})
		p = p[BlockSize:]
	}
	h.buffered = copy(h.buffer[:], p)
	return nTotal, nil
}

func (h *hasher) Sum(b []byte) []byte {
	// Pad a copy of the state, so that more data may be written
	// afterwards.
	state := h.state
	blocks := newBlockSource(h.buffer[:h.buffered], h.sizeBytes)
	for i, n := 0, blocks.Count(); i < n; i++ {
		state = Compress(state, blocks.Get(i))
	}
	if h.double {
		first := state.Sum()
		second := Sum256(first[:])
		return append(b, second[:]...)
	}
	return state.AppendSum(b)
}

func (h *hasher) Reset() {
	h.state.Reset()
	h.buffered = 0
	h.sizeBytes = 0
}

func (h *hasher) Size() int {
	return Size
}

func (h *hasher) BlockSize() int {
	return BlockSize
}
