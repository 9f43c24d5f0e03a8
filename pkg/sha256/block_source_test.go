package sha256_test

import (
	"bytes"
	"testing"

	"github.com/buildbarn/bb-sha256d/pkg/sha256"
	"github.com/stretchr/testify/require"
)

func TestBlockSourceCount(t *testing.T) {
	t.Run("Boundaries", func(t *testing.T) {
		for sizeBytes, expectedCount := range map[int]int{
			0:       1,
			1:       1,
			55:      1,
			56:      2,
			63:      2,
			64:      2,
			119:     2,
			120:     3,
			128:     3,
			1000000: 15626,
		} {
			require.Equal(t, expectedCount, sha256.NewBlockSource(make([]byte, sizeBytes)).Count(), "Size %d", sizeBytes)
		}
	})

	t.Run("Formula", func(t *testing.T) {
		for sizeBytes := 0; sizeBytes <= 300; sizeBytes++ {
			require.Equal(t, (sizeBytes+9+63)/64, sha256.NewBlockSource(make([]byte, sizeBytes)).Count(), "Size %d", sizeBytes)
		}
	})
}

func TestBlockSourceGet(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		bs := sha256.NewBlockSource(nil)
		require.Equal(t, 1, bs.Count())

		block := bs.Get(0)
		require.True(t, block.IsSynthesized())
		var expected [sha256.BlockSize]byte
		expected[0] = 0x80
		require.Equal(t, expected, block.Bytes())
	})

	t.Run("SingleSynthesizedBlock", func(t *testing.T) {
		block := sha256.NewBlockSource([]byte("abc")).Get(0)
		require.True(t, block.IsSynthesized())

		var expected [sha256.BlockSize]byte
		copy(expected[:], "abc\x80")
		// 24 bits, stored in big-endian byte order.
		expected[63] = 0x18
		require.Equal(t, expected, block.Bytes())
	})

	t.Run("TerminatorDoesNotFitLengthField", func(t *testing.T) {
		message := bytes.Repeat([]byte{'x'}, 56)
		bs := sha256.NewBlockSource(message)
		require.Equal(t, 2, bs.Count())

		var first [sha256.BlockSize]byte
		copy(first[:], message)
		first[56] = 0x80
		require.Equal(t, first, bs.Get(0).Bytes())
		require.True(t, bs.Get(0).IsSynthesized())

		// 448 bits.
		var second [sha256.BlockSize]byte
		second[62] = 0x01
		second[63] = 0xc0
		require.Equal(t, second, bs.Get(1).Bytes())
		require.True(t, bs.Get(1).IsSynthesized())
	})

	t.Run("TerminatorAtEndOfBlock", func(t *testing.T) {
		message := bytes.Repeat([]byte{'y'}, 63)
		bs := sha256.NewBlockSource(message)
		require.Equal(t, 2, bs.Count())

		first := bs.Get(0).Bytes()
		require.Equal(t, message, first[:63])
		require.Equal(t, byte(0x80), first[63])

		second := bs.Get(1).Bytes()
		require.Equal(t, make([]byte, 62), second[:62])
		require.Equal(t, []byte{0x01, 0xf8}, second[62:])
	})

	t.Run("ExactMultipleOfBlockSize", func(t *testing.T) {
		message := bytes.Repeat([]byte{'z'}, 128)
		bs := sha256.NewBlockSource(message)
		require.Equal(t, 3, bs.Count())

		for i := 0; i < 2; i++ {
			block := bs.Get(i)
			require.False(t, block.IsSynthesized())
			contents := block.Bytes()
			require.Equal(t, message[i*64:(i+1)*64], contents[:])
		}

		var padding [sha256.BlockSize]byte
		padding[0] = 0x80
		padding[62] = 0x04
		require.Equal(t, padding, bs.Get(2).Bytes())
	})

	t.Run("BorrowedAndSynthesized", func(t *testing.T) {
		message := make([]byte, 130)
		for i := range message {
			message[i] = byte(i)
		}
		bs := sha256.NewBlockSource(message)
		require.Equal(t, 3, bs.Count())
		require.False(t, bs.Get(0).IsSynthesized())
		require.False(t, bs.Get(1).IsSynthesized())
		require.True(t, bs.Get(2).IsSynthesized())

		last := bs.Get(2).Bytes()
		require.Equal(t, []byte{128, 129, 0x80}, last[:3])
		require.Equal(t, uint32(1040), bs.Get(2).Word(15))
	})

	t.Run("LargeLengthField", func(t *testing.T) {
		bs := sha256.NewBlockSource(make([]byte, 1000000))
		last := bs.Get(bs.Count() - 1)
		// 8000000 bits is 0x7a1200.
		require.Equal(t, uint32(0), last.Word(14))
		require.Equal(t, uint32(0x7a1200), last.Word(15))
	})

	t.Run("OutOfRange", func(t *testing.T) {
		bs := sha256.NewBlockSource([]byte("abc"))
		require.PanicsWithValue(t, "Block index 1 is out of range [0, 1)", func() { bs.Get(1) })
		require.PanicsWithValue(t, "Block index -1 is out of range [0, 1)", func() { bs.Get(-1) })
	})
}

func TestBlockWord(t *testing.T) {
	block := sha256.NewBlockSource([]byte("abc")).Get(0)
	require.Equal(t, uint32(0x61626380), block.Word(0))
	require.Equal(t, uint32(0), block.Word(1))
	require.Equal(t, uint32(0x18), block.Word(15))
}
