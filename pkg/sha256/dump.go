package sha256

import (
	"fmt"
	"io"
	"strings"
)

// FormatState returns a human readable representation of a state,
// listing its words in hexadecimal notation.
func FormatState(s State) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, v := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "0x%08x", v)
	}
	sb.WriteByte('}')
	return sb.String()
}

// FormatBlock returns a human readable representation of a block,
// consisting of four lines containing four big-endian words each.
func FormatBlock(b Block) string {
	var sb strings.Builder
	for line := 0; line < 4; line++ {
		for column := 0; column < 4; column++ {
			if column > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%08x", b.Word(line*4+column))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTrace computes the SHA-256 digest of a message, while writing
// every block and the state obtained after processing it to a writer.
// This is only intended to be used for debugging.
func WriteTrace(w io.Writer, message []byte) (State, error) {
	var sb strings.Builder
	state := InitialState()
	blocks := NewBlockSource(message)
	fmt.Fprintf(&sb, "Num blocks: %d\n", blocks.Count())
	fmt.Fprintf(&sb, "Initial state: %s\n", FormatState(state))
	for i, n := 0, blocks.Count(); i < n; i++ {
		block := blocks.Get(i)
		state = Compress(state, block)
		kind := "borrowed"
		if block.IsSynthesized() {
			kind = "synthesized"
		}
		fmt.Fprintf(&sb, "Block %d (%s):\n%sState: %s\n", i, kind, FormatBlock(block), FormatState(state))
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return state, err
	}
	return state, nil
}
