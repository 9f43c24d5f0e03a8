package sha256

import (
	"bytes"
	"encoding/binary"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type knownAnswer struct {
	name     string
	message  func() []byte
	double   bool
	expected State
}

func literal(s string) func() []byte {
	return func() []byte { return []byte(s) }
}

// blockHeader125552 returns the header of Bitcoin block 125552.
func blockHeader125552() []byte {
	words := [...]uint32{
		0x01000000, 0x81cd02ab, 0x7e569e8b, 0xcd9317e2, 0xfe99f2de,
		0x44d49ab2, 0xb8851ba4, 0xa3080000, 0x00000000, 0xe320b6c2,
		0xfffc8d75, 0x0423db8b, 0x1eb942ae, 0x710e951e, 0xd797f7af,
		0xfc8892b0, 0xf1fc122b, 0xc7f5d74d, 0xf2b9441a, 0x42a14695,
	}
	header := make([]byte, 0, len(words)*4)
	for _, w := range words {
		header = binary.BigEndian.AppendUint32(header, w)
	}
	return header
}

var knownAnswers = []knownAnswer{
	{
		name:     "abc",
		message:  literal("abc"),
		expected: State{0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223, 0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad},
	},
	{
		name:     "empty",
		message:  literal(""),
		expected: State{0xe3b0c442, 0x98fc1c14, 0x9afbf4c8, 0x996fb924, 0x27ae41e4, 0x649b934c, 0xa495991b, 0x7852b855},
	},
	{
		name:     "448 bits",
		message:  literal("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"),
		expected: State{0x248d6a61, 0xd20638b8, 0xe5c02693, 0x0c3e6039, 0xa33ce459, 0x64ff2167, 0xf6ecedd4, 0x19db06c1},
	},
	{
		name:     "512 bits",
		message:  literal("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq12345678"),
		expected: State{0xe07f00c1, 0xd434c9dc, 0x0274407d, 0x0d3f2665, 0x1e64145e, 0x2ffb0782, 0x4601582e, 0x38fed622},
	},
	{
		name:     "one million a",
		message:  func() []byte { return bytes.Repeat([]byte{'a'}, 1000000) },
		expected: State{0xcdc76e5c, 0x9914fb92, 0x81a1c7e2, 0x84d73e67, 0xf1809a48, 0xa497200e, 0x046d39cc, 0xc7112cd0},
	},
	{
		name:     "abc double",
		message:  literal("abc"),
		double:   true,
		expected: State{0x4f8b42c2, 0x2dd3729b, 0x519ba6f6, 0x8d2da7cc, 0x5b2d606d, 0x05daed5a, 0xd5128cc0, 0x3e6c6358},
	},
	{
		name:     "block header double",
		message:  blockHeader125552,
		double:   true,
		expected: State{0x1dbd981f, 0xe6985776, 0xb644b173, 0xa4d0385d, 0xdc1aa2a8, 0x29688d1e, 0x00000000, 0x00000000},
	},
}

// SelfTest computes the digests of a set of well known messages and
// compares them against the published results. It can be called on
// startup to ensure the implementation behaves correctly on the
// current platform.
func SelfTest() error {
	for _, ka := range knownAnswers {
		message := ka.message()
		var got [Size]byte
		if ka.double {
			got = Sum256d(message)
		} else {
			got = Sum256(message)
		}
		if want := ka.expected.Sum(); got != want {
			return status.Errorf(codes.Internal, "Known answer test %#v failed: expected %x, got %x", ka.name, want, got)
		}
	}
	return nil
}
