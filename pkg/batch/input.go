package batch

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/buildbarn/bb-sha256d/pkg/util"
)

// Input of which a digest needs to be computed.
type Input struct {
	// Name of the input, as reported in results and error messages.
	Name string
	// SizeBytes is the expected size of the input. It is only used
	// as a hint and may be zero if unknown.
	SizeBytes int64
	// Open the input for reading. Every call returns a new reader
	// that starts at the beginning of the input.
	Open func() (io.ReadCloser, error)
}

// NewBytesInput creates an Input whose contents are held in memory.
func NewBytesInput(name string, data []byte) Input {
	return Input{
		Name:      name,
		SizeBytes: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// NewFileInput creates an Input that reads its contents from a file.
// Files having the ".zst" extension are decompressed using Zstandard,
// meaning the digest is computed over the decompressed contents.
func NewFileInput(path string) Input {
	return Input{
		Name: path,
		Open: func() (io.ReadCloser, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, util.StatusWrap(err, "Failed to open file")
			}
			if !strings.HasSuffix(path, ".zst") {
				return f, nil
			}
			r, err := util.NewZstdReadCloser(f)
			if err != nil {
				f.Close()
				return nil, util.StatusWrap(err, "Failed to create Zstandard decoder")
			}
			return r, nil
		},
	}
}
