package util_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/buildbarn/bb-sha256d/pkg/util"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

type closeTrackingReader struct {
	io.Reader
	closed bool
}

func (r *closeTrackingReader) Close() error {
	r.closed = true
	return nil
}

func TestZstdReadCloser(t *testing.T) {
	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	plain := bytes.Repeat([]byte("abc"), 1000)
	compressed := encoder.EncodeAll(plain, nil)
	require.NoError(t, encoder.Close())

	underlying := &closeTrackingReader{Reader: bytes.NewReader(compressed)}
	r, err := util.NewZstdReadCloser(underlying)
	require.NoError(t, err)
	decompressed, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, plain, decompressed)

	require.NoError(t, r.Close())
	require.True(t, underlying.closed)
}
