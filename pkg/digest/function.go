package digest

import (
	"encoding/hex"
	"hash"
	"strconv"
	"strings"

	"github.com/buildbarn/bb-sha256d/pkg/util"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Function for computing new Digest objects.
type Function struct {
	bareFunction *bareFunction
}

// NewFunction looks up a digest function by name.
func NewFunction(name string) (Function, error) {
	bareFunction, ok := bareFunctionsByName[name]
	if !ok {
		return Function{}, status.Errorf(codes.InvalidArgument, "Unknown digest function %#v, supported digest functions are %s", name, strings.Join(SupportedDigestFunctions, ", "))
	}
	return Function{bareFunction: bareFunction}, nil
}

// MustNewFunction constructs a Function similar to NewFunction(), but
// never returns an error. Instead, execution will abort if the name of
// the digest function is invalid. Useful for unit testing.
func MustNewFunction(name string) Function {
	return util.Must(NewFunction(name))
}

// GetName returns the name of the digest function.
func (f Function) GetName() string {
	return f.bareFunction.name
}

// GetHashBytesSize returns the size of the hashes computed by the
// digest function, in bytes.
func (f Function) GetHashBytesSize() int {
	return f.bareFunction.hashBytesSize
}

// NewDigest constructs a Digest from a hash in hexadecimal notation and
// an object size.
func (f Function) NewDigest(hash string, sizeBytes int64) (Digest, error) {
	if expectedLength := f.bareFunction.hashBytesSize * 2; len(hash) != expectedLength {
		return BadDigest, status.Errorf(codes.InvalidArgument, "Hash has length %d, while %d characters were expected", len(hash), expectedLength)
	}
	for _, c := range hash {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return BadDigest, status.Errorf(codes.InvalidArgument, "Non-hexadecimal character in digest hash: %#U", c)
		}
	}
	if sizeBytes < 0 {
		return BadDigest, status.Errorf(codes.InvalidArgument, "Invalid digest size: %d bytes", sizeBytes)
	}
	return Digest{
		function:  f.bareFunction,
		hash:      hash,
		sizeBytes: sizeBytes,
	}, nil
}

// NewDigestFromString parses a Digest from a string having the format
// ${hash}-${size}, which is the format returned by Digest.String().
func (f Function) NewDigestFromString(s string) (Digest, error) {
	hash, sizeBytesStr, ok := strings.Cut(s, "-")
	if !ok {
		return BadDigest, status.Errorf(codes.InvalidArgument, "Digest %#v does not have the format ${hash}-${size}", s)
	}
	sizeBytes, err := strconv.ParseInt(sizeBytesStr, 10, 64)
	if err != nil {
		return BadDigest, status.Errorf(codes.InvalidArgument, "Invalid digest size %#v", sizeBytesStr)
	}
	return f.NewDigest(hash, sizeBytes)
}

// NewGenerator creates a writer that may be used to compute digests of
// newly created files. The expected size is merely a hint, allowing
// some digest functions to preallocate state.
func (f Function) NewGenerator(expectedSizeBytes int64) *Generator {
	name := f.bareFunction.name
	return &Generator{
		function:             f.bareFunction,
		partialHash:          f.bareFunction.hasherFactory(expectedSizeBytes),
		bytesHashedTotal:     generatorBytesHashedTotal.WithLabelValues(name),
		digestsComputedTotal: generatorDigestsComputedTotal.WithLabelValues(name),
		digestsComputedSizes: generatorDigestsComputedSizeBytes.WithLabelValues(name),
	}
}

// Sum computes the Digest of a byte slice.
func (f Function) Sum(data []byte) Digest {
	g := f.NewGenerator(int64(len(data)))
	g.Write(data)
	return g.Sum()
}

// Generator is a writer that may be used to compute digests of newly
// created files.
type Generator struct {
	function    *bareFunction
	partialHash hash.Hash
	sizeBytes   int64

	bytesHashedTotal     prometheus.Counter
	digestsComputedTotal prometheus.Counter
	digestsComputedSizes prometheus.Observer
}

// Write a chunk of data from a newly created file into the state of the
// Generator.
func (dg *Generator) Write(p []byte) (int, error) {
	n, err := dg.partialHash.Write(p)
	dg.sizeBytes += int64(n)
	dg.bytesHashedTotal.Add(float64(n))
	return n, err
}

// Sum creates a new digest based on the data written into the
// Generator.
func (dg *Generator) Sum() Digest {
	dg.digestsComputedTotal.Inc()
	dg.digestsComputedSizes.Observe(float64(dg.sizeBytes))
	return Digest{
		function:  dg.function,
		hash:      hex.EncodeToString(dg.partialHash.Sum(nil)),
		sizeBytes: dg.sizeBytes,
	}
}
