// Package digest provides a uniform way of computing and representing
// digests of objects, regardless of the hashing algorithm that is used.
package digest

import (
	"encoding/hex"
	"fmt"

	"github.com/buildbarn/bb-sha256d/pkg/util"
)

// Digest holds the hash and the size of an object, together with the
// digest function that was used to compute the hash. Instances of
// Digest never contain degenerate values: the hash is guaranteed to be
// lowercase hexadecimal of the right length and the size is
// non-negative. Digests are comparable, meaning they may be used as
// map keys.
type Digest struct {
	function  *bareFunction
	hash      string
	sizeBytes int64
}

// BadDigest is a default instance of Digest. It can, for example, be
// used as a function return value for error cases.
var BadDigest Digest

// MustNewDigest constructs a Digest similar to Function.NewDigest(),
// but never returns an error. Instead, execution will abort if the
// resulting instance would be degenerate. Useful for unit testing.
func MustNewDigest(functionName, hash string, sizeBytes int64) Digest {
	return util.Must(MustNewFunction(functionName).NewDigest(hash, sizeBytes))
}

// GetDigestFunction returns the digest function that was used to
// compute the digest.
func (d Digest) GetDigestFunction() Function {
	return Function{bareFunction: d.function}
}

// GetHashBytes returns the hash of the object as a byte slice.
func (d Digest) GetHashBytes() []byte {
	hash, err := hex.DecodeString(d.hash)
	if err != nil {
		panic("Failed to decode digest hash, even though its contents have already been validated")
	}
	return hash
}

// GetHashString returns the hash of the object in hexadecimal notation.
func (d Digest) GetHashString() string {
	return d.hash
}

// GetSizeBytes returns the size of the object, in bytes.
func (d Digest) GetSizeBytes() int64 {
	return d.sizeBytes
}

// String returns the digest in the format ${hash}-${size}.
func (d Digest) String() string {
	return fmt.Sprintf("%s-%d", d.hash, d.sizeBytes)
}
