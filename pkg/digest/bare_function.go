package digest

import (
	"hash"
	"sort"

	"github.com/buildbarn/bb-sha256d/pkg/sha256"
	"github.com/buildbarn/go-sha256tree"
	"github.com/zeebo/blake3"
)

// bareFunction contains all of the properties of a digest function.
// Exactly one instance is declared for each of the digest functions
// that are supported by this implementation.
type bareFunction struct {
	name          string
	hasherFactory func(expectedSizeBytes int64) hash.Hash
	hashBytesSize int
}

var (
	blake3BareFunction = bareFunction{
		name: "blake3",
		hasherFactory: func(expectedSizeBytes int64) hash.Hash {
			return blake3.New()
		},
		hashBytesSize: 32,
	}
	sha256BareFunction = bareFunction{
		name: "sha256",
		hasherFactory: func(expectedSizeBytes int64) hash.Hash {
			return sha256.New()
		},
		hashBytesSize: sha256.Size,
	}
	sha256dBareFunction = bareFunction{
		name: "sha256d",
		hasherFactory: func(expectedSizeBytes int64) hash.Hash {
			return sha256.NewDouble()
		},
		hashBytesSize: sha256.Size,
	}
	sha256treeBareFunction = bareFunction{
		name:          "sha256tree",
		hasherFactory: sha256tree.New,
		hashBytesSize: sha256tree.Size,
	}
)

var bareFunctionsByName = map[string]*bareFunction{
	blake3BareFunction.name:     &blake3BareFunction,
	sha256BareFunction.name:     &sha256BareFunction,
	sha256dBareFunction.name:    &sha256dBareFunction,
	sha256treeBareFunction.name: &sha256treeBareFunction,
}

// SupportedDigestFunctions is the list of names of digest functions
// that may be passed to NewFunction(), in alphabetic order.
var SupportedDigestFunctions = func() []string {
	names := make([]string, 0, len(bareFunctionsByName))
	for name := range bareFunctionsByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()
