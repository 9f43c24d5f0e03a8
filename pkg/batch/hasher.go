// Package batch computes digests of many independent inputs
// concurrently. Every input is hashed by its own generator, so no
// state is shared between concurrent computations.
package batch

import (
	"context"
	"io"

	"github.com/buildbarn/bb-sha256d/pkg/digest"
	"github.com/buildbarn/bb-sha256d/pkg/program"
	"github.com/buildbarn/bb-sha256d/pkg/util"

	"golang.org/x/sync/semaphore"
)

// Result of hashing a single input.
type Result struct {
	Name   string
	Digest digest.Digest
}

// Hasher of batches of inputs.
type Hasher struct {
	digestFunction digest.Function
	concurrency    *semaphore.Weighted
}

// NewHasher creates a Hasher that computes digests using a given
// digest function, hashing at most maximumConcurrency inputs at once.
func NewHasher(digestFunction digest.Function, maximumConcurrency int64) *Hasher {
	if maximumConcurrency < 1 {
		maximumConcurrency = 1
	}
	return &Hasher{
		digestFunction: digestFunction,
		concurrency:    semaphore.NewWeighted(maximumConcurrency),
	}
}

// HashAll computes the digests of all inputs. Results are returned in
// the same order as the inputs. If hashing any of the inputs fails,
// hashing of the remaining inputs is canceled and the first error is
// returned.
func (h *Hasher) HashAll(ctx context.Context, inputs []Input) ([]Result, error) {
	results := make([]Result, len(inputs))
	if err := program.RunLocal(ctx, func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		for i, input := range inputs {
			if err := util.AcquireSemaphore(ctx, h.concurrency, 1); err != nil {
				return err
			}
			siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				defer h.concurrency.Release(1)
				d, err := h.hash(ctx, input)
				if err != nil {
					return util.StatusWrapf(err, "Input %#v", input.Name)
				}
				results[i] = Result{
					Name:   input.Name,
					Digest: d,
				}
				return nil
			})
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return results, nil
}

// readChunkSizeBytes is the size of the buffer used to read inputs.
// Cancelation is checked in between chunks.
const readChunkSizeBytes = 64 * 1024

func (h *Hasher) hash(ctx context.Context, input Input) (digest.Digest, error) {
	r, err := input.Open()
	if err != nil {
		return digest.BadDigest, err
	}
	defer r.Close()

	generator := h.digestFunction.NewGenerator(input.SizeBytes)
	buffer := make([]byte, readChunkSizeBytes)
	for {
		if err := util.StatusFromContext(ctx); err != nil {
			return digest.BadDigest, err
		}
		n, err := r.Read(buffer)
		generator.Write(buffer[:n])
		if err == io.EOF {
			return generator.Sum(), nil
		} else if err != nil {
			return digest.BadDigest, util.StatusWrap(err, "Failed to read input")
		}
	}
}
