package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/buildbarn/bb-sha256d/pkg/batch"
	"github.com/buildbarn/bb-sha256d/pkg/configuration"
	"github.com/buildbarn/bb-sha256d/pkg/digest"
	bb_http "github.com/buildbarn/bb-sha256d/pkg/http"
	"github.com/buildbarn/bb-sha256d/pkg/program"
	"github.com/buildbarn/bb-sha256d/pkg/sha256"
	"github.com/buildbarn/bb-sha256d/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// A utility for computing SHA-256d digests, similar to sha256sum. The
// objects to hash are listed in its configuration file. Digests are
// written to stdout, one line per object.
//
// Optionally, the utility can continue to run after hashing these
// objects, offering an HTTP endpoint that computes digests of request
// bodies and exposes Prometheus metrics.

func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if len(os.Args) != 2 {
			return status.Error(codes.InvalidArgument, "Usage: bb_sha256d bb_sha256d.jsonnet")
		}
		configuration, err := configuration.GetApplicationConfiguration(os.Args[1])
		if err != nil {
			return err
		}
		digest.RegisterPrometheusMetrics()

		if configuration.SelfTest {
			if err := sha256.SelfTest(); err != nil {
				return util.StatusWrap(err, "Self test failed")
			}
			log.Print("Self test passed")
		}

		digestFunction, err := configuration.GetDigestFunction()
		if err != nil {
			return err
		}
		inputs, err := configuration.GetInputs()
		if err != nil {
			return err
		}

		if configuration.HTTPListenAddress != "" {
			bb_http.NewServerAndServe(
				configuration.HTTPListenAddress,
				bb_http.NewRouter(configuration.MaximumRequestSizeBytes),
				siblingsGroup)
		}

		if configuration.Debug {
			for _, input := range inputs {
				if err := writeTrace(input); err != nil {
					return util.StatusWrapf(err, "Failed to trace input %#v", input.Name)
				}
			}
		}

		results, err := batch.NewHasher(digestFunction, configuration.Concurrency).HashAll(ctx, inputs)
		if err != nil {
			return err
		}
		for _, result := range results {
			fmt.Printf("%s  %s\n", result.Digest.GetHashString(), result.Name)
		}
		return nil
	})
}

// writeTrace logs the blocks of an input and the SHA-256 state after
// processing each of them.
func writeTrace(input batch.Input) error {
	r, err := input.Open()
	if err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return util.StatusWrap(err, "Failed to read input")
	}

	log.Printf("Trace of %#v:", input.Name)
	state, err := sha256.WriteTrace(log.Writer(), data)
	if err != nil {
		return util.StatusWrap(err, "Failed to write trace")
	}
	log.Printf("SHA-256 digest of %#v: %x", input.Name, state.Sum())
	return nil
}
