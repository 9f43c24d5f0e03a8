// Package configuration contains the configuration schema of
// bb_sha256d, which is provided as a Jsonnet file.
package configuration

import (
	"encoding/hex"

	"github.com/buildbarn/bb-sha256d/pkg/batch"
	"github.com/buildbarn/bb-sha256d/pkg/digest"
	"github.com/buildbarn/bb-sha256d/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// InputConfiguration refers to an object of which the digest needs to
// be computed. Exactly one of its fields needs to be set.
type InputConfiguration struct {
	// Path of a file on disk. Files with the ".zst" extension are
	// decompressed before being hashed.
	Path string `json:"path,omitempty"`
	// Literal string.
	Literal *string `json:"literal,omitempty"`
	// Binary data in hexadecimal notation.
	Hex *string `json:"hex,omitempty"`
}

// ApplicationConfiguration is the top-level configuration message of
// bb_sha256d. Its fields use the lowerCamelCase names that protojson
// would use if this were a Protobuf message, so configuration files
// look the same as those of other Buildbarn components.
type ApplicationConfiguration struct {
	DigestFunction          string               `json:"digestFunction"`
	Inputs                  []InputConfiguration `json:"inputs"`
	Concurrency             int64                `json:"concurrency"`
	Debug                   bool                 `json:"debug"`
	SelfTest                bool                 `json:"selfTest"`
	HTTPListenAddress       string               `json:"httpListenAddress"`
	MaximumRequestSizeBytes int64                `json:"maximumRequestSizeBytes"`
}

// GetApplicationConfiguration reads the configuration from a Jsonnet
// file, filling in defaults for fields that are not set.
func GetApplicationConfiguration(path string) (*ApplicationConfiguration, error) {
	var configuration ApplicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(path, &configuration); err != nil {
		return nil, util.StatusWrapf(err, "Failed to read configuration from %s", path)
	}
	setDefaultValues(&configuration)
	return &configuration, nil
}

func setDefaultValues(configuration *ApplicationConfiguration) {
	if configuration.DigestFunction == "" {
		configuration.DigestFunction = "sha256d"
	}
	if configuration.Concurrency <= 0 {
		configuration.Concurrency = 1
	}
	if configuration.MaximumRequestSizeBytes <= 0 {
		configuration.MaximumRequestSizeBytes = 64 * 1024 * 1024
	}
}

// GetDigestFunction returns the digest function that is used to hash
// inputs.
func (c *ApplicationConfiguration) GetDigestFunction() (digest.Function, error) {
	f, err := digest.NewFunction(c.DigestFunction)
	if err != nil {
		return digest.Function{}, util.StatusWrap(err, "Invalid digest function")
	}
	return f, nil
}

// NewInput converts the configuration of an input to a batch.Input.
func (c *InputConfiguration) NewInput() (batch.Input, error) {
	set := 0
	if c.Path != "" {
		set++
	}
	if c.Literal != nil {
		set++
	}
	if c.Hex != nil {
		set++
	}
	if set != 1 {
		return batch.Input{}, status.Error(codes.InvalidArgument, "Exactly one of \"path\", \"literal\" and \"hex\" must be set")
	}

	switch {
	case c.Path != "":
		return batch.NewFileInput(c.Path), nil
	case c.Literal != nil:
		return batch.NewBytesInput(*c.Literal, []byte(*c.Literal)), nil
	default:
		data, err := hex.DecodeString(*c.Hex)
		if err != nil {
			return batch.Input{}, util.StatusWrapWithCode(err, codes.InvalidArgument, "Invalid hexadecimal data")
		}
		return batch.NewBytesInput(*c.Hex, data), nil
	}
}

// GetInputs converts the configuration of all inputs to batch.Input
// objects.
func (c *ApplicationConfiguration) GetInputs() ([]batch.Input, error) {
	inputs := make([]batch.Input, 0, len(c.Inputs))
	for i := range c.Inputs {
		input, err := c.Inputs[i].NewInput()
		if err != nil {
			return nil, util.StatusWrapf(err, "Invalid input at index %d", i)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}
