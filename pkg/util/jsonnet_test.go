package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/buildbarn/bb-sha256d/pkg/testutil"
	"github.com/buildbarn/bb-sha256d/pkg/util"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type exampleConfiguration struct {
	Name        string `json:"name"`
	Concurrency int    `json:"concurrency"`
}

func TestUnmarshalConfigurationFromFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		t.Setenv("BB_SHA256D_TEST_NAME", "hello")
		path := filepath.Join(t.TempDir(), "config.jsonnet")
		require.NoError(t, os.WriteFile(path, []byte(`{ name: std.extVar('BB_SHA256D_TEST_NAME'), concurrency: 2 * 4 }`), 0o644))

		var configuration exampleConfiguration
		require.NoError(t, util.UnmarshalConfigurationFromFile(path, &configuration))
		require.Equal(t, exampleConfiguration{Name: "hello", Concurrency: 8}, configuration)
	})

	t.Run("NonexistentFile", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromFile(filepath.Join(t.TempDir(), "nonexistent.jsonnet"), &configuration)
		require.Error(t, err)
		require.Contains(t, status.Convert(err).Message(), "Failed to read file contents: ")
	})
}

func TestUnmarshalConfigurationFromSnippet(t *testing.T) {
	t.Run("SyntaxError", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("config.jsonnet", "{", &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
		require.Contains(t, status.Convert(err).Message(), "Failed to evaluate configuration: ")
	})

	t.Run("UnknownField", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("config.jsonnet", "{ colour: 'blue' }", &configuration)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Failed to unmarshal configuration: json: unknown field \"colour\""), err)
	})

	t.Run("WrongType", func(t *testing.T) {
		var configuration exampleConfiguration
		err := util.UnmarshalConfigurationFromSnippet("config.jsonnet", "{ concurrency: 'many' }", &configuration)
		require.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}
