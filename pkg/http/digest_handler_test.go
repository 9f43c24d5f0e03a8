package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bb_http "github.com/buildbarn/bb-sha256d/pkg/http"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
)

func TestRouter(t *testing.T) {
	router := bb_http.NewRouter(1024)

	t.Run("SHA256D", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/digest/sha256d", strings.NewReader("abc")))
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var response bb_http.DigestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(t, bb_http.DigestResponse{
			Function:  "sha256d",
			Hash:      "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358",
			SizeBytes: 3,
		}, response)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/digest/sha256", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	})

	t.Run("UnknownFunction", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/digest/md5", strings.NewReader("abc")))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Unknown digest function \"md5\"")
	})

	t.Run("BodyTooLarge", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/digest/sha256", strings.NewReader(strings.Repeat("x", 2048))))
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Failed to read request body for digest function \"sha256\": ")
	})

	t.Run("WrongMethod", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/digest/sha256", nil))
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("Healthy", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/healthy", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestStatusCodeFromGRPCCode(t *testing.T) {
	require.Equal(t, http.StatusOK, bb_http.StatusCodeFromGRPCCode(codes.OK))
	require.Equal(t, 499, bb_http.StatusCodeFromGRPCCode(codes.Canceled))
	require.Equal(t, http.StatusBadRequest, bb_http.StatusCodeFromGRPCCode(codes.InvalidArgument))
	require.Equal(t, http.StatusNotFound, bb_http.StatusCodeFromGRPCCode(codes.NotFound))
	require.Equal(t, http.StatusInternalServerError, bb_http.StatusCodeFromGRPCCode(codes.Internal))
}
