// Package http exposes the computation of digests over HTTP, together
// with endpoints for health checking and Prometheus metrics.
package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/buildbarn/bb-sha256d/pkg/digest"
	"github.com/buildbarn/bb-sha256d/pkg/util"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"google.golang.org/grpc/codes"
)

// DigestResponse is the body of successful responses returned by the
// digest handler.
type DigestResponse struct {
	Function  string `json:"function"`
	Hash      string `json:"hash"`
	SizeBytes int64  `json:"sizeBytes"`
}

type digestHandler struct {
	maximumRequestSizeBytes int64
}

// NewDigestHandler creates an HTTP handler that computes the digest of
// the request body. The name of the digest function is obtained from
// the "function" route variable.
func NewDigestHandler(maximumRequestSizeBytes int64) http.Handler {
	return &digestHandler{
		maximumRequestSizeBytes: maximumRequestSizeBytes,
	}
}

func (h *digestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	digestFunction, err := digest.NewFunction(mux.Vars(r)["function"])
	if err != nil {
		writeError(w, err)
		return
	}

	generator := digestFunction.NewGenerator(r.ContentLength)
	if _, err := io.Copy(generator, http.MaxBytesReader(w, r.Body, h.maximumRequestSizeBytes)); err != nil {
		writeError(w, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Failed to read request body for digest function %#v", digestFunction.GetName()))
		return
	}
	d := generator.Sum()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DigestResponse{
		Function:  digestFunction.GetName(),
		Hash:      d.GetHashString(),
		SizeBytes: d.GetSizeBytes(),
	})
}

// NewRouter creates an HTTP router that exposes the digest handler,
// Prometheus metrics and a health check endpoint.
func NewRouter(maximumRequestSizeBytes int64) *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/-/healthy", func(http.ResponseWriter, *http.Request) {})
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/digest/{function}", NewDigestHandler(maximumRequestSizeBytes)).Methods(http.MethodPost)
	return router
}
