package http

import (
	"context"
	"net/http"
	"time"

	"github.com/buildbarn/bb-sha256d/pkg/program"
	"github.com/buildbarn/bb-sha256d/pkg/util"
)

// NewServerAndServe spawns an HTTP server as part of a program.Group.
// The server is automatically terminated if the context associated
// with the group is canceled.
func NewServerAndServe(listenAddress string, handler http.Handler, group program.Group) {
	server := http.Server{
		Addr:              listenAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		<-ctx.Done()
		return server.Close()
	})
	group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return util.StatusWrapf(err, "Failed to launch HTTP server %#v", server.Addr)
		}
		return nil
	})
}
