package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/fxnlabs/kermaview/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the HTTP server to an fx application. The application
// must supply a *zap.Logger, *config.Config, cuda.Limits and a
// *kernel.SelectionModel.
var Module = fx.Module("server",
	fx.Provide(New, NewHTTPServer),
	fx.Invoke(func(*http.Server) {}),
)

// NewHTTPServer creates the http.Server for s, bound to the configured
// listen address for the lifetime of lc.
func NewHTTPServer(lc fx.Lifecycle, cfg *config.Config, s *Server, log *zap.Logger) *http.Server {
	srv := &http.Server{Addr: cfg.ListenAddr(), Handler: s.Handler()}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("Starting server on", zap.String("address", ln.Addr().String()))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping server")
			return srv.Shutdown(ctx)
		},
	})
	return srv
}
