package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"studyflow/internal/logging"
)

func (r *RootCommand) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until interrupted.

The server shuts down gracefully on SIGINT or SIGTERM, waiting up to the
configured shutdown timeout for in-flight requests.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return r.serve(ctx)
		},
	}
}

func (r *RootCommand) serve(ctx context.Context) error {
	logger, err := logging.New(r.config.Log)
	if err != nil {
		return NewErrorHandler().Handle("configure logging", err)
	}
	defer logger.Sync() //nolint:errcheck

	if r.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := NewApp(ctx, r.config, logger, r.newModel)
	if err != nil {
		return NewErrorHandler().Handle("start server", err)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         r.config.Addr(),
		Handler:      app.Handler(),
		ReadTimeout:  r.config.Server.ReadTimeout,
		WriteTimeout: r.config.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("environment", r.config.Application.Env),
			zap.String("database", r.config.Database.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return NewErrorHandler().Handle("serve", err)
	}
	logger.Info("server stopped")
	return nil
}
