package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zirafica98/neatcommit/internal/api"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			return a.serve(ctx, lis)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":3000", "Address to listen on")
	return cmd
}

// serve runs the API on lis until ctx is done, then drains in-flight
// requests.
func (a *app) serve(ctx context.Context, lis net.Listener) error {
	conf, err := a.loadConfig(".")
	if err != nil {
		return err
	}
	analyzer, err := a.newAnalyzer(conf)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           api.NewServer(analyzer, a.logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(lis)
	}()
	a.logger.Info("server listening",
		zap.String("addr", lis.Addr().String()),
		zap.String("corpus", analyzer.Corpus().Version()),
		zap.Int("rules", analyzer.Corpus().Len()))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.logger.Info("shutting down")
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
