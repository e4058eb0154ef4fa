// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"cloudeng.io/logging/ctxlog"
	"golang.org/x/sync/errgroup"
)

// ShutdownGrace is the time allowed for in-flight requests to complete
// once a server is asked to stop.
var ShutdownGrace = 5 * time.Second

// NewHTTPServer returns a new *http.Server whose BaseContext is set to ctx
// and whose ErrorLog logs via the context's logger.
func NewHTTPServer(ctx context.Context, addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Minute,
		ErrorLog:          slog.NewLogLogger(ctxlog.Logger(ctx).Handler(), slog.LevelError),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// Serve listens on addr and serves handler until ctx is canceled, the
// server is then shut down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %v: %w", addr, err)
	}
	return ServeListener(ctx, ln, handler)
}

// ServeListener is like Serve but uses the supplied listener.
func ServeListener(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := NewHTTPServer(ctx, ln.Addr().String(), handler)
	logger := ctxlog.Logger(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server %v, unexpected error: %w", srv.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("server being shut down", "addr", srv.Addr, "grace", ShutdownGrace)
		// The original context is already done.
		sctx, cancel := context.WithTimeout(context.Background(), ShutdownGrace)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("server %v, shutdown failed %s: %w", srv.Addr, ShutdownGrace, err)
		}
		return nil
	})
	return g.Wait()
}
