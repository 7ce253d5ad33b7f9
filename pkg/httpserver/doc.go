// Package httpserver runs an http.Handler until its context is canceled and
// then shuts it down gracefully.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	g.Go(func() error { return srv.Run(ctx, router) })
//
// Signal handling belongs to the caller: cancel ctx on SIGINT or SIGTERM
// (signal.NotifyContext) and Run drains in-flight requests for at most the
// shutdown timeout.
//
// HealthCheckHandler serves liveness and readiness probes. Errors are wrapped
// with ErrStart and ErrShutdown for errors.Is.
package httpserver
