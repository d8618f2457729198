// Package httpserver runs an http.Handler with graceful shutdown, configurable
// timeouts and health-check handlers.
//
// Run binds the listener before serving, so start hooks and Addr see the real
// address even for ":0". It returns when the context is canceled or Shutdown is
// called; signal handling is left to the caller (see signal.NotifyContext).
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//	    return err
//	}
//
// LivenessHandler and ReadinessHandler serve the usual probe endpoints;
// readiness runs a list of named checks such as pg.Healthcheck(pool).
//
// Listen errors are wrapped with ErrStart and shutdown errors with ErrShutdown.
package httpserver
