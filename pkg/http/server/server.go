package server

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New wraps the handler in a net/http server bound to the configured port,
// with the parent context threaded into every request.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:    ":" + strconv.Itoa(config.Port),
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      config.Timeout,
		IdleTimeout:       time.Minute,
	}
}
