// Package httpd implements the local greeting API server.
package httpd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/hellodev/cli/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const (
	shutdownTimeoutDuration = 10 * time.Second
)

// corsOrigins are the origins allowed to call the API from a browser.
var corsOrigins = []*regexp.Regexp{
	regexp.MustCompile(`^http://localhost:`),
	regexp.MustCompile(`^http://127.0.0.1:`),
}

// Route returns the greeting API router.
func Route() *mux.Router {
	router := mux.NewRouter()
	router.Use(handlers.CORS(
		handlers.AllowedOriginValidator(func(origin string) bool {
			for _, o := range corsOrigins {
				if o.MatchString(origin) {
					return true
				}
			}
			return false
		}),
		handlers.AllowedHeaders([]string{"content-type"}),
		handlers.AllowedMethods([]string{"GET", "OPTIONS"}),
	))

	router.HandleFunc("/", wrap(classicHandler)).Methods("GET")
	router.HandleFunc("/greet", wrap(greetHandler)).Methods("GET")
	router.HandleFunc("/health", wrap(healthHandler)).Methods("GET")
	router.NotFoundHandler = wrap(notFoundHandler)
	return router
}

// ServeWithGracefulShutdown starts the server and gracefully shuts down on
// SIGINT or SIGTERM, or when ctx is canceled.
func ServeWithGracefulShutdown(
	ctx context.Context,
	server *http.Server,
) error {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Log("listening and serving on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		// The listener failed before any shutdown was requested.
		return err
	case <-signalChan:
	case <-ctx.Done():
	}

	logger.Warning("server shutting down: waiting up to %s", shutdownTimeoutDuration)

	// The shutdown timeout is independent of ctx, which is typically already
	// canceled by the time we get here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeoutDuration)
	defer cancel()

	shutdownErr := server.Shutdown(shutdownCtx)

	var lateServeErr error
	select {
	case lateServeErr = <-serveErr:
	default:
	}

	if err := multierr.Combine(lateServeErr, shutdownErr); err != nil {
		return errors.Wrap(err, "server shutdown")
	}

	logger.Log("server shutdown successfully")
	return nil
}
