package httpd

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hellodev/cli/pkg/greeting"
	"github.com/hellodev/cli/pkg/logger"
	"github.com/hellodev/cli/pkg/version"
	"github.com/pkg/errors"
)

// maxNameLength bounds the name query parameter.
const maxNameLength = 512

// GreetResponse is the JSON body returned by the greet endpoint.
type GreetResponse struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
}

// HealthResponse is the JSON body returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// wrap is a helper for implementing HTTP handlers. Any returned errors
// will be written to the HTTP response using WriteHTTPError.
func wrap(f func(ctx context.Context, w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Debug("Panic detected: %v", rec)
				sentry.CurrentHub().Recover(rec)
				sentry.Flush(time.Second * 5)
				WriteHTTPError(w, r, errors.Errorf("internal error: %v", rec))
			}
		}()

		if err := f(r.Context(), w, r); err != nil {
			WriteHTTPError(w, r, err)
		}
	}
}

// classicHandler writes the classic greeting as plain text.
func classicHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	return greeting.Fprintln(w, greeting.New(""))
}

// greetHandler writes a greeting for the name query parameter. Each response
// carries a unique id.
func greetHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	name := r.URL.Query().Get("name")
	if len(name) > maxNameLength {
		return &NameTooLongError{Length: len(name)}
	}

	g := greeting.New(name)
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(GreetResponse{
		ID:   uuid.NewString(),
		Name: g.Name,
		Text: g.Text,
	})
}

// healthHandler reports server health and build metadata.
func healthHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(HealthResponse{
		Status:  "ok",
		Version: version.Get(),
	})
}

func notFoundHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return &RouteNotFoundError{Path: r.URL.Path}
}
