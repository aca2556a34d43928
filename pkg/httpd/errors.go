package httpd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hellodev/cli/pkg/analytics"
	"github.com/hellodev/cli/pkg/logger"
)

// NameTooLongError is returned when the name query parameter exceeds
// maxNameLength.
type NameTooLongError struct {
	Length int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("name too long: %d characters (max %d)", e.Length, maxNameLength)
}

// RouteNotFoundError is returned for requests that match no route.
type RouteNotFoundError struct {
	Path string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no such route: %s", e.Path)
}

type errorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// WriteHTTPError writes err to the response as JSON. Server errors are
// reported to sentry.
func WriteHTTPError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch err.(type) {
	case *NameTooLongError:
		status = http.StatusBadRequest
	case *RouteNotFoundError:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		analytics.ReportError(err)
	}

	resp, merr := json.Marshal(errorResponse{
		Code:  status,
		Error: err.Error(),
	})
	if merr != nil {
		logger.Error("errored while writing HTTP error: %v", merr)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprint(w, string(resp))
}
