package errutil

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mandap-labs/vivaha/pkg/utils/logging"
)

var sentryEnabled atomic.Bool

// EnableSentry turns on error forwarding to Sentry. The Sentry SDK must
// be initialized by the caller before enabling.
func EnableSentry() {
	sentryEnabled.Store(true)
}

func report(err error) {
	if !sentryEnabled.Load() {
		return
	}
	hub := sentry.CurrentHub()
	hub.WithScope(func(scope *sentry.Scope) {
		var ge *goerr.Error
		if errors.As(err, &ge) {
			scope.SetContext("error_values", sentry.Context(ge.Values()))
		}
		hub.CaptureException(err)
	})
}

// Handle logs the error with a message and reports it, then returns the
// error for the caller to propagate. All 5xx-class failures should pass
// through here so they are never silently dropped.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	report(err)

	return err
}

// HandleHTTP logs the error and writes an appropriate HTTP error response
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error("HTTP error",
			"status", statusCode,
			"error", err.Error(),
		)
	}

	if statusCode >= http.StatusInternalServerError {
		report(err)
	}

	http.Error(w, err.Error(), statusCode)
}
