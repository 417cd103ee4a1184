package errutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/mandap-labs/vivaha/pkg/utils/errutil"
)

func TestHandle(t *testing.T) {
	ctx := context.Background()

	t.Run("nil error passes through", func(t *testing.T) {
		gt.NoError(t, errutil.Handle(ctx, nil, "should not log"))
	})

	t.Run("returns the error unchanged", func(t *testing.T) {
		cause := goerr.New("boom", goerr.V("vendor_id", "v-1"))
		err := errutil.Handle(ctx, cause, "persist failed")
		gt.Error(t, err).Is(cause)
	})

	t.Run("reporting a goerr with sentry enabled does not panic", func(t *testing.T) {
		// The SDK is not initialized here; CurrentHub has no client and
		// CaptureException is a no-op. The structured values still flow
		// through the scope context.
		errutil.EnableSentry()
		cause := goerr.New("boom", goerr.V("slot_id", "portfolio"))
		err := errutil.Handle(ctx, cause, "persist failed")
		gt.Error(t, err).Is(cause)
	})
}

func TestHandleHTTP(t *testing.T) {
	rec := httptest.NewRecorder()
	errutil.HandleHTTP(context.Background(), rec, goerr.New("bad input"), http.StatusBadRequest)

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	gt.Bool(t, strings.Contains(rec.Body.String(), "bad input")).True()
}
