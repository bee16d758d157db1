package ui

import (
	"context"
	"errors"
	"net/http"

	"github.com/fjod/go_storefront/internal/api"
	"github.com/fjod/go_storefront/internal/checkout"
)

// errStatus maps core errors to HTTP responses. Validation problems are
// the caller's fault, a poll timeout is retryable, everything remote is
// a bad gateway.
func errStatus(err error) (int, string) {
	var remote *api.RemoteError

	switch {
	case errors.Is(err, checkout.ErrNoCart),
		errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrIncompleteContact):
		return http.StatusBadRequest, "validation_failed"

	case errors.Is(err, checkout.ErrPaymentTimeout):
		return http.StatusGatewayTimeout, "payment_timeout"

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"

	case errors.As(err, &remote):
		if remote.StatusCode == http.StatusNotFound {
			return http.StatusNotFound, "not_found"
		}
		return http.StatusBadGateway, "upstream_error"

	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func respondCoreError(w http.ResponseWriter, err error) {
	status, code := errStatus(err)
	respondError(w, status, code, err.Error())
}
