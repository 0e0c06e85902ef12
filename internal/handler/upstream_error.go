package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/noah-isme/monev-api/internal/upstream"
	appErrors "github.com/noah-isme/monev-api/pkg/errors"
)

// upstreamError translates a failed SAS call into the error returned to the dashboard.
func upstreamError(err error) error {
	var appErr *appErrors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if status := upstream.StatusCode(err); status != 0 {
		if status == http.StatusNotFound {
			return appErrors.Wrap(err, appErrors.ErrNotFound.Code, http.StatusNotFound, "upstream resource not found")
		}
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, fmt.Sprintf("upstream returned status %d", status))
	}
	switch {
	case errors.Is(err, upstream.ErrTransport):
		return appErrors.Wrap(err, appErrors.ErrUpstreamUnavailable.Code, appErrors.ErrUpstreamUnavailable.Status, appErrors.ErrUpstreamUnavailable.Message)
	case errors.Is(err, upstream.ErrDecode):
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, "invalid upstream response")
	}
	return appErrors.FromError(err)
}

func bindError(err error) error {
	return appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query parameters")
}
