package listview

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caredash/caredash/internal/platform/upstream"
)

// HTTPError maps the gateway's failure taxonomy onto echo HTTP errors so
// every resource handler reports failures the same way: session expiry is
// a 401, a single-record miss is a 404 with its user-facing message, an
// input problem is a 400 naming the field, and an upstream fetch failure
// is a 502 the console renders as a retryable banner.
func HTTPError(err error) error {
	if errors.Is(err, upstream.ErrSessionExpired) {
		return echo.NewHTTPError(http.StatusUnauthorized, upstream.ErrSessionExpired.Error())
	}
	var nf *upstream.NotFoundError
	if errors.As(err, &nf) {
		return echo.NewHTTPError(http.StatusNotFound, nf.Error())
	}
	var ve *upstream.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"field":   ve.Field,
			"message": ve.Message,
		})
	}
	var ff *upstream.FetchFailure
	if errors.As(err, &ff) {
		return echo.NewHTTPError(http.StatusBadGateway, ff.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
