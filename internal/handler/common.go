package handler

import (
    "context"
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
    "github.com/NHDanDz/movieapp-sub001/internal/booking"
)

// apiFailure renders a failed backend call as a tagged error body.  The
// server-provided message is relayed when one exists; otherwise the
// generic fallback is shown.  4xx statuses from the backend are passed
// through, everything else becomes a 502.
func apiFailure(c echo.Context, err error) error {
    status := http.StatusBadGateway
    message := booking.FallbackMessage
    var apiErr *backend.APIError
    if errors.As(err, &apiErr) {
        if apiErr.Message != "" {
            message = apiErr.Message
        }
        if apiErr.Status >= 400 && apiErr.Status < 500 {
            status = apiErr.Status
        }
    }
    return c.JSON(status, booking.Result{OK: false, Message: message})
}

// contextWithTimeout is a detached context for work that outlives the
// request, such as best-effort event publishing.
func contextWithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
    return context.WithTimeout(context.Background(), d)
}
