// Package booking owns the in-progress booking selection for one browser
// session: the cinema/room/date/time chain, the chosen seats, invitation
// state and the QR artifact produced after a successful reservation.  All
// seat-availability and persistence logic lives behind the backend API;
// this package only keeps the client-side selection coherent.
package booking

import (
    "context"
    "encoding/json"
    "errors"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

// FallbackMessage is the user-facing text used when a failed API call does
// not carry a server-provided message.
const FallbackMessage = "something went wrong, please try again"

// API is the slice of the backend client the selection needs.  It is an
// interface so tests can drive the selection against a stub without a
// running backend.
type API interface {
    CreateReservation(ctx context.Context, req model.ReservationRequest) (*model.ReservationConfirmation, error)
    SuggestedSeats(ctx context.Context, username string) (json.RawMessage, error)
    SendInvitations(ctx context.Context, invitations map[string]string) error
}

// Result tags the outcome of an API-backed operation.  Callers must branch
// on OK; a false value always carries a non-empty Message suitable for
// display.  API errors never propagate out of the selection as plain
// errors.
type Result struct {
    OK           bool                           `json:"ok"`
    Message      string                         `json:"message,omitempty"`
    Confirmation *model.ReservationConfirmation `json:"confirmation,omitempty"`
}

// failure builds an error-tagged Result, preferring the server-provided
// message when the error is an APIError and falling back to the generic
// text otherwise.
func failure(err error) Result {
    var apiErr *backend.APIError
    if errors.As(err, &apiErr) && apiErr.Message != "" {
        return Result{OK: false, Message: apiErr.Message}
    }
    return Result{OK: false, Message: FallbackMessage}
}
