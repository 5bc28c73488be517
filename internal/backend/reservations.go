package backend

import (
    "context"
    "encoding/json"
    "net/http"
    "net/url"

    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

// CreateReservation posts a finalized booking.  All ids in the request are
// already plain integers; the response is decoded only as far as this
// application consumes it.
func (c *Client) CreateReservation(ctx context.Context, req model.ReservationRequest) (*model.ReservationConfirmation, error) {
    var conf model.ReservationConfirmation
    if err := c.do(ctx, http.MethodPost, "/reservations", req, &conf); err != nil {
        return nil, err
    }
    return &conf, nil
}

// SuggestedSeats fetches the server-computed seat suggestion for a user.
// The payload is opaque to this application and handed through raw.
func (c *Client) SuggestedSeats(ctx context.Context, username string) (json.RawMessage, error) {
    path := "/reservations/usermodeling/" + url.PathEscape(username)
    var payload json.RawMessage
    if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
        return nil, err
    }
    return payload, nil
}

// SendInvitations posts the seat-key → email mapping for a booking.
func (c *Client) SendInvitations(ctx context.Context, invitations map[string]string) error {
    return c.do(ctx, http.MethodPost, "/invitations", invitations, nil)
}
