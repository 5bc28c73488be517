package model

import "github.com/shopspring/decimal"

// ReservationRequest is the payload posted to POST /reservations.  It
// merges caller-supplied checkout fields with the ids held by the booking
// selection; all ids crossing this boundary are plain integers.
type ReservationRequest struct {
    Date           string          `json:"date"`
    StartAt        string          `json:"startAt"`
    TicketPrice    decimal.Decimal `json:"ticketPrice"`
    Total          decimal.Decimal `json:"total"`
    UserID         int64           `json:"userId"`
    MovieID        int64           `json:"movieId"`
    ShowtimeID     int64           `json:"showtimeId"`
    RoomID         int64           `json:"roomId"`
    CinemaID       int64           `json:"cinemaId"`
    Username       string          `json:"username"`
    Phone          string          `json:"phone"`
    Seats          []Seat          `json:"seats"`
    IdempotencyKey string          `json:"idempotencyKey"`
}

// ReservationConfirmation is the portion of the backend response this
// application consumes.  QRCode is optional: when the server does not
// supply one, the front end generates its own artifact from the
// reservation detail URL.
type ReservationConfirmation struct {
    QRCode      string `json:"QRCode"`
    Reservation struct {
        ID int64 `json:"id"`
    } `json:"reservation"`
}
