// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// ReservationConfirmedEvent is published after the backend accepts a
// reservation.  It carries enough for downstream consumers (ticket log,
// notifications, analytics) without having to call the backend again.
type ReservationConfirmedEvent struct {
    ReservationID  int64    `json:"reservation_id"`
    MovieID        int64    `json:"movie_id"`
    MovieTitle     string   `json:"movie_title"`
    CinemaID       int64    `json:"cinema_id"`
    RoomID         int64    `json:"room_id"`
    ShowtimeID     int64    `json:"showtime_id"`
    Date           string   `json:"date"`
    StartAt        string   `json:"start_at"`
    Username       string   `json:"username"`
    SeatLabels     []string `json:"seats"`
    Total          string   `json:"total"`
    ConfirmedAt    string   `json:"confirmed_at"`
}
