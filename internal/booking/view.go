package booking

import (
    "encoding/json"

    "github.com/shopspring/decimal"

    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

// View is a read-only snapshot of the selection for rendering: the current
// chain, the seat set, and the derived option lists computed from the same
// consistent state.  Zero ids and empty strings mark unset fields.
type View struct {
    Movie          *model.Movie      `json:"movie,omitempty"`
    CinemaID       int64             `json:"cinemaId,omitempty"`
    RoomID         int64             `json:"roomId,omitempty"`
    Date           string            `json:"date,omitempty"`
    Time           string            `json:"time,omitempty"`
    ShowtimeID     int64             `json:"showtimeId,omitempty"`
    Slot           string            `json:"slot,omitempty"`
    Seats          []model.Seat      `json:"seats"`
    SeatTotal      decimal.Decimal   `json:"seatTotal"`
    AvailableDates []string          `json:"availableDates"`
    AvailableTimes []TimeOption      `json:"availableTimes"`
    Invitations    map[string]string `json:"invitations"`
    Suggested      json.RawMessage   `json:"suggestedSeats,omitempty"`
    QR             *QRArtifact       `json:"qr,omitempty"`
    Loading        bool              `json:"loading"`
}

// Snapshot captures the selection and its derived lists under one lock so
// the view is internally consistent.
func (s *Selection) Snapshot() View {
    s.mu.Lock()
    defer s.mu.Unlock()
    total := decimal.Zero
    for _, seat := range s.seats {
        total = total.Add(seat.Price)
    }
    invitations := make(map[string]string, len(s.invitations))
    for k, v := range s.invitations {
        invitations[k] = v
    }
    view := View{
        Movie:          s.movie,
        CinemaID:       s.cinemaID,
        RoomID:         s.roomID,
        Date:           s.date,
        Time:           s.timeOfDay,
        ShowtimeID:     s.showtimeID,
        Seats:          append([]model.Seat{}, s.seats...),
        SeatTotal:      total,
        AvailableDates: s.availableDates(),
        AvailableTimes: s.availableTimes(),
        Invitations:    invitations,
        Suggested:      s.suggested,
        QR:             s.qr,
        Loading:        s.loading,
    }
    if s.showtimeID != 0 && s.timeOfDay != "" {
        view.Slot = EncodeSlot(s.showtimeID, s.timeOfDay)
    }
    return view
}
