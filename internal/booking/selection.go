package booking

import (
    "context"
    "encoding/json"
    "fmt"
    "sort"
    "sync"

    "github.com/google/uuid"
    "github.com/samber/lo"
    "github.com/shopspring/decimal"
    "github.com/sirupsen/logrus"

    "github.com/NHDanDz/movieapp-sub001/internal/model"
    "github.com/NHDanDz/movieapp-sub001/internal/ticket"
)

// Selection is the booking state machine for one session.  Selections form
// a strict dependency chain (cinema → room → date → time/showtime):
// changing an upstream field unconditionally clears everything downstream
// of it.  Derived option lists are never stored; they are recomputed from
// the ingested showtimes and the current chain on every read.
//
// One Selection exists per browser session.  The mutex serializes handler
// access; it also backs the submit lock that makes a second AddReservation
// while one is in flight fail fast instead of racing.
type Selection struct {
    mu  sync.Mutex
    api API

    // origin is the public base URL of this front end, used to build the
    // reservation detail link encoded into locally generated QR codes.
    origin string
    qrPNG  func(content string) ([]byte, error)

    movie     *model.Movie
    showtimes []model.Showtime // all showtimes of the selected movie

    cinemaID   int64 // 0 = unset
    roomID     int64
    date       string // "YYYY-MM-DD"
    timeOfDay  string // "HH:MM"; set and cleared jointly with showtimeID
    showtimeID int64

    seats       []model.Seat
    suggested   json.RawMessage
    invitations map[string]string // seat key -> email
    qr          *QRArtifact

    loading bool
}

// QRArtifact is the proof-of-reservation carried after a successful
// submission: either the code the server returned verbatim, or a locally
// rendered PNG encoding the reservation detail URL.
type QRArtifact struct {
    Code string `json:"code,omitempty"`
    URL  string `json:"url,omitempty"`
    PNG  []byte `json:"png,omitempty"`
}

// TimeOption is one selectable slot for the chosen room and date, carrying
// the showtime id alongside the display time.
type TimeOption struct {
    ShowtimeID int64  `json:"showtimeId"`
    Time       string `json:"time"`
}

// CheckoutInput carries the caller-supplied portion of a reservation
// submission.  The selection merges it with the ids and seats it holds;
// nothing is validated locally.
type CheckoutInput struct {
    Date        string          `json:"date"`
    StartAt     string          `json:"startAt"`
    TicketPrice decimal.Decimal `json:"ticketPrice"`
    Total       decimal.Decimal `json:"total"`
    UserID      int64           `json:"userId"`
    Username    string          `json:"username"`
    Phone       string          `json:"phone"`
}

// New creates an empty selection bound to the given backend API.  origin
// is the public base URL used for locally generated QR links.
func New(api API, origin string) *Selection {
    return &Selection{
        api:         api,
        origin:      origin,
        qrPNG:       ticket.QRCodePNG,
        invitations: map[string]string{},
    }
}

// SetMovie sets the movie being booked and ingests its showtimes.  The
// whole downstream chain is cleared: a new movie invalidates every prior
// choice.
func (s *Selection) SetMovie(m *model.Movie, showtimes []model.Showtime) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.movie = m
    s.showtimes = showtimes
    s.clearFromCinema()
}

// SetCinema sets the cinema and clears room, date, time and showtime.  Any
// id is accepted; validity is the backend's concern.
func (s *Selection) SetCinema(cinemaID int64) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.cinemaID = cinemaID
    s.clearFromRoom()
}

// SetRoom sets the room and clears date, time and showtime.
func (s *Selection) SetRoom(roomID int64) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.roomID = roomID
    s.clearFromDate()
}

// SetDate sets the calendar date and clears time and showtime.
func (s *Selection) SetDate(date string) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.date = date
    s.clearSlot()
}

// SetTimeSlot sets the chosen time and showtime together.  The two fields
// are a single choice viewed twice and are never set independently.
func (s *Selection) SetTimeSlot(showtimeID int64, timeOfDay string) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.showtimeID = showtimeID
    s.timeOfDay = timeOfDay
}

// ToggleSeat selects the seat when its (row, number) coordinate is not in
// the set and deselects it when it is.  Toggling the same coordinate twice
// is a no-op overall.
func (s *Selection) ToggleSeat(seat model.Seat) {
    s.mu.Lock()
    defer s.mu.Unlock()
    for i, held := range s.seats {
        if held.Row == seat.Row && held.Number == seat.Number {
            s.seats = append(s.seats[:i], s.seats[i+1:]...)
            return
        }
    }
    s.seats = append(s.seats, seat)
}

// IsSeatSelected reports whether the coordinate is currently selected.
func (s *Selection) IsSeatSelected(row string, number int) bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    for _, held := range s.seats {
        if held.Row == row && held.Number == number {
            return true
        }
    }
    return false
}

// SetInvitation records an invitation email for a selected seat key.
func (s *Selection) SetInvitation(seatKey, email string) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.invitations[seatKey] = email
}

// ResetBooking clears the whole selection except the movie: cinema, room,
// date, time, showtime, seats, suggestion, invitations and QR artifact.
// The movie choice survives so the user can immediately start over within
// the same movie's flow.
func (s *Selection) ResetBooking() {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.clearFromCinema()
}

// ResetCheckout clears only the invitation state.  Used when the user
// returns from checkout to seat selection; seats and the chain stay.
func (s *Selection) ResetCheckout() {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.invitations = map[string]string{}
}

// Loading reports whether a network call is currently in flight.
func (s *Selection) Loading() bool {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.loading
}

// clearFromCinema clears cinema and everything below it.
func (s *Selection) clearFromCinema() {
    s.cinemaID = 0
    s.clearFromRoom()
    s.seats = nil
    s.suggested = nil
    s.invitations = map[string]string{}
    s.qr = nil
}

func (s *Selection) clearFromRoom() {
    s.roomID = 0
    s.clearFromDate()
}

func (s *Selection) clearFromDate() {
    s.date = ""
    s.clearSlot()
}

func (s *Selection) clearSlot() {
    s.timeOfDay = ""
    s.showtimeID = 0
}

// roomShowtimes returns the ingested showtimes for the selected room.
// Callers must hold the mutex.
func (s *Selection) roomShowtimes() []model.Showtime {
    if s.roomID == 0 {
        return nil
    }
    return lo.Filter(s.showtimes, func(st model.Showtime, _ int) bool {
        return st.RoomID == s.roomID
    })
}

// AvailableDates returns the sorted distinct start dates of the selected
// room's showtimes.  Dates are ISO formatted, so string order is
// chronological order.
func (s *Selection) AvailableDates() []string {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.availableDates()
}

func (s *Selection) availableDates() []string {
    dates := lo.Uniq(lo.Map(s.roomShowtimes(), func(st model.Showtime, _ int) string {
        return st.StartDate
    }))
    sort.Strings(dates)
    return dates
}

// AvailableTimes returns the slots of the selected room on the selected
// date, ascending by parsed (hour, minute).  Slots whose time cannot be
// parsed sort last so one malformed record does not hide the rest.
func (s *Selection) AvailableTimes() []TimeOption {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.availableTimes()
}

func (s *Selection) availableTimes() []TimeOption {
    matching := lo.Filter(s.roomShowtimes(), func(st model.Showtime, _ int) bool {
        return s.date != "" && st.StartDate == s.date
    })
    options := lo.Map(matching, func(st model.Showtime, _ int) TimeOption {
        return TimeOption{ShowtimeID: st.ID, Time: st.StartAt}
    })
    sort.SliceStable(options, func(i, j int) bool {
        ci, errI := model.ParseClock(options[i].Time)
        cj, errJ := model.ParseClock(options[j].Time)
        if errI != nil {
            return false
        }
        if errJ != nil {
            return true
        }
        return ci.Before(cj)
    })
    return options
}

// AddReservation assembles the submission payload from the caller-supplied
// checkout fields, the held selection ids and the full seat list, and
// posts it to the backend.  On success the QR artifact is derived (server
// code when present, otherwise a locally rendered PNG of the reservation
// detail URL) and the result carries the server response.  On failure the
// selection is left exactly as it was and the result carries the server
// message or the generic fallback.
//
// A submission already in flight makes a second call fail immediately, and
// every payload carries a fresh idempotency key, so a double click cannot
// create two reservations.
func (s *Selection) AddReservation(ctx context.Context, in CheckoutInput) Result {
    s.mu.Lock()
    if s.loading {
        s.mu.Unlock()
        return Result{OK: false, Message: "a reservation is already being submitted"}
    }
    s.loading = true
    req := model.ReservationRequest{
        Date:           in.Date,
        StartAt:        in.StartAt,
        TicketPrice:    in.TicketPrice,
        Total:          in.Total,
        UserID:         in.UserID,
        MovieID:        s.movieID(),
        ShowtimeID:     s.showtimeID,
        RoomID:         s.roomID,
        CinemaID:       s.cinemaID,
        Username:       in.Username,
        Phone:          in.Phone,
        Seats:          append([]model.Seat(nil), s.seats...),
        IdempotencyKey: uuid.NewString(),
    }
    s.mu.Unlock()

    conf, err := s.api.CreateReservation(ctx, req)

    s.mu.Lock()
    defer s.mu.Unlock()
    s.loading = false
    if err != nil {
        logrus.WithError(err).Warn("reservation submission failed")
        return failure(err)
    }
    s.qr = s.deriveQR(conf)
    return Result{OK: true, Confirmation: conf}
}

// deriveQR prefers the server-supplied code; otherwise it renders a PNG
// encoding the reservation detail URL.  A failed local render is advisory
// and leaves only the URL in the artifact.
func (s *Selection) deriveQR(conf *model.ReservationConfirmation) *QRArtifact {
    if conf.QRCode != "" {
        return &QRArtifact{Code: conf.QRCode}
    }
    url := fmt.Sprintf("%s/reservations/%d", s.origin, conf.Reservation.ID)
    png, err := s.qrPNG(url)
    if err != nil {
        logrus.WithError(err).Warn("local QR code generation failed")
        return &QRArtifact{URL: url}
    }
    return &QRArtifact{URL: url, PNG: png}
}

// SuggestedSeats fetches and stores the server-computed seat suggestion
// for the user.  The feature is advisory: failures are logged and swallow
// to a nil result, never surfaced.
func (s *Selection) SuggestedSeats(ctx context.Context, username string) json.RawMessage {
    s.mu.Lock()
    if s.loading {
        s.mu.Unlock()
        return nil
    }
    s.loading = true
    s.mu.Unlock()

    payload, err := s.api.SuggestedSeats(ctx, username)

    s.mu.Lock()
    defer s.mu.Unlock()
    s.loading = false
    if err != nil {
        logrus.WithError(err).WithField("username", username).Debug("seat suggestion fetch failed")
        return nil
    }
    s.suggested = payload
    return payload
}

// SendInvitations posts the held seat-key → email mapping to the backend
// and returns a tagged result.  The mapping is kept on failure so the user
// can retry.
func (s *Selection) SendInvitations(ctx context.Context) Result {
    s.mu.Lock()
    if s.loading {
        s.mu.Unlock()
        return Result{OK: false, Message: "another request is still in progress"}
    }
    if len(s.invitations) == 0 {
        s.mu.Unlock()
        return Result{OK: false, Message: "no invitations to send"}
    }
    s.loading = true
    payload := make(map[string]string, len(s.invitations))
    for k, v := range s.invitations {
        payload[k] = v
    }
    s.mu.Unlock()

    err := s.api.SendInvitations(ctx, payload)

    s.mu.Lock()
    defer s.mu.Unlock()
    s.loading = false
    if err != nil {
        logrus.WithError(err).Warn("invitation send failed")
        return failure(err)
    }
    return Result{OK: true}
}

// SeatTotal sums the price metadata of the selected seats.
func (s *Selection) SeatTotal() decimal.Decimal {
    s.mu.Lock()
    defer s.mu.Unlock()
    total := decimal.Zero
    for _, seat := range s.seats {
        total = total.Add(seat.Price)
    }
    return total
}

// movieID returns the selected movie's id or zero.  Callers must hold the
// mutex.
func (s *Selection) movieID() int64 {
    if s.movie == nil {
        return 0
    }
    return s.movie.ID
}

// Movie returns the currently selected movie, or nil.
func (s *Selection) Movie() *model.Movie {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.movie
}

// Seats returns a copy of the selected seat list in selection order.
func (s *Selection) Seats() []model.Seat {
    s.mu.Lock()
    defer s.mu.Unlock()
    return append([]model.Seat(nil), s.seats...)
}

// QR returns the stored QR artifact, or nil before a successful
// submission.
func (s *Selection) QR() *QRArtifact {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.qr
}
