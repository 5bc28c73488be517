package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"
    "github.com/sirupsen/logrus"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
    "github.com/NHDanDz/movieapp-sub001/internal/booking"
    "github.com/NHDanDz/movieapp-sub001/internal/model"
    "github.com/NHDanDz/movieapp-sub001/internal/queue"
    queue_publisher "github.com/NHDanDz/movieapp-sub001/internal/service"
    "github.com/NHDanDz/movieapp-sub001/internal/session"
    "github.com/NHDanDz/movieapp-sub001/internal/ticket"
)

// BookingHandler exposes the booking selection flow over HTTP.  Each
// browser session owns one booking.Selection, looked up through the
// session store on every request; handlers translate form/JSON input into
// selection operations and render the consistent snapshot back.
type BookingHandler struct {
    Store *session.Store  // session id -> selection
    API   *backend.Client // backend catalogue access for movie ingestion
}

// NewBookingHandler constructs a BookingHandler.  Both dependencies must
// be non-nil.
func NewBookingHandler(store *session.Store, api *backend.Client) *BookingHandler {
    if store == nil || api == nil {
        panic("nil dependency passed to NewBookingHandler")
    }
    return &BookingHandler{Store: store, API: api}
}

// selection resolves the caller's selection from the session cookie,
// creating a fresh session (and setting the cookie) when none exists.
func (h *BookingHandler) selection(c echo.Context) *booking.Selection {
    var id string
    if cookie, err := c.Cookie(session.CookieName); err == nil {
        id = cookie.Value
    }
    newID, sel := h.Store.Get(id)
    if newID != id {
        c.SetCookie(&http.Cookie{
            Name:     session.CookieName,
            Value:    newID,
            Path:     "/",
            HttpOnly: true,
            SameSite: http.SameSiteLaxMode,
        })
    }
    return sel
}

// GetSelection handles GET /v1/booking.  It returns the current selection
// together with the derived option lists.
func (h *BookingHandler) GetSelection(c echo.Context) error {
    return c.JSON(http.StatusOK, h.selection(c).Snapshot())
}

// SelectMovie handles POST /v1/booking/movie.  It fetches the movie and
// its showtimes from the backend and starts the selection chain over with
// them.
func (h *BookingHandler) SelectMovie(c echo.Context) error {
    var body struct {
        MovieID int64 `json:"movie_id"`
    }
    if err := c.Bind(&body); err != nil || body.MovieID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    ctx := c.Request().Context()
    movie, err := h.API.GetMovie(ctx, body.MovieID)
    if err != nil {
        return apiFailure(c, err)
    }
    showtimes, err := h.API.ListShowtimes(ctx, body.MovieID)
    if err != nil {
        return apiFailure(c, err)
    }
    sel := h.selection(c)
    sel.SetMovie(movie, showtimes)
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// SelectCinema handles POST /v1/booking/cinema.  Any id is accepted; the
// backend is the judge of validity.
func (h *BookingHandler) SelectCinema(c echo.Context) error {
    var body struct {
        CinemaID int64 `json:"cinema_id"`
    }
    if err := c.Bind(&body); err != nil || body.CinemaID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid cinema id"})
    }
    sel := h.selection(c)
    sel.SetCinema(body.CinemaID)
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// SelectRoom handles POST /v1/booking/room.
func (h *BookingHandler) SelectRoom(c echo.Context) error {
    var body struct {
        RoomID int64 `json:"room_id"`
    }
    if err := c.Bind(&body); err != nil || body.RoomID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    sel := h.selection(c)
    sel.SetRoom(body.RoomID)
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// SelectDate handles POST /v1/booking/date.
func (h *BookingHandler) SelectDate(c echo.Context) error {
    var body struct {
        Date string `json:"date"`
    }
    if err := c.Bind(&body); err != nil || body.Date == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
    }
    sel := h.selection(c)
    sel.SetDate(body.Date)
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// SelectSlot handles POST /v1/booking/slot.  The body carries the joint
// "<showtimeId>|<time>" value the slot picker binds to; time and showtime
// are applied atomically.
func (h *BookingHandler) SelectSlot(c echo.Context) error {
    var body struct {
        Slot string `json:"slot"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    showtimeID, timeOfDay, err := booking.DecodeSlot(body.Slot)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slot value"})
    }
    sel := h.selection(c)
    sel.SetTimeSlot(showtimeID, timeOfDay)
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// ToggleSeat handles POST /v1/booking/seats/toggle.  Selecting an already
// selected (row, number) coordinate deselects it.
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
    var body struct {
        Row         string          `json:"row"`
        Number      int             `json:"number"`
        SeatID      int64           `json:"seat_id"`
        SeatType    string          `json:"seat_type"`
        ExtraCharge decimal.Decimal `json:"extra_charge"`
    }
    if err := c.Bind(&body); err != nil || body.Row == "" || body.Number == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat coordinates"})
    }
    sel := h.selection(c)
    sel.ToggleSeat(model.Seat{
        Row:      body.Row,
        Number:   body.Number,
        SeatID:   body.SeatID,
        SeatType: body.SeatType,
        Price:    body.ExtraCharge,
    })
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// ResetBooking handles POST /v1/booking/reset.  The movie choice survives;
// everything below it is cleared.
func (h *BookingHandler) ResetBooking(c echo.Context) error {
    sel := h.selection(c)
    sel.ResetBooking()
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// ResetCheckout handles POST /v1/booking/checkout/reset.  Only invitation
// state is cleared, for the path back from checkout to seat selection.
func (h *BookingHandler) ResetCheckout(c echo.Context) error {
    sel := h.selection(c)
    sel.ResetCheckout()
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// SetInvitation handles POST /v1/booking/invitations.  It records an
// invitation email for one selected seat key.
func (h *BookingHandler) SetInvitation(c echo.Context) error {
    var body struct {
        SeatKey string `json:"seat_key"`
        Email   string `json:"email"`
    }
    if err := c.Bind(&body); err != nil || body.SeatKey == "" || body.Email == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_key and email are required"})
    }
    sel := h.selection(c)
    sel.SetInvitation(body.SeatKey, body.Email)
    return c.JSON(http.StatusOK, sel.Snapshot())
}

// SendInvitations handles POST /v1/booking/invitations/send.
func (h *BookingHandler) SendInvitations(c echo.Context) error {
    result := h.selection(c).SendInvitations(c.Request().Context())
    if !result.OK {
        return c.JSON(http.StatusBadGateway, result)
    }
    return c.JSON(http.StatusOK, result)
}

// Reserve handles POST /v1/booking/reserve.  The caller supplies the
// checkout fields; the selection merges in its held ids and seats and
// submits to the backend.  On success a reservation-confirmed event is
// published best effort and the tagged result (including the QR artifact
// reference) is returned with 201.
func (h *BookingHandler) Reserve(c echo.Context) error {
    var in booking.CheckoutInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    sel := h.selection(c)
    snapshot := sel.Snapshot() // pre-submission view for the event payload

    result := sel.AddReservation(c.Request().Context(), in)
    if !result.OK {
        return c.JSON(http.StatusBadGateway, result)
    }

    ev := confirmedEvent(snapshot, in, result)
    go func() {
        ctx, cancel := contextWithTimeout(5 * time.Second)
        defer cancel()
        if err := queue_publisher.PublishReservationConfirmed(ctx, ev); err != nil {
            logrus.WithError(err).Warn("reservation event publish failed")
        }
    }()
    return c.JSON(http.StatusCreated, result)
}

// SuggestedSeats handles GET /v1/booking/suggestions.  The feature is
// advisory: a failed fetch yields an empty suggestion, never an error.
func (h *BookingHandler) SuggestedSeats(c echo.Context) error {
    username := c.QueryParam("username")
    if username == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
    }
    payload := h.selection(c).SuggestedSeats(c.Request().Context(), username)
    return c.JSON(http.StatusOK, echo.Map{"suggestedSeats": payload})
}

// TicketPDF handles GET /v1/booking/ticket.pdf.  It renders a printable
// ticket for the current selection; a completed submission must have
// happened so the QR artifact exists.
func (h *BookingHandler) TicketPDF(c echo.Context) error {
    sel := h.selection(c)
    view := sel.Snapshot()
    if view.QR == nil {
        return c.JSON(http.StatusConflict, echo.Map{"error": "no confirmed reservation in this session"})
    }
    in := ticket.PDFInput{
        Date:    view.Date,
        StartAt: view.Time,
        Seats:   view.Seats,
        Total:   view.SeatTotal,
        QRPNG:   view.QR.PNG,
    }
    if view.Movie != nil {
        in.MovieTitle = view.Movie.Title
    }
    pdf, err := ticket.RenderPDF(in)
    if err != nil {
        logrus.WithError(err).Error("ticket PDF render failed")
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to render ticket"})
    }
    c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="ticket.pdf"`)
    return c.Blob(http.StatusOK, "application/pdf", pdf)
}

// confirmedEvent assembles the broker payload from the pre-submission
// snapshot, checkout input and submission result.
func confirmedEvent(view booking.View, in booking.CheckoutInput, result booking.Result) queue.ReservationConfirmedEvent {
    labels := make([]string, 0, len(view.Seats))
    for _, seat := range view.Seats {
        labels = append(labels, model.SeatKey(seat.Row, seat.Number))
    }
    ev := queue.ReservationConfirmedEvent{
        CinemaID:    view.CinemaID,
        RoomID:      view.RoomID,
        ShowtimeID:  view.ShowtimeID,
        Date:        in.Date,
        StartAt:     in.StartAt,
        Username:    in.Username,
        SeatLabels:  labels,
        Total:       in.Total.StringFixed(2),
        ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
    }
    if view.Movie != nil {
        ev.MovieID = view.Movie.ID
        ev.MovieTitle = view.Movie.Title
    }
    if result.Confirmation != nil {
        ev.ReservationID = result.Confirmation.Reservation.ID
    }
    return ev
}
