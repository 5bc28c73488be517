// Package handler exposes HTTP handlers for the booking flow, the public
// browse surface, authentication forwarding and the admin console.
package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"
    "github.com/samber/lo"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

// BrowseHandler serves the unauthenticated browse surface.  Everything it
// returns comes straight from the backend catalogue; the redis response
// cache in front of these routes absorbs repeat traffic.
type BrowseHandler struct {
    API *backend.Client
}

// NewBrowseHandler constructs a BrowseHandler.
func NewBrowseHandler(api *backend.Client) *BrowseHandler {
    if api == nil {
        panic("nil backend client passed to NewBrowseHandler")
    }
    return &BrowseHandler{API: api}
}

// ListMovies handles GET /v1/movies.
func (h *BrowseHandler) ListMovies(c echo.Context) error {
    movies, err := h.API.ListMovies(c.Request().Context())
    if err != nil {
        return apiFailure(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": movies})
}

// GetMovie handles GET /v1/movies/:id.
func (h *BrowseHandler) GetMovie(c echo.Context) error {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    movie, err := h.API.GetMovie(c.Request().Context(), id)
    if err != nil {
        return apiFailure(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"item": movie})
}

// ListCinemas handles GET /v1/cinemas.
func (h *BrowseHandler) ListCinemas(c echo.Context) error {
    cinemas, err := h.API.ListCinemas(c.Request().Context())
    if err != nil {
        return apiFailure(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": cinemas})
}

// CinemaShowtimes is one group in the showtimes-by-cinema response.
type CinemaShowtimes struct {
    Cinema    model.Cinema     `json:"cinema"`
    Showtimes []model.Showtime `json:"showtimes"`
}

// MovieShowtimes handles GET /v1/movies/:id/showtimes.  It fetches the
// movie's showtimes and the cinema list and groups the former by venue so
// the picker can render one section per cinema.  Showtimes referencing an
// unknown cinema are dropped rather than shown unlabeled.
func (h *BrowseHandler) MovieShowtimes(c echo.Context) error {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid movie id"})
    }
    ctx := c.Request().Context()
    showtimes, err := h.API.ListShowtimes(ctx, id)
    if err != nil {
        return apiFailure(c, err)
    }
    cinemas, err := h.API.ListCinemas(ctx)
    if err != nil {
        return apiFailure(c, err)
    }
    byCinema := lo.GroupBy(showtimes, func(st model.Showtime) int64 { return st.CinemaID })
    groups := make([]CinemaShowtimes, 0, len(byCinema))
    for _, cinema := range cinemas {
        if matched, ok := byCinema[cinema.ID]; ok {
            groups = append(groups, CinemaShowtimes{Cinema: cinema, Showtimes: matched})
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"items": groups})
}
