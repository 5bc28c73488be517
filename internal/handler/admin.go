package handler

import (
    "fmt"
    "io"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
)

// adminResources is the fixed set of backend collections the console may
// touch.  Anything else is rejected before it reaches the backend.
var adminResources = map[string]string{
    "movies":    "/movies",
    "cinemas":   "/cinemas",
    "showtimes": "/showtimes",
}

// AdminHandler is the thin authenticated console: it relays CRUD calls for
// movies, cinemas and showtimes to the backend using the configured
// service token and never interprets the documents it moves.  JWT and role
// middleware guard these routes.
type AdminHandler struct {
    API *backend.Client // client already carrying the service token
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(api *backend.Client) *AdminHandler {
    if api == nil {
        panic("nil backend client passed to NewAdminHandler")
    }
    return &AdminHandler{API: api}
}

// List handles GET /v1/admin/:resource.
func (h *AdminHandler) List(c echo.Context) error {
    return h.forward(c, http.MethodGet, false, false)
}

// Create handles POST /v1/admin/:resource.
func (h *AdminHandler) Create(c echo.Context) error {
    return h.forward(c, http.MethodPost, false, true)
}

// Update handles PUT /v1/admin/:resource/:id.
func (h *AdminHandler) Update(c echo.Context) error {
    return h.forward(c, http.MethodPut, true, true)
}

// Delete handles DELETE /v1/admin/:resource/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
    return h.forward(c, http.MethodDelete, true, false)
}

func (h *AdminHandler) forward(c echo.Context, method string, withID, withBody bool) error {
    base, ok := adminResources[c.Param("resource")]
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown resource"})
    }
    path := base
    if withID {
        id, err := strconv.ParseInt(c.Param("id"), 10, 64)
        if err != nil || id == 0 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
        }
        path = fmt.Sprintf("%s/%d", base, id)
    }
    var body []byte
    if withBody {
        raw, err := io.ReadAll(io.LimitReader(c.Request().Body, 1<<20))
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
        }
        body = raw
    }
    out, err := h.API.Forward(c.Request().Context(), method, path, body)
    if err != nil {
        return apiFailure(c, err)
    }
    if len(out) == 0 {
        return c.NoContent(http.StatusNoContent)
    }
    return c.JSONBlob(http.StatusOK, out)
}
