package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
)

// AuthHandler forwards login and registration to the backend.  No
// credentials or sessions are stored on this side: the backend issues the
// token and the browser keeps it.
type AuthHandler struct {
    API *backend.Client
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(api *backend.Client) *AuthHandler {
    if api == nil {
        panic("nil backend client passed to NewAuthHandler")
    }
    return &AuthHandler{API: api}
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
    var creds backend.Credentials
    if err := c.Bind(&creds); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    creds.Username = strings.TrimSpace(creds.Username)
    if creds.Username == "" || creds.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
    }
    session, err := h.API.Login(c.Request().Context(), creds)
    if err != nil {
        return apiFailure(c, err)
    }
    return c.JSON(http.StatusOK, session)
}

// Register handles POST /v1/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
    var reg backend.Registration
    if err := c.Bind(&reg); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    reg.Username = strings.TrimSpace(reg.Username)
    reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
    if reg.Username == "" || reg.Email == "" || reg.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/email/password required"})
    }
    session, err := h.API.Register(c.Request().Context(), reg)
    if err != nil {
        return apiFailure(c, err)
    }
    return c.JSON(http.StatusCreated, session)
}
