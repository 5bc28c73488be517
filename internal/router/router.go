// Package router wires HTTP routes to their handlers and middleware.
package router

import (
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/NHDanDz/movieapp-sub001/internal/config"
    "github.com/NHDanDz/movieapp-sub001/internal/handler"
    "github.com/NHDanDz/movieapp-sub001/internal/middleware"
)

// Register wires the whole HTTP surface: health, the redis-cached browse
// routes, auth forwarding, the session-scoped booking flow and the
// JWT-guarded admin console.  rdb may be nil, in which case caching and
// rate limiting silently turn off.
func Register(
    e *echo.Echo,
    cfg config.Config,
    rdb *redis.Client,
    browse *handler.BrowseHandler,
    booking *handler.BookingHandler,
    auth *handler.AuthHandler,
    admin *handler.AdminHandler,
) {
    e.GET("/healthz", handler.Health)

    limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    // Public browse surface: rate limited and response cached.
    pub := e.Group("/v1", limiter)
    cached := pub.Group("", cache)
    cached.GET("/movies", browse.ListMovies)
    cached.GET("/movies/:id", browse.GetMovie)
    cached.GET("/movies/:id/showtimes", browse.MovieShowtimes)
    cached.GET("/cinemas", browse.ListCinemas)

    // Auth forwarding.
    pub.POST("/auth/login", auth.Login)
    pub.POST("/auth/register", auth.Register)

    // Booking flow; session scoped via cookie, never cached.
    b := pub.Group("/booking")
    b.GET("", booking.GetSelection)
    b.POST("/movie", booking.SelectMovie)
    b.POST("/cinema", booking.SelectCinema)
    b.POST("/room", booking.SelectRoom)
    b.POST("/date", booking.SelectDate)
    b.POST("/slot", booking.SelectSlot)
    b.POST("/seats/toggle", booking.ToggleSeat)
    b.POST("/reset", booking.ResetBooking)
    b.POST("/checkout/reset", booking.ResetCheckout)
    b.POST("/invitations", booking.SetInvitation)
    b.POST("/invitations/send", booking.SendInvitations)
    b.POST("/reserve", booking.Reserve)
    b.GET("/suggestions", booking.SuggestedSeats)
    b.GET("/ticket.pdf", booking.TicketPDF)

    // Thin admin console: authenticated, role gated, no caching.
    adm := e.Group("/v1/admin", middleware.JWTAuth(cfg.JWTSecret), middleware.RequireRole("ADMIN"))
    adm.GET("/:resource", admin.List)
    adm.POST("/:resource", admin.Create)
    adm.PUT("/:resource/:id", admin.Update)
    adm.DELETE("/:resource/:id", admin.Delete)
}
