package main

import (
    "github.com/labstack/echo/v4"
    echomw "github.com/labstack/echo/v4/middleware"
    "github.com/sirupsen/logrus"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
    "github.com/NHDanDz/movieapp-sub001/internal/booking"
    "github.com/NHDanDz/movieapp-sub001/internal/config"
    "github.com/NHDanDz/movieapp-sub001/internal/handler"
    "github.com/NHDanDz/movieapp-sub001/internal/logger"
    "github.com/NHDanDz/movieapp-sub001/internal/queue"
    "github.com/NHDanDz/movieapp-sub001/internal/router"
    "github.com/NHDanDz/movieapp-sub001/internal/session"
)

func main() {
    cfg := config.Load()
    logger.Init(cfg.Env)

    api := backend.New(cfg.BackendURL, cfg.BackendToken, cfg.BackendTimeout)

    store := session.NewStore(cfg.SessionTTL, func() *booking.Selection {
        return booking.New(api, cfg.PublicOrigin)
    })
    store.StartSweeper(cfg.SessionTTL/2, make(chan struct{}))

    // Background consumer writing the reservation ticket log.
    go queue.StartReservationConsumer()

    e := echo.New()
    e.HideBanner = true
    e.Use(echomw.Recover())

    rdb := config.NewRedisClient()
    if rdb == nil {
        logrus.Warn("redis unavailable; response cache and rate limiting disabled")
    }

    router.Register(e, cfg, rdb,
        handler.NewBrowseHandler(api),
        handler.NewBookingHandler(store, api),
        handler.NewAuthHandler(api),
        handler.NewAdminHandler(api),
    )

    addr := ":" + cfg.Port
    logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env}).Info("server starting")
    if err := e.Start(addr); err != nil {
        logrus.WithError(err).Fatal("server stopped")
    }
}
