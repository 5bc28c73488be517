// Package logger configures the process-wide logrus logger.
package logger

import (
    "os"

    "github.com/sirupsen/logrus"
)

// Init sets up the standard logrus logger for the given environment:
// JSON output at info level in prod, colored text at debug level
// everywhere else.  LOG_LEVEL overrides the level when parseable.
func Init(env string) {
    logrus.SetOutput(os.Stdout)
    if env == "prod" {
        logrus.SetFormatter(&logrus.JSONFormatter{})
        logrus.SetLevel(logrus.InfoLevel)
    } else {
        logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
        logrus.SetLevel(logrus.DebugLevel)
    }
    if raw := os.Getenv("LOG_LEVEL"); raw != "" {
        if level, err := logrus.ParseLevel(raw); err == nil {
            logrus.SetLevel(level)
        }
    }
}
