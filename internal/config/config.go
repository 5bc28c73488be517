package config // package config loads application configuration from environment variables

import (
    "log"
    "os"
    "strconv"
    "time"

    "github.com/joho/godotenv"
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  The front end owns no storage of its own:
// everything it needs is where the backend API lives, how to authenticate
// against it, and how to present itself to browsers.
type Config struct {
    Env            string        // application environment (e.g. "dev", "prod")
    Port           string        // HTTP port to listen on
    BackendURL     string        // base URL of the external reservation API
    BackendToken   string        // service bearer token for admin forwarding (optional)
    BackendTimeout time.Duration // per-request timeout on backend calls
    PublicOrigin   string        // public base URL of this front end, used in QR links
    JWTSecret      string        // secret used to verify admin console tokens
    BcryptCost     int           // bcrypt cost used by the hashpass command
    SessionTTL     time.Duration // idle lifetime of a booking session
}

// Load reads configuration from the environment, first merging in a .env
// file when one exists.  Required variables are enforced by must(); a
// missing one exits with a fatal log message.
func Load() Config {
    _ = godotenv.Load() // absent .env is fine; real env always wins

    return Config{
        Env:            must("APP_ENV"),
        Port:           must("APP_PORT"),
        BackendURL:     must("BACKEND_API_URL"),
        BackendToken:   os.Getenv("BACKEND_API_TOKEN"),
        BackendTimeout: envDur("BACKEND_TIMEOUT", 10*time.Second),
        PublicOrigin:   must("PUBLIC_ORIGIN"),
        JWTSecret:      must("JWT_SECRET"),
        BcryptCost:     envInt("BCRYPT_COST", 10),
        SessionTTL:     envDur("SESSION_TTL", 30*time.Minute),
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// Shared env helpers used across the config files.

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func envInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return def
}

func envBool(key string, def bool) bool {
    switch os.Getenv(key) {
    case "1", "true", "TRUE", "True", "yes", "on":
        return true
    case "0", "false", "FALSE", "False", "no", "off":
        return false
    }
    return def
}

func envDur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if d, err := time.ParseDuration(v); err == nil {
        return d
    }
    return def
}
