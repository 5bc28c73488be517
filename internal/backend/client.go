// Package backend is the HTTP client for the external movie/cinema/
// showtime/reservation REST API.  The service is consumed as a black box
// with a fixed contract; this package normalizes its payloads into the
// canonical model shapes at the ingestion boundary and translates its
// error bodies into typed APIErrors.
package backend

import (
    "bytes"
    "context"
    "encoding/json"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/sony/gobreaker"
)

// APIError carries the HTTP status and the server-provided message of a
// failed backend call.  Message may be empty when the body was absent or
// undecodable; callers fall back to a generic text in that case.
type APIError struct {
    Status  int
    Message string
}

func (e *APIError) Error() string {
    if e.Message != "" {
        return fmt.Sprintf("backend: %s (status %d)", e.Message, e.Status)
    }
    return fmt.Sprintf("backend: request failed (status %d)", e.Status)
}

// Client talks to the backend API.  Every request carries the configured
// bearer token and runs through a circuit breaker so a dead backend fails
// fast instead of piling up blocked handlers.
type Client struct {
    baseURL string
    token   string
    http    *http.Client
    breaker *gobreaker.CircuitBreaker
}

// New creates a client for the given base URL.  token may be empty for
// unauthenticated access; timeout bounds every request.
func New(baseURL, token string, timeout time.Duration) *Client {
    if timeout <= 0 {
        timeout = 10 * time.Second
    }
    return &Client{
        baseURL: baseURL,
        token:   token,
        http:    &http.Client{Timeout: timeout},
        breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
            Name:    "backend-api",
            Timeout: 15 * time.Second,
        }),
    }
}

// WithToken returns a shallow copy of the client that authenticates with
// the given bearer token.  The breaker is shared: the backend is one
// upstream regardless of who is calling it.
func (c *Client) WithToken(token string) *Client {
    clone := *c
    clone.token = token
    return &clone
}

// do issues one JSON request and decodes a 2xx body into out (ignored when
// out is nil).  Non-2xx responses become APIErrors with the server message
// when one can be extracted.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
    var payload io.Reader
    if body != nil {
        raw, err := json.Marshal(body)
        if err != nil {
            return fmt.Errorf("encode request: %w", err)
        }
        payload = bytes.NewReader(raw)
    }
    req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
    if err != nil {
        return fmt.Errorf("build request: %w", err)
    }
    req.Header.Set("Accept", "application/json")
    if body != nil {
        req.Header.Set("Content-Type", "application/json")
    }
    if c.token != "" {
        req.Header.Set("Authorization", "Bearer "+c.token)
    }

    raw, err := c.breaker.Execute(func() (any, error) {
        resp, err := c.http.Do(req)
        if err != nil {
            return nil, err
        }
        defer resp.Body.Close()
        data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
        if err != nil {
            return nil, err
        }
        if resp.StatusCode < 200 || resp.StatusCode > 299 {
            return nil, &APIError{Status: resp.StatusCode, Message: serverMessage(data)}
        }
        return data, nil
    })
    if err != nil {
        return err
    }
    if out == nil {
        return nil
    }
    data := raw.([]byte)
    if len(data) == 0 {
        return nil
    }
    if err := json.Unmarshal(data, out); err != nil {
        return fmt.Errorf("decode response: %w", err)
    }
    return nil
}

// serverMessage extracts the "message" (or legacy "error") field from an
// error body.
func serverMessage(data []byte) string {
    var body struct {
        Message string `json:"message"`
        Error   string `json:"error"`
    }
    if err := json.Unmarshal(data, &body); err != nil {
        return ""
    }
    if body.Message != "" {
        return body.Message
    }
    return body.Error
}
