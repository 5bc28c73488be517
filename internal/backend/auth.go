package backend

import (
    "context"
    "encoding/json"
    "net/http"
)

// Credentials is the login payload forwarded to the backend.
type Credentials struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

// Registration is the sign-up payload forwarded to the backend.
type Registration struct {
    Name     string `json:"name"`
    Username string `json:"username"`
    Email    string `json:"email"`
    Password string `json:"password"`
    Phone    string `json:"phone"`
}

// Session is the slice of the backend auth response this application
// relays: the bearer token plus the raw user document.
type Session struct {
    Token string          `json:"token"`
    User  json.RawMessage `json:"user"`
}

// Login exchanges credentials for a session.  The token is relayed to the
// browser and attached to subsequent backend calls; nothing is stored
// server-side.
func (c *Client) Login(ctx context.Context, creds Credentials) (*Session, error) {
    var session Session
    if err := c.do(ctx, http.MethodPost, "/users/login", creds, &session); err != nil {
        return nil, err
    }
    return &session, nil
}

// Register creates a backend account and returns the fresh session.
func (c *Client) Register(ctx context.Context, reg Registration) (*Session, error) {
    var session Session
    if err := c.do(ctx, http.MethodPost, "/users", reg, &session); err != nil {
        return nil, err
    }
    return &session, nil
}
