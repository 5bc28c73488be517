package backend

import (
    "context"
    "encoding/json"
)

// Forward relays an admin console request to the backend verbatim and
// returns the raw response document.  The console is a thin surface: it
// never interprets the payloads it moves, so validation and shape both
// stay the backend's concern.
func (c *Client) Forward(ctx context.Context, method, path string, body json.RawMessage) (json.RawMessage, error) {
    var out json.RawMessage
    var in any
    if len(body) > 0 {
        in = body
    }
    if err := c.do(ctx, method, path, in, &out); err != nil {
        return nil, err
    }
    return out, nil
}
