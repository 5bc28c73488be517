package model

import (
    "fmt"

    "github.com/shopspring/decimal"
)

// Seat is one bookable position inside a room, uniquely identified by its
// (Row, Number) pair within that room.  SeatID, SeatType and Price are
// denormalized metadata carried along only so that a reservation payload
// can be assembled without another round trip to the backend.
//
// Fields:
//  Row     – row label, e.g. "A".
//  Number  – seat number within the row.
//  SeatID  – backend identifier of the seat.
//  SeatType – price tier label (e.g. STANDARD, VIP).
//  Price   – surcharge or tier price attached to the seat.
type Seat struct {
    Row      string          `json:"row"`
    Number   int             `json:"number"`
    SeatID   int64           `json:"seatId"`
    SeatType string          `json:"seatType"`
    Price    decimal.Decimal `json:"price"`
}

// Key returns the row/number coordinate as a stable string, used both for
// set membership and as the key of the invitation mapping.
func (s Seat) Key() string {
    return SeatKey(s.Row, s.Number)
}

// SeatKey builds the canonical coordinate key for a row label and number.
func SeatKey(row string, number int) string {
    return fmt.Sprintf("%s-%d", row, number)
}
