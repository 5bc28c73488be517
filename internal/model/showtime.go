package model

import (
    "encoding/json"
    "fmt"
    "strconv"
    "strings"
)

// Showtime identifies one bookable screening: a movie playing in a
// specific room of a cinema on a calendar date at a time of day.  The
// record is immutable once fetched from the backend.
//
// Fields:
//  ID        – backend identifier of the showtime.
//  MovieID   – movie being screened.
//  CinemaID  – venue hosting the screening.
//  RoomID    – screening room within the venue.
//  StartDate – calendar date in "YYYY-MM-DD" form.
//  StartAt   – time of day in "HH:MM" form (legacy records may omit the
//              zero padding; see ParseClock).
type Showtime struct {
    ID        int64  `json:"id"`
    MovieID   int64  `json:"movieId"`
    CinemaID  int64  `json:"cinemaId"`
    RoomID    int64  `json:"roomId"`
    StartDate string `json:"startDate"`
    StartAt   string `json:"startAt"`
}

// UnmarshalJSON folds the two historical field-name casings used by the
// backend ("roomId" era and "RoomID" era) into the canonical struct.
// Normalizing once at ingestion keeps the selection and filtering logic
// free of casing branches.
func (s *Showtime) UnmarshalJSON(data []byte) error {
    var raw map[string]json.RawMessage
    if err := json.Unmarshal(data, &raw); err != nil {
        return err
    }
    s.ID = rawInt(raw, "id", "Id", "ID")
    s.MovieID = rawInt(raw, "movieId", "MovieID", "movie_id")
    s.CinemaID = rawInt(raw, "cinemaId", "CinemaID", "cinema_id")
    s.RoomID = rawInt(raw, "roomId", "RoomID", "room_id")
    s.StartDate = rawString(raw, "startDate", "StartDate", "start_date")
    s.StartAt = rawString(raw, "startAt", "StartAt", "start_at")
    return nil
}

// rawInt returns the first present key decoded as an integer.  Numeric
// strings are accepted because some legacy records carry quoted ids.
func rawInt(raw map[string]json.RawMessage, keys ...string) int64 {
    for _, k := range keys {
        v, ok := raw[k]
        if !ok {
            continue
        }
        var n int64
        if err := json.Unmarshal(v, &n); err == nil {
            return n
        }
        var str string
        if err := json.Unmarshal(v, &str); err == nil {
            if n, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64); err == nil {
                return n
            }
        }
    }
    return 0
}

// rawString returns the first present key decoded as a string.
func rawString(raw map[string]json.RawMessage, keys ...string) string {
    for _, k := range keys {
        v, ok := raw[k]
        if !ok {
            continue
        }
        var str string
        if err := json.Unmarshal(v, &str); err == nil {
            return str
        }
    }
    return ""
}

// Clock is a parsed time of day.  Times must be compared as (hour,
// minute) integer pairs: lexicographic comparison of the raw strings
// breaks on missing zero padding ("9:05" vs "10:00").
type Clock struct {
    Hour   int // 0..23
    Minute int // 0..59
}

// Before reports whether c is strictly earlier in the day than other.
func (c Clock) Before(other Clock) bool {
    if c.Hour != other.Hour {
        return c.Hour < other.Hour
    }
    return c.Minute < other.Minute
}

// ParseClock parses "HH:MM" or "H:MM" into a Clock.  Out-of-range
// components are rejected so malformed backend data surfaces as an error
// instead of sorting arbitrarily.
func ParseClock(s string) (Clock, error) {
    parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
    if len(parts) != 2 {
        return Clock{}, fmt.Errorf("invalid clock value %q", s)
    }
    h, err := strconv.Atoi(parts[0])
    if err != nil || h < 0 || h > 23 {
        return Clock{}, fmt.Errorf("invalid hour in clock value %q", s)
    }
    m, err := strconv.Atoi(parts[1])
    if err != nil || m < 0 || m > 59 {
        return Clock{}, fmt.Errorf("invalid minute in clock value %q", s)
    }
    return Clock{Hour: h, Minute: m}, nil
}
