package model

import "encoding/json"

// Cinema represents a theatre venue as returned by the backend API.
// Historical payloads identify cinemas under either an `_id` or an `id`
// key; decoding folds both into the single ID field so that nothing
// downstream has to care which era of the API produced the record.
//
// Fields:
//  ID    – backend identifier of the cinema.
//  Name  – display name of the venue.
//  City  – city the venue is located in.
//  Image – banner image URL.
//  Rooms – identifiers of the screening rooms inside the venue.
type Cinema struct {
    ID    int64   `json:"id"`
    Name  string  `json:"name"`
    City  string  `json:"city"`
    Image string  `json:"image"`
    Rooms []int64 `json:"rooms,omitempty"`
}

// UnmarshalJSON accepts both the `_id` and `id` identifier keys.  The
// normalization happens here, at the ingestion boundary, so that the rest
// of the application only ever sees the canonical shape.
func (c *Cinema) UnmarshalJSON(data []byte) error {
    var raw struct {
        UnderscoreID *int64  `json:"_id"`
        ID           *int64  `json:"id"`
        Name         string  `json:"name"`
        City         string  `json:"city"`
        Image        string  `json:"image"`
        Rooms        []int64 `json:"rooms"`
    }
    if err := json.Unmarshal(data, &raw); err != nil {
        return err
    }
    switch {
    case raw.ID != nil:
        c.ID = *raw.ID
    case raw.UnderscoreID != nil:
        c.ID = *raw.UnderscoreID
    }
    c.Name = raw.Name
    c.City = raw.City
    c.Image = raw.Image
    c.Rooms = raw.Rooms
    return nil
}
