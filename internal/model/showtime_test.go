package model

import (
    "encoding/json"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestShowtimeDecodesBothFieldCasings(t *testing.T) {
    cases := map[string]string{
        "camelCase":  `{"id":5,"movieId":7,"cinemaId":1,"roomId":10,"startDate":"2024-05-01","startAt":"18:30"}`,
        "PascalCase": `{"ID":5,"MovieID":7,"CinemaID":1,"RoomID":10,"StartDate":"2024-05-01","StartAt":"18:30"}`,
    }
    for name, payload := range cases {
        t.Run(name, func(t *testing.T) {
            var st Showtime
            require.NoError(t, json.Unmarshal([]byte(payload), &st))
            assert.Equal(t, Showtime{
                ID: 5, MovieID: 7, CinemaID: 1, RoomID: 10,
                StartDate: "2024-05-01", StartAt: "18:30",
            }, st)
        })
    }
}

func TestShowtimeDecodesQuotedIDs(t *testing.T) {
    var st Showtime
    require.NoError(t, json.Unmarshal([]byte(`{"id":"12","roomId":"3"}`), &st))
    assert.Equal(t, int64(12), st.ID)
    assert.Equal(t, int64(3), st.RoomID)
}

func TestParseClock(t *testing.T) {
    c, err := ParseClock("9:05")
    require.NoError(t, err)
    assert.Equal(t, Clock{Hour: 9, Minute: 5}, c)

    c, err = ParseClock("23:59")
    require.NoError(t, err)
    assert.Equal(t, Clock{Hour: 23, Minute: 59}, c)

    for _, bad := range []string{"", "9", "24:00", "12:60", "ab:cd", "-1:30"} {
        _, err := ParseClock(bad)
        assert.Error(t, err, "value %q", bad)
    }
}

func TestClockBefore(t *testing.T) {
    assert.True(t, Clock{9, 5}.Before(Clock{9, 30}))
    assert.True(t, Clock{9, 30}.Before(Clock{10, 0}))
    assert.False(t, Clock{10, 0}.Before(Clock{9, 30}))
    assert.False(t, Clock{9, 5}.Before(Clock{9, 5}))
}

func TestCinemaDecodesBothIDKeys(t *testing.T) {
    var legacy Cinema
    require.NoError(t, json.Unmarshal([]byte(`{"_id":3,"name":"Grand","city":"Hanoi"}`), &legacy))
    assert.Equal(t, int64(3), legacy.ID)

    var current Cinema
    require.NoError(t, json.Unmarshal([]byte(`{"id":4,"name":"Rex","city":"Saigon"}`), &current))
    assert.Equal(t, int64(4), current.ID)
}

func TestSeatKey(t *testing.T) {
    assert.Equal(t, "A-12", SeatKey("A", 12))
    assert.Equal(t, "A-12", Seat{Row: "A", Number: 12}.Key())
}
