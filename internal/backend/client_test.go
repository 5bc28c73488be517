package backend

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

func TestClientAttachesBearerToken(t *testing.T) {
    var gotAuth string
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        gotAuth = r.Header.Get("Authorization")
        _, _ = w.Write([]byte(`[]`))
    }))
    defer srv.Close()

    c := New(srv.URL, "secret-token", time.Second)
    _, err := c.ListCinemas(context.Background())
    require.NoError(t, err)
    assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestClientDecodesServerErrorMessage(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusConflict)
        _, _ = w.Write([]byte(`{"message":"seats already taken"}`))
    }))
    defer srv.Close()

    c := New(srv.URL, "", time.Second)
    _, err := c.CreateReservation(context.Background(), model.ReservationRequest{})
    require.Error(t, err)

    var apiErr *APIError
    require.ErrorAs(t, err, &apiErr)
    assert.Equal(t, http.StatusConflict, apiErr.Status)
    assert.Equal(t, "seats already taken", apiErr.Message)
}

func TestClientToleratesUndecodableErrorBody(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusInternalServerError)
        _, _ = w.Write([]byte(`<html>gateway error</html>`))
    }))
    defer srv.Close()

    c := New(srv.URL, "", time.Second)
    _, err := c.ListMovies(context.Background())
    var apiErr *APIError
    require.ErrorAs(t, err, &apiErr)
    assert.Empty(t, apiErr.Message)
    assert.NotEmpty(t, apiErr.Error())
}

func TestListShowtimesNormalizesCasing(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "7", r.URL.Query().Get("movieId"))
        _, _ = w.Write([]byte(`[
            {"id":1,"movieId":7,"cinemaId":1,"roomId":10,"startDate":"2024-05-01","startAt":"09:00"},
            {"ID":2,"MovieID":7,"CinemaID":1,"RoomID":10,"StartDate":"2024-05-01","StartAt":"18:00"}
        ]`))
    }))
    defer srv.Close()

    c := New(srv.URL, "", time.Second)
    showtimes, err := c.ListShowtimes(context.Background(), 7)
    require.NoError(t, err)
    require.Len(t, showtimes, 2)
    assert.Equal(t, int64(10), showtimes[0].RoomID)
    assert.Equal(t, int64(10), showtimes[1].RoomID)
    assert.Equal(t, "18:00", showtimes[1].StartAt)
}

func TestCreateReservationPostsIntegerIDs(t *testing.T) {
    var body map[string]any
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
        _, _ = w.Write([]byte(`{"QRCode":"abc","reservation":{"id":99}}`))
    }))
    defer srv.Close()

    c := New(srv.URL, "", time.Second)
    req := model.ReservationRequest{MovieID: 7, ShowtimeID: 101, RoomID: 10, CinemaID: 1, Username: "dan"}
    conf, err := c.CreateReservation(context.Background(), req)
    require.NoError(t, err)
    assert.Equal(t, "abc", conf.QRCode)
    assert.Equal(t, int64(99), conf.Reservation.ID)

    // JSON numbers, not strings.
    assert.Equal(t, float64(101), body["showtimeId"])
    assert.Equal(t, float64(10), body["roomId"])
}

func TestSuggestedSeatsReturnsOpaquePayload(t *testing.T) {
    srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        assert.Equal(t, "/reservations/usermodeling/dan", r.URL.Path)
        _, _ = w.Write([]byte(`{"whatever":["the","server","says"]}`))
    }))
    defer srv.Close()

    c := New(srv.URL, "", time.Second)
    payload, err := c.SuggestedSeats(context.Background(), "dan")
    require.NoError(t, err)
    assert.JSONEq(t, `{"whatever":["the","server","says"]}`, string(payload))
}

func TestWithTokenDoesNotMutateOriginal(t *testing.T) {
    c := New("http://backend", "service", time.Second)
    user := c.WithToken("user")
    assert.Equal(t, "service", c.token)
    assert.Equal(t, "user", user.token)
    assert.Same(t, c.breaker, user.breaker)
}
