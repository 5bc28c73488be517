package handler_test

import (
    "bytes"
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/cookiejar"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/NHDanDz/movieapp-sub001/internal/backend"
    "github.com/NHDanDz/movieapp-sub001/internal/booking"
    "github.com/NHDanDz/movieapp-sub001/internal/config"
    "github.com/NHDanDz/movieapp-sub001/internal/handler"
    "github.com/NHDanDz/movieapp-sub001/internal/router"
    "github.com/NHDanDz/movieapp-sub001/internal/session"
)

// fakeBackend stands in for the external reservation API.
func fakeBackend(t *testing.T) *httptest.Server {
    t.Helper()
    mux := http.NewServeMux()
    mux.HandleFunc("GET /movies/7", func(w http.ResponseWriter, r *http.Request) {
        fmt.Fprint(w, `{"id":7,"title":"Arrival"}`)
    })
    mux.HandleFunc("GET /showtimes", func(w http.ResponseWriter, r *http.Request) {
        require.Equal(t, "7", r.URL.Query().Get("movieId"))
        fmt.Fprint(w, `[
            {"id":101,"movieId":7,"cinemaId":1,"roomId":10,"startDate":"2024-05-01","startAt":"09:00"},
            {"id":102,"movieId":7,"cinemaId":1,"RoomID":10,"StartDate":"2024-05-01","StartAt":"18:00"}
        ]`)
    })
    mux.HandleFunc("POST /reservations", func(w http.ResponseWriter, r *http.Request) {
        var req map[string]any
        require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
        require.Equal(t, float64(101), req["showtimeId"])
        require.NotEmpty(t, req["idempotencyKey"])
        fmt.Fprint(w, `{"QRCode":"server-qr","reservation":{"id":900}}`)
    })
    srv := httptest.NewServer(mux)
    t.Cleanup(srv.Close)
    return srv
}

// newApp wires the echo server against the fake backend the way main does,
// minus redis and the queue consumer.
func newApp(t *testing.T) *httptest.Server {
    t.Helper()
    api := backend.New(fakeBackend(t).URL, "", time.Second)
    store := session.NewStore(time.Minute, func() *booking.Selection {
        return booking.New(api, "https://movies.example.com")
    })

    e := echo.New()
    router.Register(e, config.Config{JWTSecret: "test-secret"}, nil,
        handler.NewBrowseHandler(api),
        handler.NewBookingHandler(store, api),
        handler.NewAuthHandler(api),
        handler.NewAdminHandler(api),
    )
    srv := httptest.NewServer(e)
    t.Cleanup(srv.Close)
    return srv
}

func newClient(t *testing.T) *http.Client {
    jar, err := cookiejar.New(nil)
    require.NoError(t, err)
    return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, client *http.Client, url, body string) map[string]any {
    t.Helper()
    resp, err := client.Post(url, "application/json", bytes.NewBufferString(body))
    require.NoError(t, err)
    defer resp.Body.Close()
    require.Less(t, resp.StatusCode, 300, "POST %s", url)
    var out map[string]any
    require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
    return out
}

func TestBookingFlowOverHTTP(t *testing.T) {
    app := newApp(t)
    client := newClient(t)
    base := app.URL + "/v1/booking"

    view := postJSON(t, client, base+"/movie", `{"movie_id":7}`)
    require.Equal(t, "Arrival", view["movie"].(map[string]any)["title"])

    postJSON(t, client, base+"/cinema", `{"cinema_id":1}`)
    view = postJSON(t, client, base+"/room", `{"room_id":10}`)
    assert.Equal(t, []any{"2024-05-01"}, view["availableDates"])

    view = postJSON(t, client, base+"/date", `{"date":"2024-05-01"}`)
    times := view["availableTimes"].([]any)
    require.Len(t, times, 2)
    assert.Equal(t, "09:00", times[0].(map[string]any)["time"])
    assert.Equal(t, "18:00", times[1].(map[string]any)["time"])

    view = postJSON(t, client, base+"/slot", `{"slot":"101|09:00"}`)
    assert.Equal(t, "101|09:00", view["slot"])

    view = postJSON(t, client, base+"/seats/toggle", `{"row":"A","number":1,"seat_id":11,"seat_type":"VIP","extra_charge":"2.50"}`)
    require.Len(t, view["seats"].([]any), 1)

    // Toggling the same coordinate again deselects it.
    view = postJSON(t, client, base+"/seats/toggle", `{"row":"A","number":1,"seat_id":11,"seat_type":"VIP","extra_charge":"2.50"}`)
    assert.Empty(t, view["seats"])

    postJSON(t, client, base+"/seats/toggle", `{"row":"A","number":2,"seat_id":12,"seat_type":"STANDARD","extra_charge":"0"}`)

    result := postJSON(t, client, base+"/reserve",
        `{"date":"2024-05-01","startAt":"09:00","ticketPrice":"12.00","total":"14.50","userId":42,"username":"dan","phone":"555-0101"}`)
    require.Equal(t, true, result["ok"])
    conf := result["confirmation"].(map[string]any)
    assert.Equal(t, "server-qr", conf["QRCode"])

    // The QR artifact is visible in the snapshot afterwards.
    resp, err := client.Get(base)
    require.NoError(t, err)
    defer resp.Body.Close()
    var snapshot map[string]any
    require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
    require.NotNil(t, snapshot["qr"])
    assert.Equal(t, "server-qr", snapshot["qr"].(map[string]any)["code"])
}

func TestBookingSessionsAreIsolated(t *testing.T) {
    app := newApp(t)
    base := app.URL + "/v1/booking"

    first := newClient(t)
    second := newClient(t)

    postJSON(t, first, base+"/cinema", `{"cinema_id":1}`)

    resp, err := second.Get(base)
    require.NoError(t, err)
    defer resp.Body.Close()
    var view map[string]any
    require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
    assert.Nil(t, view["cinemaId"], "second session must start empty")
}

func TestAdminConsoleRequiresAuth(t *testing.T) {
    app := newApp(t)
    resp, err := http.Get(app.URL + "/v1/admin/movies")
    require.NoError(t, err)
    defer resp.Body.Close()
    assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTicketPDFWithoutReservation(t *testing.T) {
    app := newApp(t)
    client := newClient(t)
    resp, err := client.Get(app.URL + "/v1/booking/ticket.pdf")
    require.NoError(t, err)
    defer resp.Body.Close()
    assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
