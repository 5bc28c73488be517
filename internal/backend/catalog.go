package backend

import (
    "context"
    "fmt"
    "net/http"
    "net/url"

    "github.com/NHDanDz/movieapp-sub001/internal/model"
)

// ListMovies fetches the movie catalogue.
func (c *Client) ListMovies(ctx context.Context) ([]model.Movie, error) {
    var movies []model.Movie
    if err := c.do(ctx, http.MethodGet, "/movies", nil, &movies); err != nil {
        return nil, err
    }
    return movies, nil
}

// GetMovie fetches a single movie by id.
func (c *Client) GetMovie(ctx context.Context, movieID int64) (*model.Movie, error) {
    var movie model.Movie
    if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", movieID), nil, &movie); err != nil {
        return nil, err
    }
    return &movie, nil
}

// ListCinemas fetches all cinemas.  Identifier-key duality (_id vs id) is
// folded away by the model's decoder.
func (c *Client) ListCinemas(ctx context.Context) ([]model.Cinema, error) {
    var cinemas []model.Cinema
    if err := c.do(ctx, http.MethodGet, "/cinemas", nil, &cinemas); err != nil {
        return nil, err
    }
    return cinemas, nil
}

// ListShowtimes fetches the showtimes of one movie.  Records arrive in the
// canonical shape regardless of which field-name casing the backend used;
// see model.Showtime.UnmarshalJSON.
func (c *Client) ListShowtimes(ctx context.Context, movieID int64) ([]model.Showtime, error) {
    path := "/showtimes?movieId=" + url.QueryEscape(fmt.Sprint(movieID))
    var showtimes []model.Showtime
    if err := c.do(ctx, http.MethodGet, path, nil, &showtimes); err != nil {
        return nil, err
    }
    return showtimes, nil
}
