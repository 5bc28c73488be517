package model

// Movie represents a film as served by the backend catalogue API.
// Movies are browse-only on this side: the front end never creates or
// mutates them outside the admin console, which forwards raw payloads.
//
// Fields:
//  ID       – backend identifier of the movie.
//  Title    – display title.
//  Image    – poster image URL.
//  Language – primary spoken language.
//  Genre    – genre label (comma separated when multiple).
//  Director – director credit line.
//  Duration – running time in minutes.
type Movie struct {
    ID       int64  `json:"id"`
    Title    string `json:"title"`
    Image    string `json:"image"`
    Language string `json:"language"`
    Genre    string `json:"genre"`
    Director string `json:"director"`
    Duration int    `json:"duration"`
}
