package models

import "time"

// PlaylistSong is a guest song request
type PlaylistSong struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	RequestedBy string    `json:"requestedBy,omitempty"`
	SpotifyURL  string    `json:"spotifyUrl,omitempty"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SongLikeResult is returned by the like toggle
type SongLikeResult struct {
	Liked bool `json:"liked"`
	Likes int  `json:"likes"`
}
