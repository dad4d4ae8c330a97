package dto

// AddSongRequest requests a song for the playlist
type AddSongRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Artist      string `json:"artist" validate:"required,max=200"`
	RequestedBy string `json:"requestedBy,omitempty" validate:"max=100"`
	SpotifyURL  string `json:"spotifyUrl,omitempty" validate:"omitempty,http_url"`
}
