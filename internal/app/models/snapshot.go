package models

import (
	"encoding/json"
	"time"
)

// Snapshot is the static data file served to the pre-rendered site. Upstream
// payloads are kept verbatim.
type Snapshot struct {
	WeddingDetails json.RawMessage `json:"weddingDetails"`
	Photos         json.RawMessage `json:"photos"`
	Schedule       json.RawMessage `json:"schedule"`
	Playlist       json.RawMessage `json:"playlist"`
	BuildTime      time.Time       `json:"buildTime"`
}
