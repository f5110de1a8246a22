package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// VideoRecord is one archived video as the backend returns it. All fields
// are read-only on the client side.
type VideoRecord struct {
	VideoID      string   `json:"video_id"`
	Author       string   `json:"author"` // "<display-name-or-blank>·<relative-time>"
	Username     string   `json:"username"`
	Tags         []string `json:"tags,omitempty"`
	HasThumbnail bool     `json:"has_thumbnail"`
	Thumbnail    string   `json:"thumbnail_path"`
	VideoPath    string   `json:"video_path"`
	Description  string   `json:"description"`
}

// QueueCounts holds the per-stage counters for one processing queue.
type QueueCounts struct {
	Waiting    int `json:"waiting"`
	Processing int `json:"processing"`
	Failed     int `json:"failed"`
}

// QueueStats groups the counters of both backend queues.
type QueueStats struct {
	Manifest QueueCounts `json:"manifest"`
	Download QueueCounts `json:"download"`
}

// Activity is one recent queue-processing event.
type Activity struct {
	Username  string `json:"username"`
	Action    string `json:"action"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
