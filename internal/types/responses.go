package types

// ------------------------------
// Response Shapes
// ------------------------------

// VideosPage is one batch from the paging endpoint.
type VideosPage struct {
	Videos  []VideoRecord `json:"videos"`
	HasMore bool          `json:"has_more"`
	Total   int           `json:"total,omitempty"`
}

// TagSearchResponse lists tags matching a suggestion query.
type TagSearchResponse struct {
	Tags []string `json:"tags"`
}

// BulkResponse is the outcome of a bulk delete or bulk tag call.
type BulkResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// UsernamesResponse lists the tracked usernames.
type UsernamesResponse struct {
	Success   bool     `json:"success"`
	Error     string   `json:"error,omitempty"`
	Usernames []string `json:"usernames"`
}

// QueueStatsResponse carries queue counters and recent activity.
type QueueStatsResponse struct {
	Success        bool       `json:"success"`
	Error          string     `json:"error,omitempty"`
	Stats          QueueStats `json:"stats"`
	RecentActivity []Activity `json:"recent_activity"`
}
