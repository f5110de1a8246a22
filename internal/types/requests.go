package types

// ------------------------------
// Request Payloads
// ------------------------------

// BulkDeleteRequest asks the backend to delete the listed videos.
type BulkDeleteRequest struct {
	VideoIDs []string `json:"video_ids"`
}

// BulkTagRequest asks the backend to add one tag to the listed videos.
type BulkTagRequest struct {
	VideoIDs []string `json:"video_ids"`
	Tag      string   `json:"tag"`
}

// UsernameRequest adds or removes one tracked username.
type UsernameRequest struct {
	Username string `json:"username"`
}
