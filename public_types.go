package browser

import "github.com/sbeardsley/archive-browser/internal/types"

// Public type aliases so SDK consumers can import only the browser package.
type (
	// Domain entities
	VideoRecord = types.VideoRecord
	QueueStats  = types.QueueStats
	QueueCounts = types.QueueCounts
	Activity    = types.Activity

	// Responses
	VideosPage         = types.VideosPage
	BulkResponse       = types.BulkResponse
	QueueStatsResponse = types.QueueStatsResponse
)
