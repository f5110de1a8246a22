package browser

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/sbeardsley/archive-browser/internal/types"
)

// archiveServer is a stub backend holding a catalog of videos. It implements
// the paging endpoint with real AND/OR/NOT evaluation over each video's
// effective tag set (tags plus "@"+username), the tag-search endpoint as a
// substring match, and the bulk endpoints as catalog mutations.
type archiveServer struct {
	mu       sync.Mutex
	videos   []types.VideoRecord
	tags     []string
	pageReqs int           // requests to /api/videos
	tagReqs  int           // requests to /api/tags/search
	lastTagQ string        // q of the last tag-search request
	lastPage url.Values    // query of the last /api/videos request
	failBulk string        // when set, bulk endpoints answer success=false with this message

	usernames     []string
	failUsernames string                   // when set, username endpoints answer success=false
	stats         types.QueueStatsResponse // served verbatim by /api/queue-stats
	statsReqs     int
	failStats     bool // when set, /api/queue-stats answers 500

	srv *httptest.Server
}

func newArchiveServer(t *testing.T, videos ...types.VideoRecord) *archiveServer {
	t.Helper()
	a := &archiveServer{videos: videos}
	a.srv = httptest.NewServer(http.HandlerFunc(a.handle))
	t.Cleanup(a.srv.Close)
	return a
}

func (a *archiveServer) URL() string { return a.srv.URL }

func (a *archiveServer) client() *Client {
	return New(a.URL(), WithHTTPClient(a.srv.Client()))
}

func (a *archiveServer) pageRequests() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pageReqs
}

func (a *archiveServer) setTags(tags ...string) {
	a.mu.Lock()
	a.tags = tags
	a.mu.Unlock()
}

func (a *archiveServer) tagRequests() (int, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tagReqs, a.lastTagQ
}

func (a *archiveServer) setFailBulk(msg string) {
	a.mu.Lock()
	a.failBulk = msg
	a.mu.Unlock()
}

func (a *archiveServer) setFailStats(fail bool) {
	a.mu.Lock()
	a.failStats = fail
	a.mu.Unlock()
}

func (a *archiveServer) statsRequests() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.statsReqs
}

func (a *archiveServer) lastPageQuery() url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastPage
}

func (a *archiveServer) handle(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/videos":
		a.handleVideos(w, r)
	case "/api/tags/search":
		a.handleTagSearch(w, r)
	case "/api/videos/bulk-delete":
		a.handleBulkDelete(w, r)
	case "/api/videos/bulk-tag":
		a.handleBulkTag(w, r)
	case "/api/usernames":
		a.handleUsernames(w, r)
	case "/api/queue-stats":
		a.handleQueueStats(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (a *archiveServer) handleUsernames(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failUsernames != "" {
		_ = json.NewEncoder(w).Encode(types.UsernamesResponse{Success: false, Error: a.failUsernames})
		return
	}
	switch r.Method {
	case http.MethodGet:
		// nothing to mutate
	case http.MethodPost:
		var req types.UsernameRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		a.usernames = append(a.usernames, req.Username)
	case http.MethodDelete:
		var req types.UsernameRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		kept := a.usernames[:0]
		for _, u := range a.usernames {
			if u != req.Username {
				kept = append(kept, u)
			}
		}
		a.usernames = kept
	}
	_ = json.NewEncoder(w).Encode(types.UsernamesResponse{Success: true, Usernames: a.usernames})
}

func (a *archiveServer) handleQueueStats(w http.ResponseWriter, _ *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.statsReqs++
	if a.failStats {
		http.Error(w, "queue store unavailable", http.StatusInternalServerError)
		return
	}
	stats := a.stats
	stats.Success = true
	_ = json.NewEncoder(w).Encode(stats)
}

func (a *archiveServer) handleVideos(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pageReqs++
	q := r.URL.Query()
	a.lastPage = q

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	filters := q["filters[]"]
	mode := q.Get("filter_type")

	var matched []types.VideoRecord
	for _, v := range a.videos {
		if matches(v, filters, mode) {
			matched = append(matched, v)
		}
	}

	start := page * perPage
	end := start + perPage
	var out []types.VideoRecord
	if start < len(matched) {
		if end > len(matched) {
			end = len(matched)
		}
		out = matched[start:end]
	}
	_ = json.NewEncoder(w).Encode(types.VideosPage{
		Videos:  out,
		HasMore: start+perPage < len(matched),
		Total:   len(matched),
	})
}

// matches evaluates the combinator over the video's effective tag set.
func matches(v types.VideoRecord, filters []string, mode string) bool {
	if len(filters) == 0 {
		return true
	}
	effective := make(map[string]bool, len(v.Tags)+1)
	for _, tag := range v.Tags {
		effective[tag] = true
	}
	if v.Username != "" {
		effective["@"+v.Username] = true
	}
	switch mode {
	case "or":
		for _, f := range filters {
			if effective[f] {
				return true
			}
		}
		return false
	case "not":
		for _, f := range filters {
			if effective[f] {
				return false
			}
		}
		return true
	default: // and
		for _, f := range filters {
			if !effective[f] {
				return false
			}
		}
		return true
	}
}

func (a *archiveServer) handleTagSearch(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	q := strings.ToLower(r.URL.Query().Get("q"))
	a.tagReqs++
	a.lastTagQ = q
	var out []string
	for _, tag := range a.tags {
		if strings.Contains(strings.ToLower(tag), q) {
			out = append(out, tag)
		}
	}
	_ = json.NewEncoder(w).Encode(types.TagSearchResponse{Tags: out})
}

func (a *archiveServer) handleBulkDelete(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failBulk != "" {
		_ = json.NewEncoder(w).Encode(types.BulkResponse{Success: false, Error: a.failBulk})
		return
	}
	var req types.BulkDeleteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	drop := make(map[string]bool, len(req.VideoIDs))
	for _, id := range req.VideoIDs {
		drop[id] = true
	}
	kept := a.videos[:0]
	for _, v := range a.videos {
		if !drop[v.VideoID] {
			kept = append(kept, v)
		}
	}
	a.videos = kept
	_ = json.NewEncoder(w).Encode(types.BulkResponse{
		Success: true,
		Summary: strconv.Itoa(len(req.VideoIDs)) + " videos deleted",
	})
}

func (a *archiveServer) handleBulkTag(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failBulk != "" {
		_ = json.NewEncoder(w).Encode(types.BulkResponse{Success: false, Error: a.failBulk})
		return
	}
	var req types.BulkTagRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	want := make(map[string]bool, len(req.VideoIDs))
	for _, id := range req.VideoIDs {
		want[id] = true
	}
	for i := range a.videos {
		if want[a.videos[i].VideoID] {
			a.videos[i].Tags = append(a.videos[i].Tags, req.Tag)
		}
	}
	_ = json.NewEncoder(w).Encode(types.BulkResponse{Success: true})
}

// vid builds a catalog entry.
func vid(id, username string, tags ...string) types.VideoRecord {
	return types.VideoRecord{
		VideoID:      id,
		Username:     username,
		Author:       username + "·1 day ago",
		Tags:         tags,
		HasThumbnail: true,
		Thumbnail:    username + "_videos/" + id + "_thumb.jpg",
		VideoPath:    username + "_videos/" + id + ".mp4",
	}
}

// recordingNotifier captures user-facing notifications.
type recordingNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordingNotifier) Notify(msg string) {
	n.mu.Lock()
	n.msgs = append(n.msgs, msg)
	n.mu.Unlock()
}

func (n *recordingNotifier) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.msgs))
	copy(out, n.msgs)
	return out
}

func (n *recordingNotifier) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.msgs) == 0 {
		return ""
	}
	return n.msgs[len(n.msgs)-1]
}

// loadedIDs projects the pager accumulator to ids.
func loadedIDs(p *Pager) []string {
	records := p.Loaded()
	ids := make([]string, len(records))
	for i, v := range records {
		ids[i] = v.VideoID
	}
	return ids
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
