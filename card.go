package browser

import (
	"strings"

	"github.com/sbeardsley/archive-browser/internal/types"
)

// authorSeparator splits the composite author field into display name and
// relative time, e.g. "Jane Doe·2 days ago".
const authorSeparator = "·"

const descriptionLimit = 100

// Chip is one clickable tag on a card. Token is what clicking it adds to the
// filter set; for username chips that is "@"+username.
type Chip struct {
	Label    string
	Token    string
	Username bool
}

// Card is the presentation form of one video record. Building a card never
// touches the network or the grid; it is a pure mapping.
type Card struct {
	VideoID      string
	DisplayName  string
	RelativeTime string
	ThumbnailURL string // empty when the record has no thumbnail yet
	VideoURL     string
	MIMEType     string
	Description  string
	Chips        []Chip
}

// BuildCard maps a video record to its card.
func BuildCard(v types.VideoRecord) Card {
	name, relTime := splitAuthor(v.Author, v.Username)

	c := Card{
		VideoID:      v.VideoID,
		DisplayName:  name,
		RelativeTime: relTime,
		VideoURL:     "/video/" + v.VideoPath,
		MIMEType:     "video/mp4",
		Description:  truncateDescription(v.Description),
	}
	if v.HasThumbnail {
		c.ThumbnailURL = "/thumbnail/" + v.Thumbnail
	}
	for _, tag := range v.Tags {
		c.Chips = append(c.Chips, Chip{Label: tag, Token: tag})
	}
	if v.Username != "" {
		c.Chips = append(c.Chips, Chip{
			Label:    "@" + v.Username,
			Token:    "@" + v.Username,
			Username: true,
		})
	}
	return c
}

// splitAuthor recovers display name and relative time from the composite
// author string. The name segment may embed the username or be blank; either
// way the username is the fallback.
func splitAuthor(author, username string) (name, relTime string) {
	name = username

	before, after, found := strings.Cut(author, authorSeparator)
	if found {
		relTime = after
	}
	if before != "" {
		if strings.Contains(before, username) && username != "" {
			name = strings.TrimSpace(strings.Replace(before, username, "", 1))
		} else {
			name = strings.TrimSpace(before)
		}
		if name == "" {
			name = username
		}
	}
	return name, relTime
}

func truncateDescription(desc string) string {
	if desc == "" {
		return ""
	}
	runes := []rune(desc)
	if len(runes) > descriptionLimit {
		runes = runes[:descriptionLimit]
	}
	return string(runes) + "..."
}
