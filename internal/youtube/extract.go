package youtube

import (
	"fmt"
	"regexp"
)

// videoIDPattern covers the URL shapes the sheet editors paste in practice:
// youtu.be/ID, /v/ID, /u/x/ID, /embed/ID, watch?v=ID and &v=ID.
var videoIDPattern = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)

const idLength = 11

// ExtractID pulls the 11-character video identifier out of a URL. It returns
// an empty string for malformed or non-matching URLs; that is not an error,
// callers group such games under the "unknown" session.
func ExtractID(url string) string {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil || len(m[1]) != idLength {
		return ""
	}
	return m[1]
}

// Thumbnail returns the medium-quality thumbnail URL for a video ID, or an
// empty string when there is no ID.
func Thumbnail(videoID string) string {
	if videoID == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", videoID)
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
