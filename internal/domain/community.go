package domain

// TierSubmission is one user's complete tier list. A later submission from
// the same UserID replaces the earlier one entirely.
type TierSubmission struct {
	UserID    string            `json:"userId"`
	UserName  string            `json:"userName"`
	Rankings  map[string]string `json:"rankings"`
	Timestamp int64             `json:"timestamp"`
}

// Comment is one community comment, newest served first.
type Comment struct {
	ID        int64  `json:"id"`
	UserID    string `json:"userId"`
	User      string `json:"user"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// PetitionType distinguishes the live petition from closed ones.
type PetitionType string

const (
	PetitionCurrent PetitionType = "current"
	PetitionArchive PetitionType = "archive"
)

// Petition is a signature counter; archived petitions keep the video that
// closed them.
type Petition struct {
	ID        int64        `json:"id"`
	Type      PetitionType `json:"type"`
	Count     int          `json:"count"`
	StartDate int64        `json:"startDate"`
	EndDate   int64        `json:"endDate,omitempty"`
	VideoID   string       `json:"videoId,omitempty"`
}

// PetitionStats is the public petition view.
type PetitionStats struct {
	CurrentCount int        `json:"currentCount"`
	History      []Petition `json:"history"`
}

// LatestVideo is the newest matching upload found in the channel feeds.
type LatestVideo struct {
	Title       string `json:"title"`
	VideoID     string `json:"videoId"`
	PublishedAt string `json:"publishedAt"`
	ChannelName string `json:"channelName"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
}
