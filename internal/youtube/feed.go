package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/logging"
)

const (
	feedURL            = "https://www.youtube.com/feeds/videos.xml?channel_id=%s"
	defaultFeedTimeout = 10 * time.Second
)

// Channel identifies one channel whose uploads are scanned for series videos.
type Channel struct {
	Name string
	ID   string
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// FeedClient looks up the most recent series video across channel feeds.
type FeedClient struct {
	channels   []Channel
	httpClient httpDoer
	logger     *slog.Logger
}

// NewFeedClient constructs a FeedClient. A nil httpClient gets a default with
// a conservative timeout.
func NewFeedClient(channels []Channel, client *http.Client, logger *slog.Logger) *FeedClient {
	var doer httpDoer
	if client != nil {
		doer = client
	} else {
		doer = &http.Client{Timeout: defaultFeedTimeout}
	}
	return &FeedClient{channels: channels, httpClient: doer, logger: logger}
}

type feedEntry struct {
	Title     string `xml:"title"`
	VideoID   string `xml:"videoId"`
	Published string `xml:"published"`
}

type feed struct {
	Entries []feedEntry `xml:"entry"`
}

// LatestVideo returns the newest upload whose title mentions the series, or
// nil when no channel has one. Per-channel fetch failures are logged and
// skipped so one dead feed does not hide the others.
func (c *FeedClient) LatestVideo(ctx context.Context) (*domain.LatestVideo, error) {
	var videos []domain.LatestVideo

	for _, ch := range c.channels {
		entries, err := c.fetchFeed(ctx, ch)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logging.Warn(c.logger, "channel feed fetch failed", "channel", ch.Name, "error", err)
			continue
		}
		for _, e := range entries {
			title := strings.ToLower(e.Title)
			if !strings.Contains(title, "among us") && !strings.Contains(title, "amongus") {
				continue
			}
			videos = append(videos, domain.LatestVideo{
				Title:       e.Title,
				VideoID:     e.VideoID,
				PublishedAt: e.Published,
				ChannelName: ch.Name,
				Thumbnail:   Thumbnail(e.VideoID),
				URL:         WatchURL(e.VideoID),
			})
		}
	}

	if len(videos) == 0 {
		return nil, nil
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].PublishedAt > videos[j].PublishedAt
	})
	return &videos[0], nil
}

func (c *FeedClient) fetchFeed(ctx context.Context, ch Channel) ([]feedEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(feedURL, ch.ID), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("feed %s: unexpected status %d: %s", ch.ID, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var f feed
	if err := xml.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, fmt.Errorf("feed %s: decode: %w", ch.ID, err)
	}
	return f.Entries, nil
}
