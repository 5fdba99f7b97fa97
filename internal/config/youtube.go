package config

import "strings"

const envYouTubeChannels = "YOUTUBE_CHANNELS"

// ChannelSpec names one channel whose uploads are scanned for series videos.
type ChannelSpec struct {
	Name string
	ID   string
}

// YouTubeConfig lists the channels the latest-video lookup scans.
type YouTubeConfig struct {
	Channels []ChannelSpec
}

// defaultChannels are the channels the series is uploaded to.
var defaultChannels = []ChannelSpec{
	{Name: "MoreSidemen", ID: "UCh5mLn90vUaB1PbRRx_AiaA"},
	{Name: "Sidemen", ID: "UCDogdKl7t7NHzQ95aEwkdMw"},
}

func loadYouTube() YouTubeConfig {
	raw := envOrDefault(envYouTubeChannels, "")
	if raw == "" {
		return YouTubeConfig{Channels: defaultChannels}
	}
	channels := parseChannels(raw)
	if len(channels) == 0 {
		return YouTubeConfig{Channels: defaultChannels}
	}
	return YouTubeConfig{Channels: channels}
}

// parseChannels reads the "Name:ChannelID,Name:ChannelID" form. Entries
// missing either half are dropped.
func parseChannels(raw string) []ChannelSpec {
	var channels []ChannelSpec
	for _, entry := range strings.Split(raw, ",") {
		name, id, ok := strings.Cut(strings.TrimSpace(entry), ":")
		name = strings.TrimSpace(name)
		id = strings.TrimSpace(id)
		if !ok || name == "" || id == "" {
			continue
		}
		channels = append(channels, ChannelSpec{Name: name, ID: id})
	}
	return channels
}
