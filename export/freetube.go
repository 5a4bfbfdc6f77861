package export

import (
	"strconv"
	"strings"

	"yt2alt/profile"
)

// FreeTubeSubscriptions groups every subscription under FreeTube's single
// default channel group.
type FreeTubeSubscriptions struct {
	ID            string            `json:"_id"`
	Name          string            `json:"name"`
	BgColor       string            `json:"bgColor"`
	TextColor     string            `json:"textColor"`
	Subscriptions []FreeTubeChannel `json:"subscriptions"`
}

// FreeTubeChannel is a subscribed channel entry.
type FreeTubeChannel struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

// FreeTubeHistoryEntry is one watch-history record. FreeTube stores its
// history as one JSON object per line.
type FreeTubeHistoryEntry struct {
	VideoID       string `json:"videoId"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	AuthorID      string `json:"authorId"`
	Published     int64  `json:"published"`
	Description   string `json:"description"`
	ViewCount     int64  `json:"viewCount"`
	LengthSeconds int    `json:"lengthSeconds"`
	WatchProgress int    `json:"watchProgress"`
	TimeWatched   int    `json:"timeWatched"`
	IsLive        bool   `json:"isLive"`
	Type          string `json:"type"`
}

// ToFreeTubeSubscriptions maps a profile to a FreeTube subscriptions
// document, grouped under the static "All Channels" group. Returns nil
// when no channels were imported.
func ToFreeTubeSubscriptions(p *profile.Profile) *FreeTubeSubscriptions {
	if p.Channels == nil {
		return nil
	}

	subs := make([]FreeTubeChannel, len(p.Channels))
	for i, channel := range p.Channels {
		subs[i] = FreeTubeChannel{
			ID:        channel.ID,
			Name:      channel.Name,
			Thumbnail: channel.Thumbnail,
		}
	}

	return &FreeTubeSubscriptions{
		ID:            "allChannels",
		Name:          "All Channels",
		BgColor:       "#BD93F9",
		TextColor:     "#000000",
		Subscriptions: subs,
	}
}

// ToFreeTubeHistory maps the profile's watch history to FreeTube history
// entries. Returns nil when history was not imported. Watch progress and
// time watched are unknown to the source and exported as zero.
func ToFreeTubeHistory(p *profile.Profile) []FreeTubeHistoryEntry {
	if p.History == nil {
		return nil
	}

	entries := make([]FreeTubeHistoryEntry, len(p.History))
	for i, video := range p.History {
		entries[i] = FreeTubeHistoryEntry{
			VideoID:       video.ID,
			Title:         video.Title,
			Author:        video.Author,
			AuthorID:      video.AuthorID,
			Published:     video.Published,
			Description:   video.Description,
			ViewCount:     normalizeViewCount(video.ViewCount),
			LengthSeconds: video.LengthSeconds,
			WatchProgress: 0,
			TimeWatched:   0,
			IsLive:        video.IsLive,
			Type:          "video",
		}
	}
	return entries
}

// normalizeViewCount turns an upstream view-count string into a number by
// keeping only its decimal digits. Handles plain numbers as well as
// locale-formatted strings like "1,926,729 views"; anything without
// digits counts as zero.
func normalizeViewCount(s string) int64 {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
