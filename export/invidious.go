package export

import "yt2alt/profile"

// InvidiousProfile is the document consumed by Invidious's profile import,
// both as a file and over the import API.
type InvidiousProfile struct {
	Subscriptions []profile.Channel  `json:"subscriptions,omitempty"`
	WatchHistory  []profile.Video    `json:"watch_history,omitempty"`
	Playlists     []InvidiousPlaylist `json:"playlists,omitempty"`
}

// InvidiousPlaylist is a playlist entry in the Invidious document.
// Videos are referenced by bare id; Invidious resolves them on import.
type InvidiousPlaylist struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Privacy     string   `json:"privacy"`
	Videos      []string `json:"videos"`
}

// ToInvidious maps a profile to an Invidious import document. Liked
// videos, watch later, and the home feed have no Invidious counterpart;
// they become private playlists with fixed titles. Returns nil when the
// profile holds nothing Invidious can import.
func ToInvidious(p *profile.Profile) *InvidiousProfile {
	if p.Channels == nil && p.History == nil && p.LikedVideos == nil &&
		p.WatchLater == nil && p.HomeFeed == nil && p.Playlists == nil {
		return nil
	}

	doc := &InvidiousProfile{}

	if p.Channels != nil {
		doc.Subscriptions = p.Channels
	}

	if p.History != nil {
		doc.WatchHistory = p.History
	}

	addSynthetic := func(title string, videos []profile.Video) {
		doc.Playlists = append(doc.Playlists, InvidiousPlaylist{
			Title:       title,
			Description: GeneratedTag,
			Privacy:     string(profile.PrivacyPrivate),
			Videos:      videoIDs(videos),
		})
	}

	if p.LikedVideos != nil {
		addSynthetic(syntheticLikedTitle, p.LikedVideos)
	}
	if p.WatchLater != nil {
		addSynthetic(syntheticWatchLaterTitle, p.WatchLater)
	}
	if p.HomeFeed != nil {
		addSynthetic(syntheticRecommendedTitle, p.HomeFeed)
	}

	for _, playlist := range p.Playlists {
		doc.Playlists = append(doc.Playlists, InvidiousPlaylist{
			Title:       playlist.Title,
			Description: tagDescription(playlist.Description),
			Privacy:     string(profile.NormalizePrivacy(string(playlist.Privacy))),
			Videos:      videoIDs(playlist.Videos),
		})
	}

	return doc
}
