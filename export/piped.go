package export

import "yt2alt/profile"

// PipedSubscriptions is the subscriptions document shared by Piped and
// NewPipe imports.
type PipedSubscriptions struct {
	AppVersion    string             `json:"app_version"`
	AppVersionInt int                `json:"app_version_int"`
	Subscriptions []PipedSubscription `json:"subscriptions"`
}

// PipedSubscription is a single subscribed channel entry.
type PipedSubscription struct {
	URL       string `json:"url"`
	Name      string `json:"name"`
	ServiceID int    `json:"service_id"`
}

// PipedPlaylists is the playlist envelope Piped imports.
type PipedPlaylists struct {
	Format    string         `json:"format"`
	Version   int            `json:"version"`
	Playlists []PipedPlaylist `json:"playlists"`
}

// PipedPlaylist references its videos by full watch URL.
type PipedPlaylist struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Visibility string   `json:"visibility"`
	Videos     []string `json:"videos"`
}

// ToPipedSubscriptions maps a profile to a Piped subscriptions document.
// Returns nil when no channels were imported. Piped has no history
// import; callers are expected to warn when history was requested.
func ToPipedSubscriptions(p *profile.Profile) *PipedSubscriptions {
	if p.Channels == nil {
		return nil
	}

	subs := make([]PipedSubscription, len(p.Channels))
	for i, channel := range p.Channels {
		subs[i] = PipedSubscription{
			URL:       channelURL(channel.ID),
			Name:      channel.Name,
			ServiceID: 0,
		}
	}

	return &PipedSubscriptions{
		AppVersion:    "",
		AppVersionInt: 0,
		Subscriptions: subs,
	}
}

// ToPipedPlaylists maps the profile's playlist-like collections into a
// Piped playlist envelope. Returns nil when none of them were imported.
func ToPipedPlaylists(p *profile.Profile) *PipedPlaylists {
	if p.LikedVideos == nil && p.WatchLater == nil && p.HomeFeed == nil && p.Playlists == nil {
		return nil
	}

	playlists := []PipedPlaylist{}

	addSynthetic := func(name string, videos []profile.Video) {
		playlists = append(playlists, PipedPlaylist{
			Name:       name,
			Type:       "playlist",
			Visibility: string(profile.PrivacyPrivate),
			Videos:     watchURLs(videos),
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
		playlists = append(playlists, PipedPlaylist{
			Name:       playlist.Title,
			Type:       "playlist",
			Visibility: string(profile.NormalizePrivacy(string(playlist.Privacy))),
			Videos:     watchURLs(playlist.Videos),
		})
	}

	return &PipedPlaylists{
		Format:    "Piped",
		Version:   1,
		Playlists: playlists,
	}
}
