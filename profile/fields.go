package profile

// RequestedFields describes which collections to fetch. It is built once
// from the user's selection and never mutated afterwards.
type RequestedFields struct {
	Channels    bool
	History     bool
	LikedVideos bool
	WatchLater  bool
	HomeFeed    bool

	// AllPlaylists requests every library playlist with its videos.
	AllPlaylists bool

	// PlaylistIDs requests specific playlists by id, resolved against the
	// library's own playlist listing. Ids that match no listed playlist
	// are silently ignored. Ignored when AllPlaylists is set.
	PlaylistIDs map[string]bool
}

// WantsPlaylists reports whether any playlist fetching was requested.
func (f RequestedFields) WantsPlaylists() bool {
	return f.AllPlaylists || len(f.PlaylistIDs) > 0
}

// wantPlaylist reports whether the given listed playlist should be fetched.
func (f RequestedFields) wantPlaylist(id string) bool {
	if f.AllPlaylists {
		return true
	}
	return f.PlaylistIDs[id]
}
