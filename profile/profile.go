// Package profile defines the canonical in-memory model of a user's
// YouTube library and the machinery that assembles it: a cursor-walking
// feed paginator and an assembler that drives it once per requested
// collection.
package profile

import "strings"

// Channel is a subscribed channel.
type Channel struct {
	// ID is the stable external channel identifier (UC...).
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
}

// Video is a single library video. ID is the canonical cross-platform key
// used to rebuild watch URLs on export; every other field is best-effort
// display metadata and may be empty when the upstream record omits it.
type Video struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	AuthorID      string `json:"authorId"`
	Published     int64  `json:"published"`
	Description   string `json:"description"`
	ViewCount     string `json:"viewCount"`
	LengthSeconds int    `json:"lengthSeconds"`
	IsLive        bool   `json:"isLive"`
}

// Playlist is a real library playlist with its resolved videos.
// Synthetic playlists fabricated at export time share this shape but
// have no ID.
type Playlist struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Privacy     Privacy `json:"privacy"`
	Videos      []Video `json:"videos"`
}

// PlaylistRef identifies a playlist in the library listing, before its
// videos are resolved.
type PlaylistRef struct {
	ID    string
	Title string
}

// Profile is the run-scoped aggregate of a user's library data.
//
// A nil slice means the collection was not requested; a non-nil empty
// slice means it was requested and nothing was found. Transformers rely
// on this distinction, so the assembler always materializes requested
// collections as non-nil.
type Profile struct {
	Channels    []Channel  `json:"channels,omitempty"`
	History     []Video    `json:"history,omitempty"`
	LikedVideos []Video    `json:"likedVideos,omitempty"`
	WatchLater  []Video    `json:"watchLater,omitempty"`
	HomeFeed    []Video    `json:"homeFeed,omitempty"`
	Playlists   []Playlist `json:"playlists,omitempty"`
}

// Privacy is a normalized playlist visibility.
type Privacy string

// Normalized privacy values.
const (
	PrivacyPublic   Privacy = "public"
	PrivacyUnlisted Privacy = "unlisted"
	PrivacyPrivate  Privacy = "private"
)

// NormalizePrivacy maps an upstream privacy string to a normalized value.
// Matching is case-insensitive; anything unrecognized, including the
// empty string, maps to private.
func NormalizePrivacy(s string) Privacy {
	switch strings.ToLower(s) {
	case "public":
		return PrivacyPublic
	case "unlisted":
		return PrivacyUnlisted
	default:
		return PrivacyPrivate
	}
}
