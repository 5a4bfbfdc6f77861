// Package export transforms a canonical profile into the document formats
// of the supported target platforms. Every transformer is a pure function:
// no I/O, deterministic, returning nil when the source collections it
// needs are absent from the profile.
package export

import "yt2alt/profile"

// GeneratedTag marks exported playlists and descriptions as tool-generated.
const GeneratedTag = "[Automatically imported from Youtube using yt2alt]"

// Fixed titles for playlists fabricated from non-playlist collections.
const (
	syntheticLikedTitle       = "Liked videos"
	syntheticWatchLaterTitle  = "Watch later"
	syntheticRecommendedTitle = "Recommended"
)

// watchURL rebuilds the canonical watch URL for a video id.
func watchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// channelURL rebuilds the canonical channel URL for a channel id.
func channelURL(id string) string {
	return "https://www.youtube.com/channel/" + id
}

// watchURLs maps videos to their watch URLs.
func watchURLs(videos []profile.Video) []string {
	urls := make([]string, len(videos))
	for i, v := range videos {
		urls[i] = watchURL(v.ID)
	}
	return urls
}

// videoIDs maps videos to their bare ids.
func videoIDs(videos []profile.Video) []string {
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = v.ID
	}
	return ids
}

// tagDescription appends the generated tag to a playlist description.
// The result always ends with the tag.
func tagDescription(description string) string {
	if description == "" {
		return GeneratedTag
	}
	return description + "\n" + GeneratedTag
}
