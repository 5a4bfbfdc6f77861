package youtube

import (
	"context"
	"fmt"
	"log"
	"strings"

	"yt2alt/profile"
)

// Browse IDs of the library pages.
const (
	browseIDSubscriptions = "FEchannels"
	browseIDHistory       = "FEhistory"
	browseIDLikedVideos   = "VLLL"
	browseIDWatchLater    = "VLWL"
	browseIDHomeFeed      = "FEwhat_to_watch"
	browseIDLibrary       = "FElibrary"

	// playlistBrowsePrefix turns a playlist ID into its browse ID.
	playlistBrowsePrefix = "VL"

	// mixPlaylistPrefix marks auto-generated mixes in the library
	// listing. Mixes are ephemeral and cannot be exported.
	mixPlaylistPrefix = "RD"
)

// Library reads the signed-in user's library over the private browse
// endpoint. It implements profile.LibraryAccess.
type Library struct {
	client *BrowseClient
}

// NewLibrary creates a library reader over the given browse client.
func NewLibrary(client *BrowseClient) *Library {
	return &Library{client: client}
}

// Channels returns every subscribed channel, walking the subscriptions
// feed to the end. A failed continuation logs and returns the channels
// collected so far.
func (l *Library) Channels(ctx context.Context) ([]profile.Channel, error) {
	resp, err := l.client.browse(ctx, browseIDSubscriptions, "")
	if err != nil {
		return nil, fmt.Errorf("browse subscriptions: %w", err)
	}

	channels := extractChannels(resp)
	token := extractContinuation(resp)

	for token != "" {
		resp, err = l.client.browse(ctx, "", token)
		if err != nil {
			log.Printf("youtube: subscriptions continuation failed, returning %d channels: %v", len(channels), err)
			break
		}
		channels = append(channels, extractChannels(resp)...)
		token = extractContinuation(resp)
	}

	return channels, nil
}

// History returns the first page of the watch history feed.
func (l *Library) History(ctx context.Context) (profile.PagedFeed, error) {
	return newVideoFeed(ctx, l.client, browseIDHistory)
}

// LikedVideos returns the first page of the liked videos feed.
func (l *Library) LikedVideos(ctx context.Context) (profile.PagedFeed, error) {
	return newVideoFeed(ctx, l.client, browseIDLikedVideos)
}

// WatchLater returns the first page of the watch later feed.
func (l *Library) WatchLater(ctx context.Context) (profile.PagedFeed, error) {
	return newVideoFeed(ctx, l.client, browseIDWatchLater)
}

// HomeFeed returns the first page of the recommended videos feed.
func (l *Library) HomeFeed(ctx context.Context) (profile.PagedFeed, error) {
	return newVideoFeed(ctx, l.client, browseIDHomeFeed)
}

// Playlists lists the library's playlists without resolving videos.
// Auto-generated mixes are filtered out.
func (l *Library) Playlists(ctx context.Context) ([]profile.PlaylistRef, error) {
	resp, err := l.client.browse(ctx, browseIDLibrary, "")
	if err != nil {
		return nil, fmt.Errorf("browse library: %w", err)
	}

	var refs []profile.PlaylistRef
	for _, ref := range extractPlaylistRefs(resp) {
		if strings.HasPrefix(ref.ID, mixPlaylistPrefix) {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Playlist returns a playlist's metadata and the first page of its
// video feed.
func (l *Library) Playlist(ctx context.Context, id string) (profile.Playlist, profile.PagedFeed, error) {
	browseID := id
	if !strings.HasPrefix(browseID, playlistBrowsePrefix) {
		browseID = playlistBrowsePrefix + browseID
	}

	resp, err := l.client.browse(ctx, browseID, "")
	if err != nil {
		return profile.Playlist{}, nil, fmt.Errorf("browse playlist %s: %w", id, err)
	}

	meta := extractPlaylistMeta(resp, strings.TrimPrefix(browseID, playlistBrowsePrefix))
	feed := &videoFeed{
		client: l.client,
		videos: extractVideos(resp),
		token:  extractContinuation(resp),
	}
	return meta, feed, nil
}
