package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"yt2alt/profile"
)

// apiPageSize is the maximum page size the Data API allows.
const apiPageSize = 50

// DataAPI reads the library over the public Data API v3, for users who
// bring their own OAuth application or API key instead of the private
// endpoint. It implements profile.LibraryAccess.
//
// The Data API exposes no watch history, watch later, or recommendation
// feeds; those accessors return ErrUnsupportedCollection.
type DataAPI struct {
	service *youtubeapi.Service
}

// NewDataAPI creates a Data API library reader. Pass credentials with
// the usual client options (option.WithHTTPClient for an OAuth client,
// option.WithAPIKey for a key).
func NewDataAPI(ctx context.Context, opts ...option.ClientOption) (*DataAPI, error) {
	service, err := youtubeapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &DataAPI{service: service}, nil
}

// Channels returns every subscribed channel.
func (a *DataAPI) Channels(ctx context.Context) ([]profile.Channel, error) {
	var channels []profile.Channel

	pageToken := ""
	for {
		resp, err := a.service.Subscriptions.List([]string{"snippet"}).
			Mine(true).
			MaxResults(apiPageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("list subscriptions: %w", err)
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.ResourceId == nil {
				continue
			}
			channel := profile.Channel{
				ID:   item.Snippet.ResourceId.ChannelId,
				Name: item.Snippet.Title,
			}
			if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
				channel.Thumbnail = item.Snippet.Thumbnails.Default.Url
			}
			channels = append(channels, channel)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return channels, nil
		}
	}
}

// History is not available over the Data API.
func (a *DataAPI) History(ctx context.Context) (profile.PagedFeed, error) {
	return nil, fmt.Errorf("watch history: %w", ErrUnsupportedCollection)
}

// LikedVideos returns the first page of the liked videos feed.
func (a *DataAPI) LikedVideos(ctx context.Context) (profile.PagedFeed, error) {
	feed := &apiFeed{fetch: a.fetchLikedPage}
	return feed.Continue(ctx)
}

// WatchLater is not available over the Data API.
func (a *DataAPI) WatchLater(ctx context.Context) (profile.PagedFeed, error) {
	return nil, fmt.Errorf("watch later: %w", ErrUnsupportedCollection)
}

// HomeFeed is not available over the Data API.
func (a *DataAPI) HomeFeed(ctx context.Context) (profile.PagedFeed, error) {
	return nil, fmt.Errorf("home feed: %w", ErrUnsupportedCollection)
}

// Playlists lists the user's playlists without resolving videos.
func (a *DataAPI) Playlists(ctx context.Context) ([]profile.PlaylistRef, error) {
	var refs []profile.PlaylistRef

	pageToken := ""
	for {
		resp, err := a.service.Playlists.List([]string{"snippet"}).
			Mine(true).
			MaxResults(apiPageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("list playlists: %w", err)
		}

		for _, item := range resp.Items {
			ref := profile.PlaylistRef{ID: item.Id}
			if item.Snippet != nil {
				ref.Title = item.Snippet.Title
			}
			refs = append(refs, ref)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return refs, nil
		}
	}
}

// Playlist returns a playlist's metadata and the first page of its
// video feed.
func (a *DataAPI) Playlist(ctx context.Context, id string) (profile.Playlist, profile.PagedFeed, error) {
	resp, err := a.service.Playlists.List([]string{"snippet", "status"}).
		Id(id).
		Context(ctx).
		Do()
	if err != nil {
		return profile.Playlist{}, nil, fmt.Errorf("get playlist %s: %w", id, err)
	}

	meta := profile.Playlist{ID: id, Privacy: profile.PrivacyPrivate}
	if len(resp.Items) > 0 {
		item := resp.Items[0]
		if item.Snippet != nil {
			meta.Title = item.Snippet.Title
			meta.Description = item.Snippet.Description
		}
		if item.Status != nil {
			meta.Privacy = profile.NormalizePrivacy(item.Status.PrivacyStatus)
		}
	}

	feed := &apiFeed{fetch: a.playlistPageFetcher(id)}
	page, err := feed.Continue(ctx)
	if err != nil {
		return profile.Playlist{}, nil, err
	}
	return meta, page, nil
}

// pageFetcher fetches one feed page and returns its videos plus the
// next page token.
type pageFetcher func(ctx context.Context, pageToken string) ([]profile.Video, string, error)

// apiFeed adapts Data API page-token pagination to profile.PagedFeed.
// The zero page (before the first fetch) has no videos and a pending
// continuation.
type apiFeed struct {
	fetch   pageFetcher
	videos  []profile.Video
	token   string
	fetched bool
}

// Videos returns this page's videos.
func (f *apiFeed) Videos() []profile.Video {
	return f.videos
}

// HasMore reports whether another page is available.
func (f *apiFeed) HasMore() bool {
	return !f.fetched || f.token != ""
}

// Continue fetches the next page.
func (f *apiFeed) Continue(ctx context.Context) (profile.PagedFeed, error) {
	videos, next, err := f.fetch(ctx, f.token)
	if err != nil {
		return nil, err
	}
	return &apiFeed{
		fetch:   f.fetch,
		videos:  videos,
		token:   next,
		fetched: true,
	}, nil
}

// fetchLikedPage fetches one page of the liked videos rating feed.
func (a *DataAPI) fetchLikedPage(ctx context.Context, pageToken string) ([]profile.Video, string, error) {
	resp, err := a.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		MyRating("like").
		MaxResults(apiPageSize).
		PageToken(pageToken).
		Context(ctx).
		Do()
	if err != nil {
		return nil, "", fmt.Errorf("list liked videos: %w", err)
	}

	var videos []profile.Video
	for _, item := range resp.Items {
		video := profile.Video{ID: item.Id}
		if item.Snippet != nil {
			video.Title = item.Snippet.Title
			video.Author = item.Snippet.ChannelTitle
			video.AuthorID = item.Snippet.ChannelId
			video.Description = item.Snippet.Description
			if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
				video.Published = t.Unix()
			}
			video.IsLive = item.Snippet.LiveBroadcastContent == "live"
		}
		if item.ContentDetails != nil {
			video.LengthSeconds = parseISODuration(item.ContentDetails.Duration)
		}
		if item.Statistics != nil {
			video.ViewCount = fmt.Sprintf("%d", item.Statistics.ViewCount)
		}
		videos = append(videos, video)
	}
	return videos, resp.NextPageToken, nil
}

// playlistPageFetcher returns a fetcher over a playlist's items.
func (a *DataAPI) playlistPageFetcher(playlistID string) pageFetcher {
	return func(ctx context.Context, pageToken string) ([]profile.Video, string, error) {
		resp, err := a.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(apiPageSize).
			PageToken(pageToken).
			Context(ctx).
			Do()
		if err != nil {
			return nil, "", fmt.Errorf("list playlist items %s: %w", playlistID, err)
		}

		var videos []profile.Video
		for _, item := range resp.Items {
			video := profile.Video{}
			if item.ContentDetails != nil {
				video.ID = item.ContentDetails.VideoId
			}
			if item.Snippet != nil {
				video.Title = item.Snippet.Title
				video.Author = item.Snippet.VideoOwnerChannelTitle
				video.AuthorID = item.Snippet.VideoOwnerChannelId
				if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					video.Published = t.Unix()
				}
			}
			if video.ID == "" {
				continue
			}
			videos = append(videos, video)
		}
		return videos, resp.NextPageToken, nil
	}
}

// parseISODuration converts an ISO 8601 duration ("PT1H2M3S") to
// seconds. Unparseable input yields 0.
func parseISODuration(s string) int {
	s = strings.TrimPrefix(s, "P")
	if s == "" {
		return 0
	}

	total := 0
	value := 0
	inTime := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			value = value*10 + int(r-'0')
		case r == 'T':
			inTime = true
			value = 0
		case r == 'D':
			total += value * 86400
			value = 0
		case r == 'H' && inTime:
			total += value * 3600
			value = 0
		case r == 'M' && inTime:
			total += value * 60
			value = 0
		case r == 'S' && inTime:
			total += value
			value = 0
		default:
			return 0
		}
	}
	return total
}
