package youtube

import (
	"context"
	"strconv"
	"strings"

	"yt2alt/profile"
)

// liveBadgeStyle marks a currently-live video in the renderer badges.
const liveBadgeStyle = "BADGE_STYLE_TYPE_LIVE_NOW"

// videoFeed is one page of a library video feed, walked via continuation
// tokens. It implements profile.PagedFeed.
type videoFeed struct {
	client *BrowseClient
	videos []profile.Video
	token  string
}

// Videos returns this page's videos.
func (f *videoFeed) Videos() []profile.Video {
	return f.videos
}

// HasMore reports whether a continuation token is available.
func (f *videoFeed) HasMore() bool {
	return f.token != ""
}

// Continue fetches the next page.
func (f *videoFeed) Continue(ctx context.Context) (profile.PagedFeed, error) {
	resp, err := f.client.browse(ctx, "", f.token)
	if err != nil {
		return nil, err
	}
	return &videoFeed{
		client: f.client,
		videos: extractVideos(resp),
		token:  extractContinuation(resp),
	}, nil
}

// newVideoFeed opens the feed behind a browse ID and returns its first
// page.
func newVideoFeed(ctx context.Context, client *BrowseClient, browseID string) (profile.PagedFeed, error) {
	resp, err := client.browse(ctx, browseID, "")
	if err != nil {
		return nil, err
	}
	return &videoFeed{
		client: client,
		videos: extractVideos(resp),
		token:  extractContinuation(resp),
	}, nil
}

// walkItems visits every feed item in a browse response, covering both
// initial pages (tab -> grid/section tree) and continuation responses
// (appended items).
func walkItems(resp *browseResponse, visit func(*feedItem)) {
	if resp == nil {
		return
	}

	for _, action := range resp.OnResponseReceived {
		if action.AppendContinuationItemsAction == nil {
			continue
		}
		for i := range action.AppendContinuationItemsAction.ContinuationItems {
			visitItem(&action.AppendContinuationItemsAction.ContinuationItems[i], visit)
		}
	}

	if resp.Contents == nil || resp.Contents.TwoColumnBrowseResultsRenderer == nil {
		return
	}
	for _, t := range resp.Contents.TwoColumnBrowseResultsRenderer.Tabs {
		if t.TabRenderer == nil || t.TabRenderer.Content == nil {
			continue
		}
		content := t.TabRenderer.Content

		if content.RichGridRenderer != nil {
			for i := range content.RichGridRenderer.Contents {
				item := &content.RichGridRenderer.Contents[i]
				if item.RichItemRenderer != nil && item.RichItemRenderer.Content != nil {
					visitItem(item.RichItemRenderer.Content, visit)
				}
				if item.ContinuationItemRenderer != nil {
					visit(&feedItem{ContinuationItemRenderer: item.ContinuationItemRenderer})
				}
			}
		}

		if content.SectionListRenderer != nil {
			for _, section := range content.SectionListRenderer.Contents {
				if section.ItemSectionRenderer != nil {
					for i := range section.ItemSectionRenderer.Contents {
						visitItem(&section.ItemSectionRenderer.Contents[i], visit)
					}
				}
				if section.ContinuationItemRenderer != nil {
					visit(&feedItem{ContinuationItemRenderer: section.ContinuationItemRenderer})
				}
			}
		}
	}
}

// visitItem unwraps nested containers before handing the item to visit.
func visitItem(item *feedItem, visit func(*feedItem)) {
	if item.RichItemRenderer != nil {
		if item.RichItemRenderer.Content != nil {
			visitItem(item.RichItemRenderer.Content, visit)
		}
		return
	}

	if item.ShelfRenderer != nil && item.ShelfRenderer.Content != nil {
		grid := item.ShelfRenderer.Content.GridRenderer
		if grid == nil {
			grid = item.ShelfRenderer.Content.HorizontalListRenderer
		}
		if grid != nil {
			for i := range grid.Items {
				visitItem(&grid.Items[i], visit)
			}
		}
		return
	}

	if item.PlaylistVideoListRenderer != nil {
		for i := range item.PlaylistVideoListRenderer.Contents {
			visitItem(&item.PlaylistVideoListRenderer.Contents[i], visit)
		}
		return
	}

	visit(item)
}

// extractVideos pulls every video record out of a browse response.
func extractVideos(resp *browseResponse) []profile.Video {
	var videos []profile.Video
	walkItems(resp, func(item *feedItem) {
		if v := videoFromItem(item); v != nil {
			videos = append(videos, *v)
		}
	})
	return videos
}

// extractChannels pulls every subscribed channel out of a browse
// response.
func extractChannels(resp *browseResponse) []profile.Channel {
	var channels []profile.Channel
	walkItems(resp, func(item *feedItem) {
		r := item.ChannelRenderer
		if r == nil || r.ChannelID == "" {
			return
		}
		channel := profile.Channel{
			ID:   r.ChannelID,
			Name: r.Title.text(),
		}
		if r.Thumbnail != nil && len(r.Thumbnail.Thumbnails) > 0 {
			channel.Thumbnail = r.Thumbnail.Thumbnails[len(r.Thumbnail.Thumbnails)-1].URL
		}
		channels = append(channels, channel)
	})
	return channels
}

// extractPlaylistRefs pulls every playlist listing entry out of a browse
// response.
func extractPlaylistRefs(resp *browseResponse) []profile.PlaylistRef {
	var refs []profile.PlaylistRef
	walkItems(resp, func(item *feedItem) {
		r := item.PlaylistRenderer
		if r == nil {
			r = item.GridPlaylistRenderer
		}
		if r == nil || r.PlaylistID == "" {
			return
		}
		refs = append(refs, profile.PlaylistRef{
			ID:    r.PlaylistID,
			Title: r.Title.text(),
		})
	})
	return refs
}

// extractContinuation finds the continuation token for the next page, or
// "" when the feed is exhausted.
func extractContinuation(resp *browseResponse) string {
	token := ""
	walkItems(resp, func(item *feedItem) {
		r := item.ContinuationItemRenderer
		if r == nil || r.ContinuationEndpoint == nil || r.ContinuationEndpoint.ContinuationCommand == nil {
			return
		}
		if t := r.ContinuationEndpoint.ContinuationCommand.Token; t != "" {
			token = t
		}
	})
	return token
}

// extractPlaylistMeta reads playlist metadata from a VL page header.
func extractPlaylistMeta(resp *browseResponse, id string) profile.Playlist {
	meta := profile.Playlist{
		ID:      id,
		Privacy: profile.PrivacyPrivate,
	}
	if resp == nil || resp.Header == nil || resp.Header.PlaylistHeaderRenderer == nil {
		return meta
	}

	header := resp.Header.PlaylistHeaderRenderer
	meta.Title = header.Title.text()
	meta.Description = header.DescriptionText.text()
	meta.Privacy = profile.NormalizePrivacy(header.Privacy)
	return meta
}

// videoFromItem converts a feed item to a video record, or nil when the
// item is not a video.
func videoFromItem(item *feedItem) *profile.Video {
	if r := item.VideoRenderer; r != nil {
		return videoFromRenderer(r)
	}
	if r := item.GridVideoRenderer; r != nil {
		return videoFromRenderer(r)
	}
	if r := item.PlaylistVideoRenderer; r != nil && r.VideoID != "" {
		video := &profile.Video{
			ID:       r.VideoID,
			Title:    r.Title.text(),
			Author:   r.ShortBylineText.text(),
			AuthorID: r.ShortBylineText.browseID(),
		}
		if r.LengthSeconds != "" {
			if seconds, err := strconv.Atoi(r.LengthSeconds); err == nil {
				video.LengthSeconds = seconds
			}
		} else if r.LengthText != nil {
			video.LengthSeconds = parseClockDuration(r.LengthText.SimpleText)
		}
		return video
	}
	return nil
}

func videoFromRenderer(r *videoRenderer) *profile.Video {
	if r.VideoID == "" {
		return nil
	}

	byline := r.OwnerText
	if byline == nil {
		byline = r.ShortBylineText
	}

	video := &profile.Video{
		ID:          r.VideoID,
		Title:       r.Title.text(),
		Author:      byline.text(),
		AuthorID:    byline.browseID(),
		Description: r.DescriptionSnippet.text(),
		ViewCount:   r.ViewCountText.text(),
	}
	if r.LengthText != nil {
		video.LengthSeconds = parseClockDuration(r.LengthText.SimpleText)
	}
	for _, badge := range r.Badges {
		if badge.MetadataBadgeRenderer != nil && badge.MetadataBadgeRenderer.Style == liveBadgeStyle {
			video.IsLive = true
		}
	}
	return video
}

// parseClockDuration converts a "H:MM:SS" or "M:SS" display duration to
// seconds. Unparseable input yields 0.
func parseClockDuration(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	total := 0
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0
		}
		total = total*60 + n
	}
	return total
}
