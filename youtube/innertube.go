package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"yt2alt/internal/httpx"
)

const (
	// defaultBrowseEndpoint is the private API endpoint the web client
	// uses for library pages.
	defaultBrowseEndpoint = "https://www.youtube.com/youtubei/v1/browse"

	// Client identification sent with every browse request.
	browseClientName    = "WEB"
	browseClientVersion = "2.20240101.00.00"

	// browseUserAgent mimics a standard browser.
	browseUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// BrowseClient issues authenticated requests against the private browse
// endpoint.
type BrowseClient struct {
	http     *httpx.Client
	session  *Session
	endpoint string
}

// BrowseOption configures the browse client.
type BrowseOption func(*BrowseClient)

// WithEndpoint overrides the browse endpoint URL. Tests point this at a
// local server.
func WithEndpoint(endpoint string) BrowseOption {
	return func(c *BrowseClient) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *httpx.Client) BrowseOption {
	return func(c *BrowseClient) {
		c.http = client
	}
}

// NewBrowseClient creates a browse client bound to a session.
func NewBrowseClient(session *Session, opts ...BrowseOption) *BrowseClient {
	c := &BrowseClient{
		http:     httpx.New(nil),
		session:  session,
		endpoint: defaultBrowseEndpoint,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// browseRequest is the body of a browse call. Exactly one of BrowseID
// and Continuation is set.
type browseRequest struct {
	Context      clientContext `json:"context"`
	BrowseID     string        `json:"browseId,omitempty"`
	Continuation string        `json:"continuation,omitempty"`
}

type clientContext struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	HL            string `json:"hl"`
	GL            string `json:"gl"`
}

// browseResponse is the subset of the browse payload this tool reads.
type browseResponse struct {
	Contents           *contents          `json:"contents,omitempty"`
	OnResponseReceived []onResponseAction `json:"onResponseReceivedActions,omitempty"`
	Header             *pageHeader        `json:"header,omitempty"`
}

type contents struct {
	TwoColumnBrowseResultsRenderer *twoColumnBrowseResultsRenderer `json:"twoColumnBrowseResultsRenderer,omitempty"`
}

type twoColumnBrowseResultsRenderer struct {
	Tabs []tab `json:"tabs,omitempty"`
}

type tab struct {
	TabRenderer *tabRenderer `json:"tabRenderer,omitempty"`
}

type tabRenderer struct {
	Selected bool        `json:"selected,omitempty"`
	Content  *tabContent `json:"content,omitempty"`
}

type tabContent struct {
	RichGridRenderer    *richGridRenderer    `json:"richGridRenderer,omitempty"`
	SectionListRenderer *sectionListRenderer `json:"sectionListRenderer,omitempty"`
}

type richGridRenderer struct {
	Contents []gridItem `json:"contents,omitempty"`
}

type sectionListRenderer struct {
	Contents []sectionContent `json:"contents,omitempty"`
}

type sectionContent struct {
	ItemSectionRenderer      *itemSectionRenderer      `json:"itemSectionRenderer,omitempty"`
	ContinuationItemRenderer *continuationItemRenderer `json:"continuationItemRenderer,omitempty"`
}

type itemSectionRenderer struct {
	Contents []feedItem `json:"contents,omitempty"`
}

type gridItem struct {
	RichItemRenderer         *richItemRenderer         `json:"richItemRenderer,omitempty"`
	ContinuationItemRenderer *continuationItemRenderer `json:"continuationItemRenderer,omitempty"`
}

type richItemRenderer struct {
	Content *feedItem `json:"content,omitempty"`
}

// feedItem is one entry of any library feed. Exactly one renderer is
// populated depending on the feed kind.
type feedItem struct {
	RichItemRenderer          *richItemRenderer          `json:"richItemRenderer,omitempty"`
	VideoRenderer             *videoRenderer             `json:"videoRenderer,omitempty"`
	GridVideoRenderer         *videoRenderer             `json:"gridVideoRenderer,omitempty"`
	PlaylistVideoRenderer     *playlistVideoRenderer     `json:"playlistVideoRenderer,omitempty"`
	PlaylistVideoListRenderer *playlistVideoListRenderer `json:"playlistVideoListRenderer,omitempty"`
	ChannelRenderer           *channelRenderer           `json:"channelRenderer,omitempty"`
	PlaylistRenderer          *playlistRenderer          `json:"playlistRenderer,omitempty"`
	GridPlaylistRenderer      *playlistRenderer          `json:"gridPlaylistRenderer,omitempty"`
	ShelfRenderer             *shelfRenderer             `json:"shelfRenderer,omitempty"`
	ContinuationItemRenderer  *continuationItemRenderer  `json:"continuationItemRenderer,omitempty"`
}

type continuationItemRenderer struct {
	ContinuationEndpoint *continuationEndpoint `json:"continuationEndpoint,omitempty"`
}

type continuationEndpoint struct {
	ContinuationCommand *continuationCommand `json:"continuationCommand,omitempty"`
}

type continuationCommand struct {
	Token string `json:"token,omitempty"`
}

type onResponseAction struct {
	AppendContinuationItemsAction *appendContinuationItemsAction `json:"appendContinuationItemsAction,omitempty"`
}

type appendContinuationItemsAction struct {
	ContinuationItems []feedItem `json:"continuationItems,omitempty"`
}

type videoRenderer struct {
	VideoID            string         `json:"videoId,omitempty"`
	Title              *textRuns      `json:"title,omitempty"`
	DescriptionSnippet *textRuns      `json:"descriptionSnippet,omitempty"`
	PublishedTimeText  *simpleText    `json:"publishedTimeText,omitempty"`
	LengthText         *simpleText    `json:"lengthText,omitempty"`
	ViewCountText      *textRuns      `json:"viewCountText,omitempty"`
	OwnerText          *textRuns      `json:"ownerText,omitempty"`
	ShortBylineText    *textRuns      `json:"shortBylineText,omitempty"`
	Badges             []badgeWrapper `json:"badges,omitempty"`
}

type playlistVideoRenderer struct {
	VideoID         string      `json:"videoId,omitempty"`
	Title           *textRuns   `json:"title,omitempty"`
	ShortBylineText *textRuns   `json:"shortBylineText,omitempty"`
	LengthSeconds   string      `json:"lengthSeconds,omitempty"`
	LengthText      *simpleText `json:"lengthText,omitempty"`
}

// playlistVideoListRenderer wraps playlist video entries on playlist
// pages.
type playlistVideoListRenderer struct {
	Contents []feedItem `json:"contents,omitempty"`
}

type channelRenderer struct {
	ChannelID string         `json:"channelId,omitempty"`
	Title     *textRuns      `json:"title,omitempty"`
	Thumbnail *thumbnailList `json:"thumbnail,omitempty"`
}

type playlistRenderer struct {
	PlaylistID string    `json:"playlistId,omitempty"`
	Title      *textRuns `json:"title,omitempty"`
}

// shelfRenderer groups library sections; the playlists shelf nests its
// grid one level down.
type shelfRenderer struct {
	Content *shelfContent `json:"content,omitempty"`
}

type shelfContent struct {
	GridRenderer           *gridRenderer `json:"gridRenderer,omitempty"`
	HorizontalListRenderer *gridRenderer `json:"horizontalListRenderer,omitempty"`
}

type gridRenderer struct {
	Items []feedItem `json:"items,omitempty"`
}

type badgeWrapper struct {
	MetadataBadgeRenderer *metadataBadgeRenderer `json:"metadataBadgeRenderer,omitempty"`
}

type metadataBadgeRenderer struct {
	Style string `json:"style,omitempty"`
}

// pageHeader carries playlist metadata on VL pages.
type pageHeader struct {
	PlaylistHeaderRenderer *playlistHeaderRenderer `json:"playlistHeaderRenderer,omitempty"`
}

type playlistHeaderRenderer struct {
	PlaylistID      string    `json:"playlistId,omitempty"`
	Title           *textRuns `json:"title,omitempty"`
	DescriptionText *textRuns `json:"descriptionText,omitempty"`
	Privacy         string    `json:"privacy,omitempty"`
}

type textRuns struct {
	Runs       []textRun `json:"runs,omitempty"`
	SimpleText string    `json:"simpleText,omitempty"`
}

type textRun struct {
	Text               string    `json:"text,omitempty"`
	NavigationEndpoint *endpoint `json:"navigationEndpoint,omitempty"`
}

type endpoint struct {
	BrowseEndpoint *browseEndpointData `json:"browseEndpoint,omitempty"`
}

type browseEndpointData struct {
	BrowseID string `json:"browseId,omitempty"`
}

type simpleText struct {
	SimpleText string `json:"simpleText,omitempty"`
}

type thumbnailList struct {
	Thumbnails []thumbnail `json:"thumbnails,omitempty"`
}

type thumbnail struct {
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// text extracts plain text from a runs-or-simpleText node.
func (t *textRuns) text() string {
	if t == nil {
		return ""
	}
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var parts []string
	for _, run := range t.Runs {
		parts = append(parts, run.Text)
	}
	return strings.Join(parts, "")
}

// browseID returns the browse ID of the first run carrying a navigation
// endpoint. Byline runs link to the video's channel.
func (t *textRuns) browseID() string {
	if t == nil {
		return ""
	}
	for _, run := range t.Runs {
		if run.NavigationEndpoint != nil && run.NavigationEndpoint.BrowseEndpoint != nil {
			return run.NavigationEndpoint.BrowseEndpoint.BrowseID
		}
	}
	return ""
}

// browse fetches a library page, either by browse ID or by continuation
// token.
func (c *BrowseClient) browse(ctx context.Context, browseID, continuation string) (*browseResponse, error) {
	headers, err := c.session.AuthHeaders(ctx)
	if err != nil {
		return nil, err
	}
	headers["User-Agent"] = browseUserAgent
	headers["Origin"] = "https://www.youtube.com"
	headers["Referer"] = "https://www.youtube.com/"

	req := &browseRequest{
		Context: clientContext{
			Client: innertubeClient{
				ClientName:    browseClientName,
				ClientVersion: browseClientVersion,
				HL:            "en",
				GL:            "US",
			},
		},
		BrowseID:     browseID,
		Continuation: continuation,
	}

	httpResp, err := c.http.PostJSON(ctx, c.endpoint, req, headers)
	if err != nil {
		return nil, fmt.Errorf("browse %s: %w", browseLabel(browseID, continuation), err)
	}

	var resp browseResponse
	if err := json.Unmarshal(httpResp.Body, &resp); err != nil {
		return nil, fmt.Errorf("decode browse response: %w", err)
	}
	if resp.Contents == nil && len(resp.OnResponseReceived) == 0 {
		return nil, ErrEmptyResponse
	}

	return &resp, nil
}

func browseLabel(browseID, continuation string) string {
	if browseID != "" {
		return browseID
	}
	if continuation != "" {
		return "continuation"
	}
	return "?"
}
