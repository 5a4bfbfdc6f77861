// Package invidious talks to an Invidious server: liveness probing,
// token authorization, chunked profile import, and the local callback
// listener that receives the browser-delivered access token.
package invidious

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"yt2alt/export"
	"yt2alt/internal/httpx"
	"yt2alt/internal/retry"
)

// Token scopes requested from the server. They cover exactly the two
// calls made with the token: the profile import and the final token
// unregister.
const (
	scopeUnregisterToken = "POST:tokens/unregister"
	scopeImportProfile   = "POST:import/invidious"
)

// authorizeExpiry is how long the requested token should stay valid.
const authorizeExpiry = 2 * time.Hour

// Client is an Invidious API client bound to one server.
type Client struct {
	server string
	http   *httpx.Client

	// Progress, when set, is notified before each import chunk upload.
	Progress func(label string, current, total int)
}

// NewClient creates a client for the given server URL. The underlying
// HTTP client never retries: a failed probe reports unreachable, and a
// failed chunk upload aborts the import.
func NewClient(server string) *Client {
	cfg := httpx.DefaultConfig()
	cfg.Retry = retry.None()

	return &Client{
		server: strings.TrimRight(server, "/"),
		http:   httpx.New(cfg),
	}
}

// Server returns the server URL this client is bound to.
func (c *Client) Server() string {
	return c.server
}

// Ping probes the server's stats endpoint and reports whether it looks
// like a live Invidious instance. Any network error, non-200 response,
// or body without a software field counts as unreachable; Ping never
// returns an error.
func (c *Client) Ping(ctx context.Context) bool {
	resp, err := c.http.Get(ctx, c.server+"/api/v1/stats", nil)
	if err != nil {
		log.Printf("invidious: stats probe failed for %s: %v", c.server, err)
		return false
	}

	var stats struct {
		Software json.RawMessage `json:"software"`
	}
	if err := json.Unmarshal(resp.Body, &stats); err != nil {
		log.Printf("invidious: stats probe returned invalid JSON from %s: %v", c.server, err)
		return false
	}

	return len(stats.Software) > 0
}

// AuthorizeURL builds the browser-facing authorization URL. The user
// opens it, approves the scopes, and the server redirects the token to
// callbackURL.
func (c *Client) AuthorizeURL(callbackURL string) string {
	// Epoch milliseconds plus the expiry in seconds.
	expire := time.Now().UnixMilli() + int64(authorizeExpiry.Seconds())

	q := url.Values{}
	q.Set("scopes", scopeUnregisterToken+","+scopeImportProfile)
	q.Set("callback_url", callbackURL)
	q.Set("expire", strconv.FormatInt(expire, 10))

	return c.server + "/authorize_token?" + q.Encode()
}

// chunk is one independently importable slice of the profile document.
type chunk struct {
	label   string
	payload export.InvidiousProfile
}

// buildChunks splits a document into chunks: one for subscriptions, one
// for the watch history, and one per playlist. Playlist resolution on
// the server side is slow, so keeping each playlist in its own request
// bounds the time any single upload can take.
func buildChunks(doc *export.InvidiousProfile) []chunk {
	var chunks []chunk

	if doc.Subscriptions != nil {
		chunks = append(chunks, chunk{
			label:   "subscriptions",
			payload: export.InvidiousProfile{Subscriptions: doc.Subscriptions},
		})
	}

	if doc.WatchHistory != nil {
		chunks = append(chunks, chunk{
			label:   "watch history",
			payload: export.InvidiousProfile{WatchHistory: doc.WatchHistory},
		})
	}

	for _, playlist := range doc.Playlists {
		chunks = append(chunks, chunk{
			label:   fmt.Sprintf("playlist %q", playlist.Title),
			payload: export.InvidiousProfile{Playlists: []export.InvidiousPlaylist{playlist}},
		})
	}

	return chunks
}

// ImportProfile uploads a profile document in chunks, sequentially and
// in document order. Each chunk is an independent authenticated POST;
// the first failing upload aborts the remaining chunks and propagates,
// leaving already-uploaded chunks applied on the server.
func (c *Client) ImportProfile(ctx context.Context, accessToken string, doc *export.InvidiousProfile) error {
	chunks := buildChunks(doc)

	headers := map[string]string{
		"Authorization": "Bearer " + accessToken,
	}

	for i, ch := range chunks {
		if c.Progress != nil {
			c.Progress(ch.label, i+1, len(chunks))
		}

		_, err := c.http.PostJSON(ctx, c.server+"/api/v1/auth/import/invidious", ch.payload, headers)
		if err != nil {
			return fmt.Errorf("import %s: %w", ch.label, err)
		}
	}

	return nil
}

// UnregisterToken revokes the access token on the server after the
// import is done.
func (c *Client) UnregisterToken(ctx context.Context, accessToken string) error {
	headers := map[string]string{
		"Authorization": "Bearer " + accessToken,
	}

	_, err := c.http.Do(ctx, http.MethodPost, c.server+"/api/v1/auth/tokens/unregister", nil, headers)
	if err != nil {
		return fmt.Errorf("unregister token: %w", err)
	}
	return nil
}
