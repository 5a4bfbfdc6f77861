package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"

	"yt2alt/profile"
)

// dataAPIServer serves canned Data API responses keyed by URL path.
func dataAPIServer(t *testing.T, handler http.HandlerFunc) *DataAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	api, err := NewDataAPI(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithAPIKey("test-key"),
	)
	if err != nil {
		t.Fatalf("NewDataAPI() failed: %v", err)
	}
	return api
}

func TestDataAPI_UnsupportedCollections(t *testing.T) {
	api := dataAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})

	ctx := context.Background()
	if _, err := api.History(ctx); !errors.Is(err, ErrUnsupportedCollection) {
		t.Errorf("History() error = %v, want ErrUnsupportedCollection", err)
	}
	if _, err := api.WatchLater(ctx); !errors.Is(err, ErrUnsupportedCollection) {
		t.Errorf("WatchLater() error = %v, want ErrUnsupportedCollection", err)
	}
	if _, err := api.HomeFeed(ctx); !errors.Is(err, ErrUnsupportedCollection) {
		t.Errorf("HomeFeed() error = %v, want ErrUnsupportedCollection", err)
	}
}

func TestDataAPI_Channels_Pagination(t *testing.T) {
	api := dataAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			w.Write([]byte(`{
				"items": [{"snippet": {
					"title": "Channel One",
					"resourceId": {"channelId": "UC1"},
					"thumbnails": {"default": {"url": "https://example.com/uc1.jpg"}}
				}}],
				"nextPageToken": "P2"
			}`))
			return
		}
		w.Write([]byte(`{
			"items": [{"snippet": {"title": "Channel Two", "resourceId": {"channelId": "UC2"}}}]
		}`))
	})

	channels, err := api.Channels(context.Background())
	if err != nil {
		t.Fatalf("Channels() failed: %v", err)
	}
	if len(channels) != 2 {
		t.Fatalf("got %d channels, want 2", len(channels))
	}

	want := profile.Channel{ID: "UC1", Name: "Channel One", Thumbnail: "https://example.com/uc1.jpg"}
	if channels[0] != want {
		t.Errorf("channels[0] = %+v, want %+v", channels[0], want)
	}
	if channels[1].ID != "UC2" || channels[1].Thumbnail != "" {
		t.Errorf("channels[1] = %+v", channels[1])
	}
}

func TestDataAPI_LikedVideos(t *testing.T) {
	api := dataAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("myRating"); got != "like" {
			t.Errorf("myRating = %q, want like", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [{
				"id": "v1",
				"snippet": {
					"title": "Liked",
					"channelTitle": "Author A",
					"channelId": "UCa",
					"publishedAt": "2023-01-02T03:04:05Z",
					"liveBroadcastContent": "none"
				},
				"contentDetails": {"duration": "PT4M13S"},
				"statistics": {"viewCount": "1926729"}
			}]
		}`))
	})

	feed, err := api.LikedVideos(context.Background())
	if err != nil {
		t.Fatalf("LikedVideos() failed: %v", err)
	}

	videos := feed.Videos()
	if len(videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(videos))
	}
	v := videos[0]
	if v.ID != "v1" || v.Title != "Liked" || v.Author != "Author A" || v.AuthorID != "UCa" {
		t.Errorf("video = %+v", v)
	}
	if v.LengthSeconds != 253 {
		t.Errorf("LengthSeconds = %d, want 253", v.LengthSeconds)
	}
	if v.ViewCount != "1926729" {
		t.Errorf("ViewCount = %q, want 1926729", v.ViewCount)
	}
	if v.Published == 0 {
		t.Error("Published = 0, want parsed epoch")
	}
	if feed.HasMore() {
		t.Error("HasMore() = true with no next page token")
	}
}

func TestDataAPI_Playlists(t *testing.T) {
	api := dataAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("mine"); got != "true" {
			t.Errorf("mine = %q, want true", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": "PLone", "snippet": {"title": "Faves"}},
				{"id": "PLtwo", "snippet": {"title": "Later"}}
			]
		}`))
	})

	refs, err := api.Playlists(context.Background())
	if err != nil {
		t.Fatalf("Playlists() failed: %v", err)
	}
	if len(refs) != 2 || refs[0].ID != "PLone" || refs[1].Title != "Later" {
		t.Errorf("refs = %+v", refs)
	}
}

func TestDataAPI_Playlist(t *testing.T) {
	api := dataAPIServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Query().Get("id") == "PLone":
			w.Write([]byte(`{
				"items": [{
					"id": "PLone",
					"snippet": {"title": "Faves", "description": "the good ones"},
					"status": {"privacyStatus": "UNLISTED"}
				}]
			}`))
		case r.URL.Query().Get("playlistId") == "PLone":
			w.Write([]byte(`{
				"items": [
					{"snippet": {"title": "Kept", "videoOwnerChannelTitle": "Author C", "videoOwnerChannelId": "UCc"},
					 "contentDetails": {"videoId": "p1"}},
					{"snippet": {"title": "Gone"}, "contentDetails": {}}
				]
			}`))
		default:
			t.Errorf("unexpected request: %s", r.URL.String())
			w.Write([]byte(`{}`))
		}
	})

	meta, feed, err := api.Playlist(context.Background(), "PLone")
	if err != nil {
		t.Fatalf("Playlist() failed: %v", err)
	}
	if meta.Title != "Faves" || meta.Description != "the good ones" {
		t.Errorf("meta = %+v", meta)
	}
	if meta.Privacy != profile.PrivacyUnlisted {
		t.Errorf("meta.Privacy = %q, want unlisted", meta.Privacy)
	}

	// The item without a video ID is dropped.
	videos := feed.Videos()
	if len(videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(videos))
	}
	if videos[0].ID != "p1" || videos[0].AuthorID != "UCc" {
		t.Errorf("videos[0] = %+v", videos[0])
	}
}

func TestParseISODuration(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"PT4M13S", 253},
		{"PT1H2M3S", 3723},
		{"PT59S", 59},
		{"P1DT1S", 86401},
		{"PT0S", 0},
		{"", 0},
		{"P", 0},
		{"4:13", 0},
		{"PT1X", 0},
	}

	for _, tt := range tests {
		if got := parseISODuration(tt.in); got != tt.want {
			t.Errorf("parseISODuration(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
