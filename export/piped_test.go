package export

import (
	"reflect"
	"testing"

	"yt2alt/profile"
)

func TestToPipedSubscriptions(t *testing.T) {
	p := &profile.Profile{
		Channels: []profile.Channel{
			{ID: "UC1", Name: "A", Thumbnail: "//x/y.jpg"},
			{ID: "UC2", Name: "B"},
		},
	}

	doc := ToPipedSubscriptions(p)
	if doc == nil {
		t.Fatal("ToPipedSubscriptions() returned nil")
	}
	if doc.AppVersion != "" || doc.AppVersionInt != 0 {
		t.Errorf("app version fields = %q/%d, want empty/0", doc.AppVersion, doc.AppVersionInt)
	}

	want := PipedSubscription{URL: "https://www.youtube.com/channel/UC1", Name: "A", ServiceID: 0}
	if doc.Subscriptions[0] != want {
		t.Errorf("Subscriptions[0] = %+v, want %+v", doc.Subscriptions[0], want)
	}
}

func TestToPipedSubscriptions_NoChannels(t *testing.T) {
	if doc := ToPipedSubscriptions(&profile.Profile{History: []profile.Video{}}); doc != nil {
		t.Errorf("ToPipedSubscriptions(no channels) = %+v, want nil", doc)
	}
}

func TestToPipedPlaylists_Envelope(t *testing.T) {
	p := &profile.Profile{
		LikedVideos: []profile.Video{{ID: "l1"}},
		Playlists: []profile.Playlist{
			{Title: "Faves", Privacy: "Unlisted", Videos: []profile.Video{{ID: "v1"}}},
		},
	}

	doc := ToPipedPlaylists(p)
	if doc == nil {
		t.Fatal("ToPipedPlaylists() returned nil")
	}
	if doc.Format != "Piped" || doc.Version != 1 {
		t.Errorf("envelope = %s/%d, want Piped/1", doc.Format, doc.Version)
	}
	if len(doc.Playlists) != 2 {
		t.Fatalf("Playlists = %d entries, want 2", len(doc.Playlists))
	}

	liked := doc.Playlists[0]
	if liked.Name != "Liked videos" || liked.Visibility != "private" || liked.Type != "playlist" {
		t.Errorf("synthetic playlist = %+v", liked)
	}
	if !reflect.DeepEqual(liked.Videos, []string{"https://www.youtube.com/watch?v=l1"}) {
		t.Errorf("synthetic playlist videos = %v, want watch URLs", liked.Videos)
	}

	faves := doc.Playlists[1]
	if faves.Visibility != "unlisted" {
		t.Errorf("Visibility = %q, want unlisted", faves.Visibility)
	}
	if !reflect.DeepEqual(faves.Videos, []string{"https://www.youtube.com/watch?v=v1"}) {
		t.Errorf("playlist videos = %v, want watch URLs", faves.Videos)
	}
}

func TestToPipedPlaylists_NothingToExport(t *testing.T) {
	p := &profile.Profile{
		Channels: []profile.Channel{{ID: "UC1"}},
		History:  []profile.Video{{ID: "h1"}},
	}
	if doc := ToPipedPlaylists(p); doc != nil {
		t.Errorf("ToPipedPlaylists(no playlist sources) = %+v, want nil", doc)
	}
}

func TestToPipedPlaylists_EmptyRequestedCollection(t *testing.T) {
	// Requested but empty: the collection was imported, so it exports as
	// an empty playlist rather than nothing.
	p := &profile.Profile{WatchLater: []profile.Video{}}

	doc := ToPipedPlaylists(p)
	if doc == nil {
		t.Fatal("ToPipedPlaylists() returned nil for an imported empty collection")
	}
	if len(doc.Playlists) != 1 || doc.Playlists[0].Name != "Watch later" {
		t.Errorf("Playlists = %+v, want a single empty Watch later playlist", doc.Playlists)
	}
	if len(doc.Playlists[0].Videos) != 0 {
		t.Errorf("Videos = %v, want empty", doc.Playlists[0].Videos)
	}
}
