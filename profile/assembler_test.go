package profile

import (
	"context"
	"errors"
	"testing"
)

// fakeLibrary serves canned collections and records which accessors ran.
type fakeLibrary struct {
	channels  []Channel
	history   []Video
	liked     []Video
	later     []Video
	home      []Video
	refs      []PlaylistRef
	playlists map[string]Playlist
	videos    map[string][]Video

	channelsErr error
	historyErr  error

	calls []string
}

func (l *fakeLibrary) Channels(ctx context.Context) ([]Channel, error) {
	l.calls = append(l.calls, "channels")
	return l.channels, l.channelsErr
}

func (l *fakeLibrary) History(ctx context.Context) (PagedFeed, error) {
	l.calls = append(l.calls, "history")
	if l.historyErr != nil {
		return nil, l.historyErr
	}
	return newFakeFeed([][]Video{l.history}, -1), nil
}

func (l *fakeLibrary) LikedVideos(ctx context.Context) (PagedFeed, error) {
	l.calls = append(l.calls, "likedVideos")
	return newFakeFeed([][]Video{l.liked}, -1), nil
}

func (l *fakeLibrary) WatchLater(ctx context.Context) (PagedFeed, error) {
	l.calls = append(l.calls, "watchLater")
	return newFakeFeed([][]Video{l.later}, -1), nil
}

func (l *fakeLibrary) HomeFeed(ctx context.Context) (PagedFeed, error) {
	l.calls = append(l.calls, "homeFeed")
	return newFakeFeed([][]Video{l.home}, -1), nil
}

func (l *fakeLibrary) Playlists(ctx context.Context) ([]PlaylistRef, error) {
	l.calls = append(l.calls, "playlists")
	return l.refs, nil
}

func (l *fakeLibrary) Playlist(ctx context.Context, id string) (Playlist, PagedFeed, error) {
	l.calls = append(l.calls, "playlist:"+id)
	p, ok := l.playlists[id]
	if !ok {
		return Playlist{}, nil, errors.New("unknown playlist")
	}
	return p, newFakeFeed([][]Video{l.videos[id]}, -1), nil
}

func TestBuild_OnlyRequestedFieldsPresent(t *testing.T) {
	library := &fakeLibrary{
		channels: []Channel{{ID: "UC1", Name: "A"}},
		history:  videoPage("h", 2),
	}
	assembler := NewAssembler(library)

	p, err := assembler.Build(context.Background(), RequestedFields{Channels: true, History: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if p.Channels == nil || len(p.Channels) != 1 {
		t.Errorf("Channels = %v, want 1 channel", p.Channels)
	}
	if p.History == nil || len(p.History) != 2 {
		t.Errorf("History = %v, want 2 videos", p.History)
	}
	if p.LikedVideos != nil || p.WatchLater != nil || p.HomeFeed != nil || p.Playlists != nil {
		t.Error("unrequested collections must stay nil")
	}
}

func TestBuild_RequestedButEmptyIsNotNil(t *testing.T) {
	library := &fakeLibrary{}
	assembler := NewAssembler(library)

	p, err := assembler.Build(context.Background(), RequestedFields{Channels: true, LikedVideos: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if p.Channels == nil {
		t.Error("requested empty Channels is nil, want non-nil empty slice")
	}
	if p.LikedVideos == nil {
		t.Error("requested empty LikedVideos is nil, want non-nil empty slice")
	}
}

func TestBuild_FetchOrder(t *testing.T) {
	library := &fakeLibrary{
		refs: []PlaylistRef{{ID: "PL1", Title: "One"}},
		playlists: map[string]Playlist{
			"PL1": {ID: "PL1", Title: "One"},
		},
		videos: map[string][]Video{"PL1": videoPage("p", 1)},
	}
	assembler := NewAssembler(library)

	_, err := assembler.Build(context.Background(), RequestedFields{
		Channels:     true,
		History:      true,
		LikedVideos:  true,
		WatchLater:   true,
		HomeFeed:     true,
		AllPlaylists: true,
	})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := []string{"channels", "history", "likedVideos", "watchLater", "homeFeed", "playlists", "playlist:PL1"}
	if len(library.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", library.calls, want)
	}
	for i := range want {
		if library.calls[i] != want[i] {
			t.Errorf("calls[%d] = %s, want %s", i, library.calls[i], want[i])
		}
	}
}

func TestBuild_SelectedPlaylists(t *testing.T) {
	library := &fakeLibrary{
		refs: []PlaylistRef{
			{ID: "PL1", Title: "Keep"},
			{ID: "PL2", Title: "Skip"},
		},
		playlists: map[string]Playlist{
			"PL1": {ID: "PL1", Title: "Keep", Privacy: PrivacyPublic},
			"PL2": {ID: "PL2", Title: "Skip"},
		},
		videos: map[string][]Video{
			"PL1": videoPage("k", 2),
			"PL2": videoPage("s", 2),
		},
	}
	assembler := NewAssembler(library)

	fields := RequestedFields{
		PlaylistIDs: map[string]bool{
			"PL1":       true,
			"PLunknown": true, // not in the listing, must be ignored
		},
	}
	p, err := assembler.Build(context.Background(), fields)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if len(p.Playlists) != 1 {
		t.Fatalf("Playlists = %d entries, want 1", len(p.Playlists))
	}
	got := p.Playlists[0]
	if got.ID != "PL1" || got.Title != "Keep" || got.Privacy != PrivacyPublic {
		t.Errorf("playlist = %+v, want PL1/Keep/public", got)
	}
	if len(got.Videos) != 2 {
		t.Errorf("playlist videos = %d, want 2", len(got.Videos))
	}
}

func TestBuild_AccessorErrorPropagates(t *testing.T) {
	wantErr := errors.New("signed out")
	library := &fakeLibrary{historyErr: wantErr}
	assembler := NewAssembler(library)

	_, err := assembler.Build(context.Background(), RequestedFields{History: true})
	if !errors.Is(err, wantErr) {
		t.Errorf("Build() error = %v, want %v", err, wantErr)
	}
}

func TestBuild_ProgressNotifications(t *testing.T) {
	library := &fakeLibrary{
		refs: []PlaylistRef{{ID: "PL1", Title: "Mix tapes"}},
		playlists: map[string]Playlist{
			"PL1": {ID: "PL1", Title: "Mix tapes"},
		},
		videos: map[string][]Video{"PL1": nil},
	}

	var stages []string
	assembler := NewAssembler(library, WithProgress(func(stage string) {
		stages = append(stages, stage)
	}))

	_, err := assembler.Build(context.Background(), RequestedFields{
		Channels:     true,
		AllPlaylists: true,
	})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	want := []string{"Subscriptions", "Playlists", "Playlist: Mix tapes"}
	if len(stages) != len(want) {
		t.Fatalf("stages = %v, want %v", stages, want)
	}
	for i := range want {
		if stages[i] != want[i] {
			t.Errorf("stages[%d] = %q, want %q", i, stages[i], want[i])
		}
	}
}

func TestBuild_FeedLimitApplies(t *testing.T) {
	library := &fakeLibrary{history: videoPage("h", 10)}
	assembler := NewAssembler(library, WithFeedLimit(4))

	p, err := assembler.Build(context.Background(), RequestedFields{History: true})
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(p.History) != 4 {
		t.Errorf("History = %d videos, want 4", len(p.History))
	}
}
