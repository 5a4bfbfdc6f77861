package profile

import (
	"context"
	"fmt"
)

// LibraryAccess is the upstream capability the assembler pulls from. The
// YouTube implementations live in the youtube package; tests use fakes.
type LibraryAccess interface {
	// Channels returns every subscribed channel.
	Channels(ctx context.Context) ([]Channel, error)

	// History returns the first page of the watch history feed.
	History(ctx context.Context) (PagedFeed, error)

	// LikedVideos returns the first page of the liked videos feed.
	LikedVideos(ctx context.Context) (PagedFeed, error)

	// WatchLater returns the first page of the watch later feed.
	WatchLater(ctx context.Context) (PagedFeed, error)

	// HomeFeed returns the first page of the recommended videos feed.
	HomeFeed(ctx context.Context) (PagedFeed, error)

	// Playlists lists the library's playlists without resolving videos.
	Playlists(ctx context.Context) ([]PlaylistRef, error)

	// Playlist returns a playlist's metadata and the first page of its
	// video feed.
	Playlist(ctx context.Context, id string) (Playlist, PagedFeed, error)
}

// ProgressFunc is notified once per collection before it is fetched.
type ProgressFunc func(stage string)

// DefaultFeedLimit caps each collected feed. Feeds like the home feed
// never run out of pages, so an unbounded walk would not terminate.
const DefaultFeedLimit = 100

// Assembler builds a Profile from the requested fields.
type Assembler struct {
	library  LibraryAccess
	limit    int
	progress ProgressFunc
}

// AssemblerOption configures the assembler.
type AssemblerOption func(*Assembler)

// WithFeedLimit sets the per-feed video limit. Unbounded is accepted but
// only safe for feeds that terminate.
func WithFeedLimit(limit int) AssemblerOption {
	return func(a *Assembler) {
		a.limit = limit
	}
}

// WithProgress sets the progress notification callback.
func WithProgress(fn ProgressFunc) AssemblerOption {
	return func(a *Assembler) {
		a.progress = fn
	}
}

// NewAssembler creates an assembler over the given library access.
func NewAssembler(library LibraryAccess, opts ...AssemblerOption) *Assembler {
	a := &Assembler{
		library: library,
		limit:   DefaultFeedLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Build fetches every requested collection and assembles the profile.
// Collections are fetched in a fixed order: channels, history, liked
// videos, watch later, home feed, playlists. Fields that were not
// requested stay nil; requested fields are always non-nil, even when
// empty.
func (a *Assembler) Build(ctx context.Context, fields RequestedFields) (*Profile, error) {
	p := &Profile{}

	if fields.Channels {
		a.report("Subscriptions")
		channels, err := a.library.Channels(ctx)
		if err != nil {
			return nil, fmt.Errorf("read subscriptions: %w", err)
		}
		if channels == nil {
			channels = []Channel{}
		}
		p.Channels = channels
	}

	if fields.History {
		a.report("Watch history")
		videos, err := a.collectFeed(ctx, a.library.History)
		if err != nil {
			return nil, fmt.Errorf("read watch history: %w", err)
		}
		p.History = videos
	}

	if fields.LikedVideos {
		a.report("Liked videos")
		videos, err := a.collectFeed(ctx, a.library.LikedVideos)
		if err != nil {
			return nil, fmt.Errorf("read liked videos: %w", err)
		}
		p.LikedVideos = videos
	}

	if fields.WatchLater {
		a.report("Watch later")
		videos, err := a.collectFeed(ctx, a.library.WatchLater)
		if err != nil {
			return nil, fmt.Errorf("read watch later: %w", err)
		}
		p.WatchLater = videos
	}

	if fields.HomeFeed {
		a.report("Recommended videos")
		videos, err := a.collectFeed(ctx, a.library.HomeFeed)
		if err != nil {
			return nil, fmt.Errorf("read recommended videos: %w", err)
		}
		p.HomeFeed = videos
	}

	if fields.WantsPlaylists() {
		a.report("Playlists")
		playlists, err := a.buildPlaylists(ctx, fields)
		if err != nil {
			return nil, fmt.Errorf("read playlists: %w", err)
		}
		p.Playlists = playlists
	}

	return p, nil
}

// buildPlaylists resolves the requested playlists against the library
// listing. Requested ids that match no listed playlist are skipped.
func (a *Assembler) buildPlaylists(ctx context.Context, fields RequestedFields) ([]Playlist, error) {
	refs, err := a.library.Playlists(ctx)
	if err != nil {
		return nil, err
	}

	playlists := []Playlist{}
	for _, ref := range refs {
		if !fields.wantPlaylist(ref.ID) {
			continue
		}

		a.report("Playlist: " + ref.Title)
		playlist, feed, err := a.library.Playlist(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("playlist %s: %w", ref.ID, err)
		}
		playlist.Videos = CollectVideos(ctx, feed, a.limit)
		playlists = append(playlists, playlist)
	}
	return playlists, nil
}

// collectFeed opens a feed and walks it up to the configured limit.
func (a *Assembler) collectFeed(ctx context.Context, open func(context.Context) (PagedFeed, error)) ([]Video, error) {
	feed, err := open(ctx)
	if err != nil {
		return nil, err
	}
	return CollectVideos(ctx, feed, a.limit), nil
}

func (a *Assembler) report(stage string) {
	if a.progress != nil {
		a.progress(stage)
	}
}
