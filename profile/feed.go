package profile

import (
	"context"
	"log"
)

// Unbounded disables the result limit when collecting a feed.
const Unbounded = -1

// PagedFeed is one page of a cursor-paged video collection. Advancing
// returns a new feed positioned on the next page; the cursor carries its
// own "get next page" capability, so CollectVideos can stay a pure loop.
type PagedFeed interface {
	// Videos returns the items on the current page.
	Videos() []Video

	// HasMore reports whether another page can be fetched.
	HasMore() bool

	// Continue fetches the next page. It is only valid when HasMore
	// returns true.
	Continue(ctx context.Context) (PagedFeed, error)
}

// CollectVideos walks a paged feed and accumulates at most limit videos,
// or every reachable video when limit is Unbounded.
//
// A failure while advancing to the next page degrades to a partial
// result: everything accumulated so far is returned and no error escapes.
// Callers must pass a finite limit for feeds that are not known to
// terminate; the paginator does not guard against endless cursors.
func CollectVideos(ctx context.Context, feed PagedFeed, limit int) []Video {
	videos := []Video{}

	for limit == Unbounded || len(videos) < limit {
		videos = append(videos, feed.Videos()...)
		if !feed.HasMore() {
			break
		}

		next, err := feed.Continue(ctx)
		if err != nil {
			// Keep what we have; a failed continuation must not abort
			// the rest of the profile fetch.
			log.Printf("profile: feed continuation failed, returning %d videos: %v", len(videos), err)
			break
		}
		feed = next
	}

	if limit != Unbounded && len(videos) > limit {
		videos = videos[:limit]
	}
	return videos
}
