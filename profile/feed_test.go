package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeFeed pages through a fixed set of video pages, optionally failing
// when advancing to a given page index.
type fakeFeed struct {
	pages   [][]Video
	index   int
	failAt  int // page index whose fetch fails; -1 for never
	fetches *int
}

func newFakeFeed(pages [][]Video, failAt int) *fakeFeed {
	fetches := 0
	return &fakeFeed{pages: pages, failAt: failAt, fetches: &fetches}
}

func (f *fakeFeed) Videos() []Video {
	return f.pages[f.index]
}

func (f *fakeFeed) HasMore() bool {
	return f.index < len(f.pages)-1
}

func (f *fakeFeed) Continue(ctx context.Context) (PagedFeed, error) {
	*f.fetches++
	next := f.index + 1
	if next == f.failAt {
		return nil, errors.New("continuation expired")
	}
	return &fakeFeed{pages: f.pages, index: next, failAt: f.failAt, fetches: f.fetches}, nil
}

func videoPage(prefix string, n int) []Video {
	page := make([]Video, n)
	for i := range page {
		page[i] = Video{ID: fmt.Sprintf("%s%d", prefix, i)}
	}
	return page
}

func TestCollectVideos_Unbounded(t *testing.T) {
	feed := newFakeFeed([][]Video{
		videoPage("a", 3),
		videoPage("b", 3),
		videoPage("c", 2),
	}, -1)

	videos := CollectVideos(context.Background(), feed, Unbounded)
	if len(videos) != 8 {
		t.Errorf("CollectVideos() returned %d videos, want 8", len(videos))
	}
	if videos[0].ID != "a0" || videos[7].ID != "c1" {
		t.Errorf("videos out of order: first=%s last=%s", videos[0].ID, videos[7].ID)
	}
}

func TestCollectVideos_LimitNeverExceeded(t *testing.T) {
	pages := [][]Video{
		videoPage("a", 3),
		videoPage("b", 3),
		videoPage("c", 3),
	}

	for limit := 0; limit <= 12; limit++ {
		feed := newFakeFeed(pages, -1)
		videos := CollectVideos(context.Background(), feed, limit)

		want := limit
		if want > 9 {
			want = 9
		}
		if len(videos) != want {
			t.Errorf("CollectVideos(limit=%d) returned %d videos, want %d", limit, len(videos), want)
		}
	}
}

func TestCollectVideos_TruncatesOvershootingPage(t *testing.T) {
	// The second page overshoots the limit; the result must still honor it.
	feed := newFakeFeed([][]Video{
		videoPage("a", 2),
		videoPage("b", 5),
	}, -1)

	videos := CollectVideos(context.Background(), feed, 4)
	if len(videos) != 4 {
		t.Fatalf("CollectVideos(limit=4) returned %d videos, want 4", len(videos))
	}
	if videos[3].ID != "b1" {
		t.Errorf("last video = %s, want b1", videos[3].ID)
	}
}

func TestCollectVideos_ZeroLimitFetchesNothing(t *testing.T) {
	feed := newFakeFeed([][]Video{
		videoPage("a", 3),
		videoPage("b", 3),
	}, -1)

	videos := CollectVideos(context.Background(), feed, 0)
	if len(videos) != 0 {
		t.Errorf("CollectVideos(limit=0) returned %d videos, want 0", len(videos))
	}
	if *feed.fetches != 0 {
		t.Errorf("CollectVideos(limit=0) fetched %d pages, want 0", *feed.fetches)
	}
}

func TestCollectVideos_PartialResultOnFailure(t *testing.T) {
	// Continuation fails advancing to the third page; the two accumulated
	// pages must be returned intact.
	feed := newFakeFeed([][]Video{
		videoPage("a", 3),
		videoPage("b", 3),
		videoPage("c", 3),
	}, 2)

	videos := CollectVideos(context.Background(), feed, Unbounded)
	if len(videos) != 6 {
		t.Fatalf("CollectVideos() returned %d videos, want 6", len(videos))
	}
	if videos[5].ID != "b2" {
		t.Errorf("last video = %s, want b2", videos[5].ID)
	}
}

func TestCollectVideos_FailureOnFirstContinuation(t *testing.T) {
	feed := newFakeFeed([][]Video{
		videoPage("a", 2),
		videoPage("b", 2),
	}, 1)

	videos := CollectVideos(context.Background(), feed, Unbounded)
	if len(videos) != 2 {
		t.Errorf("CollectVideos() returned %d videos, want 2", len(videos))
	}
}

func TestCollectVideos_SinglePage(t *testing.T) {
	feed := newFakeFeed([][]Video{videoPage("a", 2)}, -1)

	videos := CollectVideos(context.Background(), feed, 100)
	if len(videos) != 2 {
		t.Errorf("CollectVideos() returned %d videos, want 2", len(videos))
	}
	if *feed.fetches != 0 {
		t.Errorf("single exhausted page fetched %d continuations, want 0", *feed.fetches)
	}
}
