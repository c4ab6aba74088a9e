package dashboard

import (
	"context"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// DefaultPageSize is the page length the interactive feed requests when the
// caller does not choose one.
const DefaultPageSize = 10

// Fetcher is the slice of the API surface the feed depends on. *Client
// satisfies it; tests drive the feed with a stub.
type Fetcher interface {
	ListActivities(ctx context.Context, opts ListOptions) ([]*Activity, error)
	CreateActivity(ctx context.Context, draft *ActivityDraft) (*Activity, error)
	DeleteActivity(ctx context.Context, id int) error
	Stats(ctx context.Context, window StatsWindow) (*ActivityStats, error)
}

// State is one consistent view of the feed: the accumulated activity list,
// the latest stats, and the pagination cursor. Values returned by Snapshot
// share the underlying records; treat them as read-only.
type State struct {
	Activities []*Activity
	Stats      *ActivityStats
	Loading    bool
	Err        string
	Limit      int
	Offset     int
	HasMore    bool
}

// State transitions are pure: value in, value out, no feed internals. The
// feed applies them under its mutex; tests drive them through the feed with
// a stub Fetcher.

func fetchStarted(s State) State {
	s.Loading = true
	s.Err = ""
	return s
}

func fetchFailed(s State, err error) State {
	s.Loading = false
	s.Err = err.Error()
	return s
}

func firstPageLoaded(s State, page []*Activity) State {
	s.Loading = false
	s.Activities = append([]*Activity(nil), page...)
	s.Offset = 0
	s.HasMore = len(page) == s.Limit
	return s
}

func pageAppended(s State, offset int, page []*Activity) State {
	s.Loading = false
	s.Activities = append(append([]*Activity(nil), s.Activities...), page...)
	s.Offset = offset
	s.HasMore = len(page) == s.Limit
	return s
}

func createApplied(s State, created *Activity) State {
	s.Activities = append([]*Activity{created}, s.Activities...)
	return s
}

func deleteApplied(s State, id int) State {
	s.Activities = lo.Filter(s.Activities, func(a *Activity, _ int) bool {
		return a.ID != id
	})
	return s
}

func statsLoaded(s State, stats *ActivityStats) State {
	s.Stats = stats
	return s
}

func errorSurfaced(s State, err error) State {
	s.Err = err.Error()
	return s
}

// Feed accumulates one user's activity pages and stats behind a mutex.
//
// Every list and stats fetch is tagged with a sequence number drawn when the
// request is issued; a completion whose tag is no longer the latest issued is
// discarded, so a slow response can never overwrite the result of a newer
// request. Nothing in the feed retries or cancels: a failed call parks its
// message in State.Err and waits for the user to trigger the action again.
type Feed struct {
	api Fetcher

	mu       sync.Mutex
	state    State
	listSeq  uint64
	statsSeq uint64
}

func NewFeed(api Fetcher, pageSize int) *Feed {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Feed{
		api:   api,
		state: State{Limit: pageSize},
	}
}

// Snapshot returns a copy of the current state.
func (f *Feed) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FetchFirstPage replaces the accumulated list with the newest page. It
// supersedes any fetch still in flight.
func (f *Feed) FetchFirstPage(ctx context.Context) error {
	f.mu.Lock()
	f.listSeq++
	tag := f.listSeq
	opts := ListOptions{Limit: f.state.Limit}
	f.state = fetchStarted(f.state)
	f.mu.Unlock()

	page, err := f.api.ListActivities(ctx, opts)
	f.finishListFetch(tag, 0, true, page, err)
	return err
}

// LoadMore appends the next page to the accumulated list. It is a no-op
// while a fetch is in flight or when the last page was short.
func (f *Feed) LoadMore(ctx context.Context) error {
	f.mu.Lock()
	if f.state.Loading || !f.state.HasMore {
		f.mu.Unlock()
		return nil
	}
	f.listSeq++
	tag := f.listSeq
	offset := f.state.Offset + f.state.Limit
	opts := ListOptions{Limit: f.state.Limit, Offset: offset}
	f.state = fetchStarted(f.state)
	f.mu.Unlock()

	page, err := f.api.ListActivities(ctx, opts)
	f.finishListFetch(tag, offset, false, page, err)
	return err
}

func (f *Feed) finishListFetch(tag uint64, offset int, replace bool, page []*Activity, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if tag != f.listSeq {
		// A newer fetch owns the state now.
		return
	}

	if err != nil {
		f.state = fetchFailed(f.state, err)
		return
	}

	if replace {
		f.state = firstPageLoaded(f.state, page)
	} else {
		f.state = pageAppended(f.state, offset, page)
	}
}

// Create records a new activity, prepends it to the list once the server
// confirms it, and refetches stats. A failed create leaves the list alone.
func (f *Feed) Create(ctx context.Context, draft *ActivityDraft) (*Activity, error) {
	created, err := f.api.CreateActivity(ctx, draft)
	if err != nil {
		f.mu.Lock()
		f.state = errorSurfaced(f.state, err)
		f.mu.Unlock()
		return nil, err
	}

	f.mu.Lock()
	f.state = createApplied(f.state, created)
	f.mu.Unlock()

	// refreshStats surfaces its own failure inline.
	_ = f.refreshStats(ctx)

	return created, nil
}

// Delete removes an activity, filters it out of the list once the server
// confirms it, and refetches stats. A failed delete leaves the list alone.
func (f *Feed) Delete(ctx context.Context, id int) error {
	if err := f.api.DeleteActivity(ctx, id); err != nil {
		f.mu.Lock()
		f.state = errorSurfaced(f.state, err)
		f.mu.Unlock()
		return err
	}

	f.mu.Lock()
	f.state = deleteApplied(f.state, id)
	f.mu.Unlock()

	_ = f.refreshStats(ctx)

	return nil
}

// Refresh resets the cursor and fetches the first page and the stats
// concurrently.
func (f *Feed) Refresh(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error {
		return f.FetchFirstPage(ctx)
	})
	g.Go(func() error {
		return f.refreshStats(ctx)
	})
	return g.Wait()
}

func (f *Feed) refreshStats(ctx context.Context) error {
	f.mu.Lock()
	f.statsSeq++
	tag := f.statsSeq
	f.mu.Unlock()

	stats, err := f.api.Stats(ctx, StatsWindow{})

	f.mu.Lock()
	defer f.mu.Unlock()

	if tag != f.statsSeq {
		return err
	}

	if err != nil {
		f.state = errorSurfaced(f.state, err)
		return err
	}

	f.state = statsLoaded(f.state, stats)
	return nil
}
