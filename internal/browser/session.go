package browser

import (
	"context"
	"sync"
	"time"

	"github.com/killallgit/podcast-search/pkg/logger"
)

const (
	DefaultPageSize = 10
	DefaultDebounce = 500 * time.Millisecond
	DefaultTimeout  = 15 * time.Second
)

// Options configures a Session
type Options struct {
	PageSize int
	Debounce time.Duration
	Timeout  time.Duration

	// OnChange receives every new snapshot. It is called from session
	// goroutines and must not block; compare Version to drop stale ones.
	OnChange func(Snapshot)
}

// Session holds the browse state: input, page, results and request bookkeeping
type Session struct {
	fetcher   Fetcher
	debouncer *Debouncer
	opts      Options

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup

	mu       sync.Mutex
	version  uint64
	input    string
	page     int
	last     bool
	loading  bool
	fetched  bool
	err      string
	items    []Podcast
	seq      uint64
	inflight context.CancelFunc
	closed   bool
}

// NewSession creates a session on page 1; call Start to load it
func NewSession(fetcher Fetcher, opts Options) *Session {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Debounce < 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	ctx, stop := context.WithCancel(context.Background())
	s := &Session{
		fetcher: fetcher,
		opts:    opts,
		ctx:     ctx,
		stop:    stop,
		page:    1,
	}
	s.debouncer = NewDebouncer(opts.Debounce, s.fetch)
	return s
}

// Start schedules the initial load
func (s *Session) Start() {
	s.debouncer.Trigger()
}

// SetInput stores the search text and schedules a fetch of the current page
func (s *Session) SetInput(input string) {
	s.mu.Lock()
	if s.input == input {
		s.mu.Unlock()
		return
	}
	s.input = input
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
	s.debouncer.Trigger()
}

// Submit fetches the current page immediately
func (s *Session) Submit() {
	s.debouncer.Flush()
}

// Next moves forward one page unless the current page is the last one
func (s *Session) Next() bool {
	s.mu.Lock()
	if s.last {
		s.mu.Unlock()
		return false
	}
	s.page++
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
	s.debouncer.Trigger()
	return true
}

// Previous moves back one page unless already on page 1
func (s *Session) Previous() bool {
	s.mu.Lock()
	if s.page <= 1 {
		s.mu.Unlock()
		return false
	}
	s.page--
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
	s.debouncer.Trigger()
	return true
}

// GoTo jumps to page n (n >= 1) and schedules a fetch
func (s *Session) GoTo(n int) {
	if n < 1 {
		n = 1
	}
	s.mu.Lock()
	s.page = n
	snap := s.changedLocked()
	s.mu.Unlock()

	s.notify(snap)
	s.debouncer.Trigger()
}

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Wait blocks until no fetch is in flight
func (s *Session) Wait() {
	s.wg.Wait()
}

// Close cancels the pending timer and any in-flight request
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.inflight != nil {
		s.inflight()
		s.inflight = nil
	}
	s.mu.Unlock()

	s.debouncer.Stop()
	s.stop()
	s.wg.Wait()
}

func (s *Session) fetch() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	// a newer request supersedes whatever is in flight
	if s.inflight != nil {
		s.inflight()
	}
	s.seq++
	seq := s.seq
	q := Query{Page: s.page, Limit: s.opts.PageSize, Search: s.input}

	ctx, cancel := context.WithTimeout(s.ctx, s.opts.Timeout)
	s.inflight = cancel
	s.loading = true
	snap := s.changedLocked()
	s.wg.Add(1)
	s.mu.Unlock()

	s.notify(snap)

	go func() {
		defer s.wg.Done()
		defer cancel()

		resp, err := s.fetcher.Fetch(ctx, q)

		s.mu.Lock()
		if s.closed || seq != s.seq {
			s.mu.Unlock()
			logger.Debug().Uint64("seq", seq).Msg("discarding superseded response")
			return
		}
		s.inflight = nil
		s.loading = false
		if err != nil {
			s.err = err.Error()
			logger.Warn().Err(err).Int("page", q.Page).Str("search", q.Search).Msg("fetch failed")
		} else {
			s.items = resp.Items
			s.fetched = true
			s.last = len(resp.Items) < q.Limit
			s.err = ""
		}
		snap := s.changedLocked()
		s.mu.Unlock()

		s.notify(snap)
	}()
}

func (s *Session) changedLocked() Snapshot {
	s.version++
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	items := make([]Podcast, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Version:    s.version,
		Input:      s.input,
		Page:       s.page,
		Limit:      s.opts.PageSize,
		IsLastPage: s.last,
		Loading:    s.loading,
		Fetched:    s.fetched,
		Err:        s.err,
		Items:      items,
	}
}

func (s *Session) notify(snap Snapshot) {
	if s.opts.OnChange != nil {
		s.opts.OnChange(snap)
	}
}
