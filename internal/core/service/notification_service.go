package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/evamobilya/dealer-client/internal/core/domain"
	"github.com/evamobilya/dealer-client/internal/core/ports"
	"github.com/evamobilya/dealer-client/internal/pkg/metrics"
)

const (
	defaultFeedCooldown   = 30 * time.Second
	defaultUnreadCooldown = 10 * time.Second
	defaultPollInterval   = 60 * time.Second
	defaultPageSize       = 10
)

// NotificationOptions tunes the cooldown gates and the poller. Zero values
// fall back to the platform defaults above.
type NotificationOptions struct {
	FeedCooldown   time.Duration
	UnreadCooldown time.Duration
	PollInterval   time.Duration
	PageSize       int
}

func (o *NotificationOptions) withDefaults() NotificationOptions {
	out := *o
	if out.FeedCooldown <= 0 {
		out.FeedCooldown = defaultFeedCooldown
	}
	if out.UnreadCooldown <= 0 {
		out.UnreadCooldown = defaultUnreadCooldown
	}
	if out.PollInterval <= 0 {
		out.PollInterval = defaultPollInterval
	}
	if out.PageSize <= 0 {
		out.PageSize = defaultPageSize
	}
	return out
}

// NotificationService pages the user's notification feed and tracks the
// unread count, bounding request frequency with two independent cooldown
// gates. Read-state mutations are applied optimistically and never rolled
// back; the periodic unread poll is the reconciliation path.
type NotificationService struct {
	gw      ports.NotificationGateway
	session ports.SessionReader
	opts    NotificationOptions
	log     zerolog.Logger

	mu              sync.Mutex
	items           []domain.Notification
	unread          int
	page            int
	totalPages      int
	totalCount      int
	hasMore         bool
	errMsg          string
	lastFeedFetch   time.Time
	lastUnreadFetch time.Time
	fetchingFeed    bool
	fetchingUnread  bool
	// fetchSeq invalidates stale append responses: an append result is
	// only applied when its sequence number is still the latest issued.
	fetchSeq uint64
}

func NewNotificationService(gw ports.NotificationGateway, session ports.SessionReader, opts NotificationOptions, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		gw:      gw,
		session: session,
		opts:    opts.withDefaults(),
		log:     log,
	}
}

// FetchNotifications fetches one page of the feed. In append mode the page
// is concatenated for infinite scroll; otherwise it replaces the list. A
// full fetch within the feed cooldown window is suppressed.
func (s *NotificationService) FetchNotifications(ctx context.Context, page int, appendMode bool) error {
	return s.fetchFeed(ctx, page, appendMode, false)
}

func (s *NotificationService) fetchFeed(ctx context.Context, page int, appendMode, force bool) error {
	token := s.session.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	if s.fetchingFeed {
		metrics.FeedFetchSuppressedTotal.WithLabelValues("in_flight").Inc()
		s.mu.Unlock()
		return nil
	}
	if !appendMode && !force && time.Since(s.lastFeedFetch) < s.opts.FeedCooldown {
		metrics.FeedFetchSuppressedTotal.WithLabelValues("feed_cooldown").Inc()
		s.mu.Unlock()
		return nil
	}
	s.fetchingFeed = true
	s.fetchSeq++
	seq := s.fetchSeq
	s.mu.Unlock()

	result, err := s.gw.List(ctx, token, page, s.opts.PageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchingFeed = false

	if err != nil {
		// Previously loaded notifications stay on screen.
		s.errMsg = err.Error()
		s.log.Warn().Err(err).Int("page", page).Msg("notification fetch failed")
		return err
	}

	if appendMode {
		if seq != s.fetchSeq {
			s.log.Debug().Int("page", page).Msg("discarding stale append response")
			return nil
		}
		s.items = append(s.items, result.Items...)
	} else {
		s.items = append([]domain.Notification(nil), result.Items...)
		s.lastFeedFetch = time.Now()
	}

	s.page = result.Page
	if s.page == 0 {
		s.page = page
	}
	s.totalPages = result.TotalPages
	s.totalCount = result.TotalCount
	s.hasMore = s.page < s.totalPages
	s.errMsg = ""
	return nil
}

// FetchUnreadCount refreshes the unread counter, rate limited by its own
// cooldown gate. Failures are logged only.
func (s *NotificationService) FetchUnreadCount(ctx context.Context) error {
	token := s.session.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	s.mu.Lock()
	if s.fetchingUnread {
		metrics.FeedFetchSuppressedTotal.WithLabelValues("in_flight").Inc()
		s.mu.Unlock()
		return nil
	}
	if time.Since(s.lastUnreadFetch) < s.opts.UnreadCooldown {
		metrics.FeedFetchSuppressedTotal.WithLabelValues("unread_cooldown").Inc()
		s.mu.Unlock()
		return nil
	}
	s.fetchingUnread = true
	s.mu.Unlock()

	count, err := s.gw.UnreadCount(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetchingUnread = false

	if err != nil {
		s.log.Debug().Err(err).Msg("unread count fetch failed")
		return err
	}

	s.unread = count
	s.lastUnreadFetch = time.Now()
	return nil
}

// MarkAsRead flags one notification as read. The local mutation is applied
// whether or not the server accepted it (accepted drift, reconciled by the
// next unread poll).
func (s *NotificationService) MarkAsRead(ctx context.Context, id int64) error {
	token := s.session.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	err := s.gw.MarkRead(ctx, token, id)

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id && !s.items[i].IsRead {
			s.items[i].IsRead = true
			if s.unread > 0 {
				s.unread--
			}
		}
	}
	if err != nil {
		s.errMsg = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn().Err(err).Int64("id", id).Msg("mark as read failed, keeping local state")
		return err
	}
	return nil
}

// MarkAllAsRead flags the entire feed as read, optimistically.
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	token := s.session.Token()
	if token == "" {
		return domain.ErrNotAuthenticated
	}

	err := s.gw.MarkAllRead(ctx, token)

	s.mu.Lock()
	for i := range s.items {
		s.items[i].IsRead = true
	}
	s.unread = 0
	if err != nil {
		s.errMsg = err.Error()
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Warn().Err(err).Msg("mark all as read failed, keeping local state")
		return err
	}
	return nil
}

// LoadMore appends the next page. No-op when the end has been reached or a
// fetch is already in flight.
func (s *NotificationService) LoadMore(ctx context.Context) error {
	s.mu.Lock()
	if !s.hasMore || s.fetchingFeed {
		s.mu.Unlock()
		return nil
	}
	next := s.page + 1
	s.mu.Unlock()

	return s.fetchFeed(ctx, next, true, false)
}

// GoToPage fetches an arbitrary page in replace mode, bypassing the feed
// cooldown. Out-of-range pages are a no-op and mutate nothing.
func (s *NotificationService) GoToPage(ctx context.Context, page int) error {
	s.mu.Lock()
	if page < 1 || page > s.totalPages || s.fetchingFeed {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	return s.fetchFeed(ctx, page, false, true)
}

// RefreshNotifications resets both cooldown gates and pagination, then
// fetches page one and the unread count concurrently.
func (s *NotificationService) RefreshNotifications(ctx context.Context) {
	s.mu.Lock()
	s.lastFeedFetch = time.Time{}
	s.lastUnreadFetch = time.Time{}
	s.page = 1
	// Invalidate any in-flight append chain.
	s.fetchSeq++
	s.mu.Unlock()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = s.fetchFeed(ctx, 1, false, true)
	}()
	go func() {
		defer wg.Done()
		_ = s.FetchUnreadCount(ctx)
	}()
	wg.Wait()
}

// AddNotification prepends a locally delivered notification, the hook point
// for push-style delivery.
func (s *NotificationService) AddNotification(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Notification{n}, s.items...)
	s.totalCount++
	if !n.IsRead {
		s.unread++
	}
}

// StartPolling launches the background unread-count poller. It stops when
// ctx is cancelled and skips ticks without an active session.
func (s *NotificationService) StartPolling(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.opts.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if s.session.Token() == "" {
					continue
				}
				_ = s.FetchUnreadCount(ctx)
			}
		}
	}()
}

// OnSessionChanged resets feed state on identity change. On login only the
// unread count is fetched eagerly; the feed itself loads lazily on first
// display. Wire it to SessionService.OnSessionChange.
func (s *NotificationService) OnSessionChanged(u *domain.User) {
	s.mu.Lock()
	s.items = nil
	s.unread = 0
	s.page = 0
	s.totalPages = 0
	s.totalCount = 0
	s.hasMore = false
	s.errMsg = ""
	s.lastFeedFetch = time.Time{}
	s.lastUnreadFetch = time.Time{}
	s.fetchSeq++
	s.mu.Unlock()

	if u != nil {
		_ = s.FetchUnreadCount(context.Background())
	}
}

// Notifications returns a copy of the loaded feed, most recent first.
func (s *NotificationService) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Notification(nil), s.items...)
}

func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread
}

func (s *NotificationService) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

func (s *NotificationService) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPages
}

func (s *NotificationService) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalCount
}

func (s *NotificationService) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// Err returns the last recorded fetch error message, empty after a
// successful fetch.
func (s *NotificationService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
