package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"sletayka/internal/adapters/observability"
	"sletayka/internal/domain"
)

// ErrRefreshInFlight is returned when a refresh cycle is requested
// while the previous one has not finished its network round trip.
var ErrRefreshInFlight = errors.New("catalog refresh already in flight")

const snapshotKey = "catalog:snapshot"

// snapshot is the cached copy of the last successfully fetched catalog.
type snapshot struct {
	Tours     []domain.Tour `json:"tours"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Notice is the one-shot hot-deal notification currently on display.
type Notice struct {
	Tour    domain.Tour `json:"tour"`
	ShownAt time.Time   `json:"shownAt"`
}

// CatalogService owns the in-memory tour list: it refreshes it from
// the feed, answers filtered queries, and surfaces newly appeared hot
// deals as a transient notice.
type CatalogService struct {
	feed      domain.FeedClient
	cache     domain.Cache
	notifier  domain.Notifier
	snapTTL   time.Duration
	noticeTTL time.Duration

	// weight-1 semaphore serializes refresh cycles
	inflight *semaphore.Weighted

	mu         sync.RWMutex
	tours      []domain.Tour
	updatedAt  time.Time
	loaded     bool
	prevHotIDs map[string]struct{}
	notice     *Notice
	dismissed  bool
}

func NewCatalogService(feed domain.FeedClient, cache domain.Cache, notifier domain.Notifier, snapTTL, noticeTTL time.Duration) *CatalogService {
	if noticeTTL <= 0 {
		noticeTTL = 10 * time.Second
	}
	return &CatalogService{
		feed:      feed,
		cache:     cache,
		notifier:  notifier,
		snapTTL:   snapTTL,
		noticeTTL: noticeTTL,
		inflight:  semaphore.NewWeighted(1),
	}
}

// Seed loads the initial catalog: the cached snapshot if one exists,
// the embedded fallback list otherwise. Never notifies.
func (s *CatalogService) Seed(ctx context.Context) {
	tours := FallbackTours()
	updated := time.Time{}

	if s.cache != nil {
		var snap snapshot
		if ok, err := s.cache.Get(ctx, snapshotKey, &snap); err != nil {
			log.Warn().Err(err).Msg("catalog snapshot read failed, using fallback list")
		} else if ok && len(snap.Tours) > 0 {
			tours = snap.Tours
			updated = snap.UpdatedAt
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tours = tours
	s.updatedAt = updated
	s.prevHotIDs = hotIDs(tours)
	s.loaded = true
}

// Refresh performs one fetch cycle: pull the feed, swap the catalog,
// diff hot deals against the previous cycle and raise a notice for the
// first strictly new one. On fetch failure the current list is kept.
// Cycles are serialized; a concurrent call gets ErrRefreshInFlight.
func (s *CatalogService) Refresh(ctx context.Context) error {
	if !s.inflight.TryAcquire(1) {
		return ErrRefreshInFlight
	}
	defer s.inflight.Release(1)

	tours, err := s.feed.GetTours(ctx)
	if err != nil {
		observability.ObserveRefresh("error")
		return err
	}
	if len(tours) == 0 {
		// empty feed: keep whatever we are already serving
		observability.ObserveRefresh("empty")
		log.Info().Msg("feed returned no tours, keeping current list")
		return nil
	}

	hot := domain.HotDeals(tours)
	now := time.Now().UTC()

	s.mu.Lock()
	var newDeal *domain.Tour
	if s.loaded {
		for i := range hot {
			if _, seen := s.prevHotIDs[hot[i].ID]; !seen {
				newDeal = &hot[i]
				break // one deal per cycle; the rest wait for the next diff
			}
		}
	}
	s.tours = tours
	s.updatedAt = now
	s.prevHotIDs = hotIDs(tours)
	s.loaded = true
	if newDeal != nil {
		s.notice = &Notice{Tour: *newDeal, ShownAt: now}
		s.dismissed = false
	}
	s.mu.Unlock()

	observability.ObserveRefresh("ok")
	observability.ObserveHotDeals(len(hot))

	if s.cache != nil {
		snap := snapshot{Tours: tours, UpdatedAt: now}
		if err := s.cache.Set(ctx, snapshotKey, snap, int(s.snapTTL.Seconds())); err != nil {
			log.Warn().Err(err).Msg("catalog snapshot write failed")
		}
	}

	if newDeal != nil {
		observability.ObserveNotice()
		log.Info().Str("id", newDeal.ID).Str("title", newDeal.Title).Msg("new hot deal")
		if s.notifier != nil {
			if err := s.notifier.NotifyHotDeal(ctx, *newDeal); err != nil {
				log.Warn().Err(err).Msg("hot deal notify failed")
			}
		}
	}
	return nil
}

// Run drives periodic refreshes until ctx is cancelled. The first
// cycle runs immediately; the ticker is stopped on exit.
func (s *CatalogService) Run(ctx context.Context, interval time.Duration) {
	s.refreshLogged(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshLogged(ctx)
		}
	}
}

func (s *CatalogService) refreshLogged(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInFlight) {
		log.Warn().Err(err).Msg("catalog refresh failed")
	}
}

// Tours returns the filtered, ordered view of the catalog along with
// the last successful refresh time.
func (s *CatalogService) Tours(f domain.FilterState, sortKey string) ([]domain.Tour, time.Time) {
	s.mu.RLock()
	tours := s.tours
	updated := s.updatedAt
	s.mu.RUnlock()
	return ApplyFilters(tours, f, sortKey), updated
}

// Tour looks a single tour up by ID.
func (s *CatalogService) Tour(id string) (domain.Tour, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tours {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Tour{}, false
}

// HotDealList returns the current hot-deal subset in feed order.
func (s *CatalogService) HotDealList() []domain.Tour {
	s.mu.RLock()
	tours := s.tours
	s.mu.RUnlock()
	return domain.HotDeals(tours)
}

// Notice returns the active notification, if any. A notice expires
// noticeTTL after it was shown; expiry is evaluated here, at serving
// time.
func (s *CatalogService) Notice() (Notice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.notice == nil || s.dismissed {
		return Notice{}, false
	}
	if time.Since(s.notice.ShownAt) > s.noticeTTL {
		return Notice{}, false
	}
	return *s.notice, true
}

// DismissNotice hides the active notification.
func (s *CatalogService) DismissNotice() {
	s.mu.Lock()
	s.dismissed = true
	s.mu.Unlock()
}

// NoticeBooked hides the notification when the noticed tour itself was
// just booked.
func (s *CatalogService) NoticeBooked(tourID string) {
	s.mu.Lock()
	if s.notice != nil && s.notice.Tour.ID == tourID {
		s.dismissed = true
	}
	s.mu.Unlock()
}

func hotIDs(tours []domain.Tour) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, t := range tours {
		if t.IsHotDeal() {
			ids[t.ID] = struct{}{}
		}
	}
	return ids
}
