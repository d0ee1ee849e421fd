package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/announcement"
	"storefront/internal/infra/kvstore"
	"storefront/internal/pkg/clock"
	"storefront/internal/poller"
)

// AnnouncementFetcher is the gateway port for marketing announcements.
type AnnouncementFetcher interface {
	Announcements(ctx context.Context) ([]announcement.Announcement, error)
}

// AnnouncementService polls for announcements and tracks which ones the user
// dismissed. Dismissals are persisted so a banner stays gone across restarts.
type AnnouncementService struct {
	store  kvstore.Store
	clock  clock.Clock
	logger *slog.Logger

	mu        sync.RWMutex
	current   []announcement.Announcement
	dismissed map[string]struct{}

	poller *poller.Poller[[]announcement.Announcement]
}

func NewAnnouncementService(fetcher AnnouncementFetcher, store kvstore.Store, clk clock.Clock, interval time.Duration, logger *slog.Logger) *AnnouncementService {
	s := &AnnouncementService{
		store:     store,
		clock:     clk,
		logger:    logger,
		dismissed: make(map[string]struct{}),
	}
	s.hydrateDismissed()
	s.poller = poller.New("announcements", interval, fetcher.Announcements, s.apply, logger)
	return s
}

func (s *AnnouncementService) Run(ctx context.Context) {
	s.poller.Run(ctx)
}

func (s *AnnouncementService) Refresh(ctx context.Context) {
	s.poller.Trigger(ctx)
}

// Current returns the first announcement that is active now and has not been
// dismissed, or nil.
func (s *AnnouncementService) Current() *announcement.Announcement {
	now := s.clock.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.current {
		if !a.ActiveAt(now) {
			continue
		}
		if _, ok := s.dismissed[a.ID]; ok {
			continue
		}
		out := a
		return &out
	}
	return nil
}

// Dismiss hides the announcement permanently. Unknown ids are recorded all
// the same; dismissal is idempotent.
func (s *AnnouncementService) Dismiss(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dismissed[id]; ok {
		return
	}
	s.dismissed[id] = struct{}{}
	s.persistDismissedLocked()
}

func (s *AnnouncementService) apply(anns []announcement.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = anns
}

func (s *AnnouncementService) hydrateDismissed() {
	raw, ok := s.store.Get(kvstore.KeyDismissedAnnouncements)
	if !ok {
		return
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.logger.Debug("discarding malformed dismissed-announcements snapshot", "error", err)
		return
	}
	for _, id := range ids {
		s.dismissed[id] = struct{}{}
	}
}

func (s *AnnouncementService) persistDismissedLocked() {
	ids := make([]string, 0, len(s.dismissed))
	for id := range s.dismissed {
		ids = append(ids, id)
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	s.store.Set(kvstore.KeyDismissedAnnouncements, string(data))
}
