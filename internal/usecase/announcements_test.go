//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/announcement"
	"storefront/internal/infra/kvstore"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase"
)

type stubAnnouncementFetcher struct {
	anns []announcement.Announcement
}

func (f *stubAnnouncementFetcher) Announcements(context.Context) ([]announcement.Announcement, error) {
	return f.anns, nil
}

func newAnnouncementFixture(t *testing.T, store kvstore.Store, anns []announcement.Announcement) (*usecase.AnnouncementService, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	fetcher := &stubAnnouncementFetcher{anns: anns}
	svc := usecase.NewAnnouncementService(fetcher, store, clk, time.Hour, testLogger())
	svc.Refresh(context.Background())
	return svc, clk
}

func TestAnnouncementCurrent(t *testing.T) {
	t.Run("returns the first active undismissed announcement", func(t *testing.T) {
		svc, _ := newAnnouncementFixture(t, kvstore.NewMemoryStore(), []announcement.Announcement{
			{ID: "a1", Text: "Summer sale", Active: false},
			{ID: "a2", Text: "Free shipping this week", Active: true},
			{ID: "a3", Text: "New arrivals", Active: true},
		})

		current := svc.Current()
		require.NotNil(t, current)
		assert.Equal(t, "a2", current.ID)
	})

	t.Run("time window bounds are honored", func(t *testing.T) {
		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		starts := base.Add(time.Hour)
		ends := base.Add(2 * time.Hour)
		svc, clk := newAnnouncementFixture(t, kvstore.NewMemoryStore(), []announcement.Announcement{
			{ID: "timed", Text: "Flash sale", Active: true, StartsAt: &starts, EndsAt: &ends},
		})

		assert.Nil(t, svc.Current())

		clk.Add(90 * time.Minute)
		current := svc.Current()
		require.NotNil(t, current)
		assert.Equal(t, "timed", current.ID)

		clk.Add(time.Hour)
		assert.Nil(t, svc.Current())
	})
}

func TestAnnouncementDismiss(t *testing.T) {
	t.Run("dismissal hides the announcement and reveals the next", func(t *testing.T) {
		svc, _ := newAnnouncementFixture(t, kvstore.NewMemoryStore(), []announcement.Announcement{
			{ID: "a1", Text: "First", Active: true},
			{ID: "a2", Text: "Second", Active: true},
		})

		svc.Dismiss("a1")

		current := svc.Current()
		require.NotNil(t, current)
		assert.Equal(t, "a2", current.ID)

		svc.Dismiss("a2")
		assert.Nil(t, svc.Current())
	})

	t.Run("dismissal is persisted across restarts", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		anns := []announcement.Announcement{{ID: "a1", Text: "Banner", Active: true}}

		first, _ := newAnnouncementFixture(t, store, anns)
		first.Dismiss("a1")

		second, _ := newAnnouncementFixture(t, store, anns)
		assert.Nil(t, second.Current())
	})

	t.Run("dismissing twice or with an empty id is harmless", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		svc, _ := newAnnouncementFixture(t, store, []announcement.Announcement{
			{ID: "a1", Text: "Banner", Active: true},
		})

		svc.Dismiss("a1")
		svc.Dismiss("a1")
		svc.Dismiss("")

		raw, ok := store.Get(kvstore.KeyDismissedAnnouncements)
		require.True(t, ok)
		assert.JSONEq(t, `["a1"]`, raw)
	})

	t.Run("malformed dismissal snapshot is discarded", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		store.Set(kvstore.KeyDismissedAnnouncements, `{broken`)

		svc, _ := newAnnouncementFixture(t, store, []announcement.Announcement{
			{ID: "a1", Text: "Banner", Active: true},
		})

		require.NotNil(t, svc.Current())
	})
}
