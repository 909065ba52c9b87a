package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"finboard/internal/notify"
)

func newTestRepo(t *testing.T) (*SQLiteRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "finboard.db")
	repo, err := NewSQLiteRepository(path, nil)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo, path
}

func TestMigrationsApply(t *testing.T) {
	_, path := newTestRepo(t)

	v, dirty, err := SchemaVersion(path)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if dirty || v != 2 {
		t.Fatalf("unexpected schema version %d dirty=%v", v, dirty)
	}

	// Running again is a no-op.
	if err := RunMigrations(path); err != nil {
		t.Fatalf("second RunMigrations: %v", err)
	}
}

func TestTokenStoreRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	slot := repo.TokenStore("")

	tok, err := slot.Load()
	if err != nil || tok != "" {
		t.Fatalf("empty slot: got %q, %v", tok, err)
	}

	if err := slot.Save("abc"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := slot.Save("def"); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}
	if tok, _ := slot.Load(); tok != "def" {
		t.Fatalf("expected overwritten token, got %q", tok)
	}

	other := repo.TokenStore("work")
	if tok, _ := other.Load(); tok != "" {
		t.Fatalf("slots must be independent, got %q", tok)
	}

	if err := slot.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if tok, _ := slot.Load(); tok != "" {
		t.Fatalf("expected cleared slot, got %q", tok)
	}
}

func TestTokenSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finboard.db")
	repo, err := NewSQLiteRepository(path, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := repo.TokenStore(DefaultSlot).Save("persisted"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	repo.Close()

	reopened, err := NewSQLiteRepository(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if tok, _ := reopened.TokenStore(DefaultSlot).Load(); tok != "persisted" {
		t.Fatalf("expected persisted token, got %q", tok)
	}
}

func TestNotificationsNewestFirst(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, msg := range []string{"Transaction added", "Budget created", "Something went wrong"} {
		n := notify.Success(msg)
		if i == 2 {
			n = notify.Error(msg)
		}
		n.Timestamp = base.Add(time.Duration(i) * time.Minute)
		if _, err := repo.AppendNotification(ctx, "u1", n); err != nil {
			t.Fatalf("AppendNotification: %v", err)
		}
	}

	got, err := repo.RecentNotifications(ctx, 2)
	if err != nil {
		t.Fatalf("RecentNotifications: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Message != "Something went wrong" || got[0].Type != notify.TypeError || got[0].DurationMs != 5000 {
		t.Fatalf("unexpected newest row %+v", got[0])
	}
	if got[1].Message != "Budget created" || got[1].UserID != "u1" {
		t.Fatalf("unexpected second row %+v", got[1])
	}
	if !got[0].Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("timestamp not preserved: %v", got[0].Timestamp)
	}
}
