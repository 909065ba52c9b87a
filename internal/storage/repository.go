// Package storage is the local SQLite store: the persisted session token slot
// and the log of delivered notifications.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finboard/internal/log"
	"finboard/internal/notify"

	_ "modernc.org/sqlite"
)

// DefaultSlot is the token slot used by the CLI.
const DefaultSlot = "default"

const opTimeout = 5 * time.Second

// Fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteRepository struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLiteRepository(dbPath string, logger *log.Logger) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:     db,
		logger: log.OrDiscard(logger).WithComponent(log.ComponentStorage),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadToken returns the token stored in slot, or "" when the slot is empty.
func (r *SQLiteRepository) LoadToken(ctx context.Context, slot string) (string, error) {
	var token string
	err := r.db.QueryRowContext(ctx,
		`SELECT token FROM session_tokens WHERE slot = ?`, slot).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (r *SQLiteRepository) SaveToken(ctx context.Context, slot, token string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_tokens (slot, token, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at`,
		slot, token, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	r.logger.DebugContext(ctx, "Token saved", "slot", slot)
	return nil
}

func (r *SQLiteRepository) ClearToken(ctx context.Context, slot string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_tokens WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	r.logger.DebugContext(ctx, "Token cleared", "slot", slot)
	return nil
}

// SQLiteTokenStore binds one slot of the repository to session.TokenStore.
type SQLiteTokenStore struct {
	repo *SQLiteRepository
	slot string
}

func (r *SQLiteRepository) TokenStore(slot string) *SQLiteTokenStore {
	if slot == "" {
		slot = DefaultSlot
	}
	return &SQLiteTokenStore{repo: r, slot: slot}
}

func (t *SQLiteTokenStore) Load() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return t.repo.LoadToken(ctx, t.slot)
}

func (t *SQLiteTokenStore) Save(token string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return t.repo.SaveToken(ctx, t.slot, token)
}

func (t *SQLiteTokenStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return t.repo.ClearToken(ctx, t.slot)
}

// StoredNotification is a notification row.
type StoredNotification struct {
	ID     int64
	UserID string
	notify.Notification
}

// AppendNotification records a delivered notification and returns its row id.
func (r *SQLiteRepository) AppendNotification(ctx context.Context, userID string, n notify.Notification) (int64, error) {
	ts := n.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (type, message, duration_ms, user_id, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		string(n.Type), n.Message, n.DurationMs, userID, ts.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("append notification: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("append notification: %w", err)
	}
	r.logger.DebugContext(ctx, "Notification stored", log.FieldID, id, "type", string(n.Type))
	return id, nil
}

// RecentNotifications returns up to limit notifications, newest first.
func (r *SQLiteRepository) RecentNotifications(ctx context.Context, limit int) ([]StoredNotification, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, message, duration_ms, user_id, created_at
		FROM notifications
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var out []StoredNotification
	for rows.Next() {
		var (
			sn      StoredNotification
			typ     string
			created string
		)
		if err := rows.Scan(&sn.ID, &typ, &sn.Message, &sn.DurationMs, &sn.UserID, &created); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		sn.Type = notify.Type(typ)
		if ts, err := time.Parse(timeLayout, created); err == nil {
			sn.Timestamp = ts
		}
		out = append(out, sn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return out, nil
}
