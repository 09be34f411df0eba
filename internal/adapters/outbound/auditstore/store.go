// Package auditstore persists remediation outcomes in SQLite.
package auditstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillcoder/kguard/internal/logic/remediation"
)

// DefaultListLimit caps ListRecent when the caller passes a non-positive limit.
const DefaultListLimit = 50

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("audit store closed")

// Store is a SQLite-backed audit trail. Close waits for in-flight
// Record and ListRecent calls.
type Store struct {
	logger *slog.Logger
	mu     sync.RWMutex
	db     *gorm.DB
}

var _ remediation.Auditor = (*Store)(nil)

// Open opens or creates the database at path and migrates the schema.
func Open(log *slog.Logger, path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open audit db %s: %w", path, err)
	}

	if err := db.AutoMigrate(&auditRecord{}); err != nil {
		return nil, fmt.Errorf("migrate audit db: %w", err)
	}

	return &Store{
		logger: log,
		db:     db,
	}, nil
}

// Record appends entry to the trail. Missing id and time are filled in.
func (s *Store) Record(ctx context.Context, entry remediation.AuditEntry) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return ErrClosed
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.Time.IsZero() {
		entry.Time = time.Now().UTC()
	}

	record := toRecord(&entry)
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}

	return nil
}

// ListRecent returns at most limit entries, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]remediation.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, ErrClosed
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}

	var records []auditRecord

	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("rowid DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	entries := make([]remediation.AuditEntry, 0, len(records))
	for i := range records {
		entries = append(entries, records[i].toEntry())
	}

	return entries, nil
}

// Close releases the database handle. It is safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get audit db handle: %w", err)
	}

	s.db = nil

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close audit db: %w", err)
	}

	return nil
}

// Name returns the name of the component for shutdown logging.
func (s *Store) Name() string {
	return "audit-store"
}

// Shutdown closes the store.
func (s *Store) Shutdown(_ context.Context) error {
	s.logger.Info("closing audit store")

	return s.Close()
}
