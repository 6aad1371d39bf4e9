package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/xyproto/env/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/autokey/internal/domain"
	"github.com/renato0307/autokey/internal/logging"
	"github.com/renato0307/autokey/internal/paths"
	"github.com/renato0307/autokey/internal/ports"
)

// DefaultRetention is how many dispatches the journal keeps
const DefaultRetention = 5000

const maxRetries = 5

// SQLiteJournal implements ports.DispatchJournal using GORM
type SQLiteJournal struct {
	db        *gorm.DB
	retention int
}

// Verify interface compliance at compile time
var _ ports.DispatchJournal = (*SQLiteJournal)(nil)

// gormLogger wraps the autokey logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if env.Str("AUTOKEY_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteJournal opens (creating if needed) the journal database at dbPath
func NewSQLiteJournal(dbPath string, retention int) (*SQLiteJournal, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&DispatchModel{}, &DispatchStepModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal schema: %w", err)
	}

	if retention <= 0 {
		retention = DefaultRetention
	}

	logging.Logger.Debug("Dispatch journal opened", "path", dbPath, "retention", retention)
	return &SQLiteJournal{db: db, retention: retention}, nil
}

// NewSQLiteJournalForHome opens the journal under $AUTOKEY_HOME
func NewSQLiteJournalForHome() (*SQLiteJournal, error) {
	return NewSQLiteJournal(paths.GetHistoryDBPath(), DefaultRetention)
}

// Close closes the underlying database
func (j *SQLiteJournal) Close() error {
	sqlDB, err := j.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record implements ports.DispatchJournal.Record
func (j *SQLiteJournal) Record(ctx context.Context, report *domain.DispatchReport) error {
	if report == nil {
		return nil
	}
	model := reportToModel(report)

	return withRetry(func() error {
		return j.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to record dispatch: %w", err)
			}
			return j.prune(tx)
		})
	}, maxRetries)
}

// prune drops the oldest dispatches beyond the retention limit
func (j *SQLiteJournal) prune(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&DispatchModel{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count dispatches: %w", err)
	}
	if count <= int64(j.retention) {
		return nil
	}

	stale := func() *gorm.DB {
		return tx.Model(&DispatchModel{}).
			Select("id").
			Order("started_at ASC").
			Limit(int(count) - j.retention)
	}

	if err := tx.Where("dispatch_id IN (?)", stale()).Delete(&DispatchStepModel{}).Error; err != nil {
		return fmt.Errorf("failed to prune dispatch steps: %w", err)
	}
	if err := tx.Where("id IN (?)", stale()).Delete(&DispatchModel{}).Error; err != nil {
		return fmt.Errorf("failed to prune dispatches: %w", err)
	}
	return nil
}

// Recent implements ports.DispatchJournal.Recent, newest first
func (j *SQLiteJournal) Recent(ctx context.Context, limit int) ([]domain.DispatchReport, error) {
	var models []DispatchModel

	err := withRetry(func() error {
		return j.db.WithContext(ctx).
			Preload("Steps", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Order("started_at DESC").
			Limit(limit).
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to load dispatches: %w", err)
	}

	reports := make([]domain.DispatchReport, 0, len(models))
	for _, m := range models {
		reports = append(reports, modelToReport(m))
	}
	return reports, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
