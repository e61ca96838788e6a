package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// KVRecord is the GORM model backing the SQLite driver. One row per
// persisted entry, mirroring the web storage key/value shape.
type KVRecord struct {
	ID        uint           `gorm:"primaryKey"`
	Key       string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"key"`
	Blob      datatypes.JSON `gorm:"not null"                               json:"blob"`
	UpdatedAt time.Time      `                                              json:"updated_at"`
}

type sqliteKV struct {
	db *gorm.DB
}

// NewSQLite opens (or creates) the console database and builds a
// SQLite-backed KV store.
func NewSQLite(cfg Config) (KV, error) {
	dir := "./data"
	if cfg.SQLite != nil && cfg.SQLite.Dir != "" {
		dir = cfg.SQLite.Dir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dir, "console.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.AutoMigrate(&KVRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &sqliteKV{db: db}, nil
}

func (s *sqliteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var record KVRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(record.Blob), nil
}

func (s *sqliteKV) Put(ctx context.Context, key string, value []byte) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key = ?", key).Delete(&KVRecord{}).Error; err != nil {
			return err
		}
		record := &KVRecord{
			Key:       key,
			Blob:      datatypes.JSON(value),
			UpdatedAt: time.Now(),
		}
		return tx.Create(record).Error
	})
}

func (s *sqliteKV) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&KVRecord{}).Error
}

func (s *sqliteKV) Keys(ctx context.Context) ([]string, error) {
	var records []KVRecord
	if err := s.db.WithContext(ctx).Select("key").Find(&records).Error; err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Key)
	}
	return keys, nil
}

func (s *sqliteKV) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
