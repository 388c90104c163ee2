// Package sqlitestore persists extents as one SQLite database file per extent
// name. Records live in an extent_records table ordered by position, with the
// payload kept as JSON so files stay inspectable with stock sqlite tooling.
package sqlitestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mlaskowski7/AllegroLikeByt/internal/platform/logger"
	"github.com/mlaskowski7/AllegroLikeByt/internal/store"
)

type extentRecord struct {
	Pos     int            `gorm:"primaryKey;autoIncrement:false"`
	Payload datatypes.JSON `gorm:"not null"`
}

func (extentRecord) TableName() string { return "extent_records" }

type Store struct {
	dir string
	log *logger.Logger
}

func New(dir string, baseLog *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("sqlitestore: create dir: %w", err)
	}
	return &Store{dir: dir, log: baseLog.With("store", "sqlitestore")}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".db")
}

func (s *Store) open(name string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(s.path(name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *Store) WriteRecords(ctx context.Context, name string, records [][]byte) error {
	db, err := s.open(name)
	if err != nil {
		return fmt.Errorf("sqlitestore: open %s: %w", name, err)
	}
	defer closeDB(db)

	if err := db.WithContext(ctx).AutoMigrate(&extentRecord{}); err != nil {
		return fmt.Errorf("sqlitestore: migrate %s: %w", name, err)
	}

	rows := make([]extentRecord, len(records))
	for i, rec := range records {
		rows[i] = extentRecord{Pos: i, Payload: datatypes.JSON(rec)}
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&extentRecord{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("sqlitestore: write %s: %w", name, err)
	}
	s.log.Debug("extent written", "name", name, "records", len(records))
	return nil
}

func (s *Store) ReadRecords(ctx context.Context, name string) ([][]byte, error) {
	// Opening would create an empty database, so probe the file first.
	if _, err := os.Stat(s.path(name)); os.IsNotExist(err) {
		return nil, fmt.Errorf("sqlitestore: %s: %w", name, store.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("sqlitestore: stat %s: %w", name, err)
	}

	db, err := s.open(name)
	if err != nil {
		return nil, fmt.Errorf("sqlitestore: open %s: %w", name, store.ErrCorrupt)
	}
	defer closeDB(db)

	var rows []extentRecord
	if err := db.WithContext(ctx).Order("pos").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("sqlitestore: read %s: %w", name, store.ErrCorrupt)
	}
	records := make([][]byte, len(rows))
	for i, row := range rows {
		records[i] = []byte(row.Payload)
	}
	s.log.Debug("extent read", "name", name, "records", len(records))
	return records, nil
}
