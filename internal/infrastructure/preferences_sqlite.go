package infrastructure

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Preference is a single persisted key-value pair
type Preference struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// SQLitePreferenceRepository implements domain.PreferenceRepository using SQLite
type SQLitePreferenceRepository struct {
	db *gorm.DB
}

// NewSQLitePreferenceRepository creates a new SQLite-backed preference store
func NewSQLitePreferenceRepository(dbPath string) (*SQLitePreferenceRepository, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&Preference{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLitePreferenceRepository{db: db}, nil
}

// Get returns the stored value for key, or "" when the key is absent
func (r *SQLitePreferenceRepository) Get(key string) (string, error) {
	var pref Preference
	err := r.db.First(&pref, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return pref.Value, nil
}

// Set writes the value for key, overwriting any previous value
func (r *SQLitePreferenceRepository) Set(key, value string) error {
	pref := Preference{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

// Close closes the underlying database connection
func (r *SQLitePreferenceRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
