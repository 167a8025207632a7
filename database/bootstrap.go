package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"mealweek/entities"
)

// OpenSQLite opens the database at path and brings the schema up to date.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// recipes live in their own catalogue; week_days only keeps the id
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// must run before AutoMigrate, the unique index on week_days.date fails on duplicates
	if err := dedupeWeekDays(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Recipe{},
		&entities.WeekDay{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}

// dedupeWeekDays keeps only the newest row per date in week_days.
// Older databases had no unique constraint, so concurrent first assignments
// could leave more than one row for the same day.
func dedupeWeekDays(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='week_days'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	var dupes int64
	if err := db.Raw(`SELECT COUNT(*) FROM (SELECT date FROM week_days GROUP BY date HAVING COUNT(*) > 1)`).Scan(&dupes).Error; err != nil {
		return fmt.Errorf("count duplicates: %w", err)
	}
	if dupes == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DROP INDEX IF EXISTS idx_week_days_date`).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM week_days WHERE id NOT IN (SELECT MAX(id) FROM week_days GROUP BY date)`).Error
	})
}
