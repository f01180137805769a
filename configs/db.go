package configs

import (
	"fmt"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/pkg/apperr"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the sqlite store, creating the file when missing.
// A connection failure here is fatal for the caller; nothing else can
// run without the store.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %v", apperr.ErrStoreUnavailable, cfg.DBSource, err)
	}
	return db, nil
}

// SetupDatabase creates the four tables when they don't exist yet.
// Safe to run against an already-initialized store.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Admin{},
		&entity.MenuItem{},
		&entity.Reservation{},
		&entity.Order{},
	)
}
