package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "vitrine/internal/log"
	"vitrine/models"
)

// DemoVisitorID identifies the seeded visitor whose theme preference is stored.
const DemoVisitorID = "00000000-0000-4000-8000-000000000001"

// DemoTheme is the theme persisted for DemoVisitorID.
const DemoTheme = "theme2"

// New returns an in-memory sqlite database seeded with a demo visitor preference.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:vitrine-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Preference{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	pref := models.Preference{VisitorID: DemoVisitorID, Name: "theme"}
	err := db.WithContext(ctx).
		Where(models.Preference{VisitorID: DemoVisitorID, Name: "theme"}).
		Attrs(models.Preference{Value: DemoTheme}).
		FirstOrCreate(&pref).Error
	if err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded", "visitor", DemoVisitorID)
	return nil
}
