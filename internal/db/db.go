package db

import (
	"log/slog"
	"os"
	"time"

	"github.com/snnyvrz/bookdesk/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

func ConnectWithRetry(cfg *config.Config) *gorm.DB {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= defaultMaxAttempts; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return db
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		slog.Warn("db not ready",
			"attempt", attempt,
			"max_attempts", defaultMaxAttempts,
			"error", err,
		)
		time.Sleep(defaultDelayBetweenTry)
	}

	slog.Error("could not connect to db", "attempts", defaultMaxAttempts, "error", err)
	os.Exit(1)
	return nil
}
