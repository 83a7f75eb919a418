package db

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/snnyvrz/shelfshare/internal/config"
	"github.com/snnyvrz/shelfshare/internal/logger"
	"github.com/snnyvrz/shelfshare/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every persisted type, in dependency order.
var Models = []any{
	&model.Author{},
	&model.Genre{},
	&model.Book{},
	&model.BookGenre{},
	&model.BookInstance{},
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == config.DriverSQLite {
		return sqlite.Open(cfg.DSN())
	}
	return postgres.Open(cfg.DSN())
}

// GormConfig routes gorm's own logging through zerolog.
func GormConfig() *gorm.Config {
	l := gormlogger.New(
		logger.Printf{Logger: log.Logger, Level: zerolog.WarnLevel},
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)
	return &gorm.Config{Logger: l}
}

func ConnectWithRetry(cfg *config.Config) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= cfg.DBMaxAttempt; attempt++ {
		db, err = gorm.Open(dialector(cfg), GormConfig())
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.Ping()
				if pingErr == nil {
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn().
			Err(err).
			Str("driver", cfg.DBDriver).
			Int("attempt", attempt).
			Int("max_attempts", cfg.DBMaxAttempt).
			Msg("db not ready")
		time.Sleep(cfg.DBRetryDelay)
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBMaxAttempt, err)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
