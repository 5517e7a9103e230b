// Package postgres opens the gorm connection used by the journal repository.
//
// The connection goes through the lib/pq database/sql driver:
//
//	db, err := postgres.Open(postgres.MakeDSN(cfg))
//	if err != nil {
//	    return err
//	}
//	repo := journalrepo.NewGormJournalRepository(db)
package postgres

import (
	"fmt"
	"net/url"

	_ "github.com/lib/pq"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pickup/internal/adapters/out/postgres/journalrepo"
	"pickup/internal/pkg/errs"
)

const driverName = "postgres"

// DSNConfig is the subset of service configuration needed to reach the database.
type DSNConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// MakeDSN builds a postgres:// URL. Empty port and sslmode fall back to 5432 and disable.
func MakeDSN(cfg DSNConfig) (string, error) {
	if cfg.Host == "" {
		return "", errs.NewValueIsRequiredError("db host")
	}
	if cfg.DBName == "" {
		return "", errs.NewValueIsRequiredError("db name")
	}

	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + port,
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String(), nil
}

// Open connects through lib/pq and migrates the journal schema.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		DriverName: driverName,
		DSN:        dsn,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&journalrepo.EntryDTO{}); err != nil {
		return fmt.Errorf("migrate journal: %w", err)
	}
	return nil
}
