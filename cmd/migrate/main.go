package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	pgstore "github.com/dwarvesf/swiftchain-backend/internal/store/postgres"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/config"
	"github.com/dwarvesf/swiftchain-backend/internal/utils/logger"
)

func newMigrate(db *gorm.DB) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get database connection")
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create postgres driver")
	}

	migrationPath := fmt.Sprintf("file://%s", filepath.Join("migrations", "schema"))
	m, err := migrate.NewWithDatabaseInstance(migrationPath, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}
	return m, nil
}

// runMigrations applies direction "up" (default) or rolls back one step with "down".
func runMigrations(m *migrate.Migrate, direction string, logger *logger.Logger) error {
	var err error
	switch direction {
	case "", "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	default:
		return errors.Errorf("unknown direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "migration failed")
	}

	version, dirty, _ := m.Version()
	logger.Info("Migrations completed successfully", map[string]string{
		"direction": direction,
		"version":   fmt.Sprintf("%d", version),
		"dirty":     fmt.Sprintf("%t", dirty),
	})
	return nil
}

func main() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)

	m, err := newMigrate(db)
	if err != nil {
		logger.Fatal("[main][newMigrate] failed to init migrations", map[string]string{
			"error": err.Error(),
		})
	}

	direction := ""
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}
	if err := runMigrations(m, direction, logger); err != nil {
		logger.Error("[main][runMigrations] failed to run migrations", map[string]string{
			"error": err.Error(),
		})
		os.Exit(1)
	}
}
