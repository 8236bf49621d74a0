package database

import (
	"embed"
	"errors"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies the embedded SQL migrations. The composite unique
// constraints on enrollments and attendances live here; they are the
// authoritative guard against duplicate races, the application-level checks
// only exist for better error messages.
func RunMigrations() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("❌ migrate: get sql.DB: %v", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		log.Fatalf("❌ migrate: load sources: %v", err)
	}

	drv, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		log.Fatalf("❌ migrate: init driver: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", drv)
	if err != nil {
		log.Fatalf("❌ migrate: init: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("❌ migrate: up: %v", err)
	}
	log.Println("✅ Migrations up to date.")
}
