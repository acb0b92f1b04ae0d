package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/m04kA/SMC-ShareIt/internal/config"
)

const (
	migrationUp   = "up"
	migrationDown = "down"
)

func main() {
	var configPath, migrationsPath, migrationType string
	flag.StringVar(&configPath, "config", "config.toml", "path to server config")
	flag.StringVar(&migrationsPath, "migrations-path", "migrations", "path to migrations")
	flag.StringVar(&migrationType, "migration-type", migrationUp, "migration type: up | down")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.Database.URL())
	if err != nil {
		fmt.Printf("Failed to init migrator: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	switch migrationType {
	case migrationUp:
		err = m.Up()
	case migrationDown:
		err = m.Down()
	default:
		fmt.Printf("Unknown migration type %q\n", migrationType)
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("no migrations to apply")
			return
		}
		fmt.Printf("Migration %s failed: %v\n", migrationType, err)
		os.Exit(1)
	}

	fmt.Printf("migrations %s applied successfully\n", migrationType)
}
