package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/database"
	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/logging"
)

func main() {
	var (
		dbType         = flag.String("db", "postgres", "Database type (postgres or sqlite)")
		host           = flag.String("host", "localhost", "Database host")
		port           = flag.Int("port", 5432, "Database port")
		user           = flag.String("user", "postgres", "Database user")
		password       = flag.String("password", "postgres", "Database password")
		dbName         = flag.String("name", "videodata", "Database name")
		sqlitePath     = flag.String("sqlite", "./surveillance.db", "SQLite database path")
		migrationsPath = flag.String("migrations", "./migrations", "Path to migrations directory")
		status         = flag.Bool("status", false, "Show migration status only")
	)
	flag.Parse()

	config := database.Config{
		Type:       *dbType,
		Host:       *host,
		Port:       *port,
		User:       *user,
		Password:   *password,
		Name:       *dbName,
		SQLitePath: *sqlitePath,
	}

	// Environment variables take precedence over flags
	if env := os.Getenv("DB_TYPE"); env != "" {
		config.Type = env
	}
	if env := os.Getenv("DB_HOST"); env != "" {
		config.Host = env
	}
	if env := os.Getenv("DB_USER"); env != "" {
		config.User = env
	}
	if env := os.Getenv("DB_PASSWORD"); env != "" {
		config.Password = env
	}
	if env := os.Getenv("DB_NAME"); env != "" {
		config.Name = env
	}
	if env := os.Getenv("DB_PATH"); env != "" {
		config.SQLitePath = env
	}

	db, err := database.NewDB(config)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	logger := logging.NewLogger("info")
	migrator := database.NewMigrator(db.Conn(), config.Type, logger)

	if *status {
		applied, err := migrator.GetAppliedMigrations()
		if err != nil {
			log.Fatal("Failed to read migration status:", err)
		}
		migrations, err := migrator.LoadMigrations(*migrationsPath)
		if err != nil {
			log.Fatal("Failed to load migrations:", err)
		}
		for _, m := range migrations {
			state := "pending"
			if applied[m.Version] {
				state = "applied"
			}
			fmt.Printf("%-10s %s\n", state, m.Name)
		}
		return
	}

	if err := migrator.Run(*migrationsPath); err != nil {
		log.Fatal("Migration failed:", err)
	}
}
