package database

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	conn   *sql.DB
	dbType string
}

type Config struct {
	Type       string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SQLitePath string
}

func NewDB(config Config) (*DB, error) {
	var conn *sql.DB
	var err error

	switch config.Type {
	case "sqlite":
		conn, err = sql.Open("sqlite3", config.SQLitePath)
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			config.Host, config.Port, config.User, config.Password, config.Name)
		conn, err = sql.Open("pgx", dsn)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", config.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn, dbType: config.Type}

	// Postgres gets its schema from migrations; SQLite is created in place.
	if config.Type == "sqlite" {
		if err := db.createTables(); err != nil {
			return nil, fmt.Errorf("failed to create tables: %w", err)
		}
	}

	return db, nil
}

func (db *DB) createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS objects_new (
		object_name TEXT NOT NULL,
		video_name TEXT NOT NULL,
		x1 INTEGER NOT NULL,
		y1 INTEGER NOT NULL,
		x2 INTEGER NOT NULL,
		y2 INTEGER NOT NULL,
		color TEXT,
		proximity TEXT,
		sec INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS features_new (
		video_name TEXT NOT NULL,
		sec INTEGER NOT NULL,
		object_name TEXT,
		description TEXT,
		color1 TEXT,
		color2 TEXT,
		size TEXT,
		orientation TEXT,
		type TEXT
	);
	CREATE TABLE IF NOT EXISTS scenarios_new (
		video_name TEXT NOT NULL,
		environment_type TEXT,
		description TEXT,
		weather TEXT,
		time_of_day TEXT,
		terrain TEXT,
		crowd_level TEXT,
		lighting TEXT
	);
	`

	_, err := db.conn.Exec(query)
	return err
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Conn() *sql.DB {
	return db.conn
}

func (db *DB) Type() string {
	return db.dbType
}
