package db

import (
	"database/sql"
	_ "embed"
	"errors"
	"time"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schema string

var DB *sql.DB

var ErrNoDatabaseURL = errors.New("DATABASE_URL is not set")

func Connect(connStr string) error {
	if connStr == "" {
		return ErrNoDatabaseURL
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

// Migrate creates the tables if they do not exist yet.
func Migrate() error {
	_, err := DB.Exec(schema)
	return err
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
