package db

import (
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var DB *sqlx.DB

const documentsSchema = `
CREATE TABLE IF NOT EXISTS documents (
	namespace  TEXT PRIMARY KEY,
	body       TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// InitStore connects the document store with sqlx. A local SQLite file is
// used unless PG_HOST is set, in which case Postgres takes over.
func InitStore() error {
	driver, dsn := storeDSN()

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect(driver, dsn)
		if err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		return fmt.Errorf("failed to connect document store (%s): %w", driver, err)
	}

	if _, err := DB.Exec(documentsSchema); err != nil {
		return fmt.Errorf("failed to ensure documents table: %w", err)
	}
	return nil
}

func storeDSN() (driver, dsn string) {
	if host := os.Getenv("PG_HOST"); host != "" {
		port := os.Getenv("PG_PORT")
		user := os.Getenv("PG_USER")
		dbname := os.Getenv("PG_DB")
		password := os.Getenv("PG_PASSWORD")
		return "postgres", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "dronelog.db"
	}
	return "sqlite3", path
}
