package main

import (
	"database/sql"
	"fmt"
	"os"

	"tipovacka/config"
	"tipovacka/logger"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Env()
	log := logger.InitLogger(cfg.LogLevel, config.IsDevelopment()).WithField("service", "migrations")

	db, err := sql.Open("postgres", config.DSN(cfg))
	if err != nil {
		log.WithError(err).Fatal("Could not open database")
	}
	defer db.Close()
	version, err := getMigrationVersion(db, cfg.DatabaseSchema)
	if err != nil {
		log.WithError(err).Fatal("Could not read migration version")
	}

	for {
		found, err := migrateUp(db, version+1)
		if err != nil {
			log.WithError(err).WithField("version", version+1).Fatal("Migration failed")
		}
		if !found {
			break
		}
		version++
		log.WithField("version", version).Info("Migrated")
	}
	log.WithField("version", version).Info("Schema is up to date")
}

// migrateUp applies migrations/<version>.sql and the version bump in one transaction.
// found is false once no file for the version exists.
func migrateUp(db *sql.DB, version int) (found bool, err error) {
	file, err := os.ReadFile(fmt.Sprintf("migrations/%d.sql", version))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	tx, err := db.Begin()
	if err != nil {
		return false, err
	}
	if _, err = tx.Exec(string(file)); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("error executing migration: %w", err)
	}
	if _, err = tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		tx.Rollback()
		return false, fmt.Errorf("error updating migration version: %w", err)
	}
	return true, tx.Commit()
}

func getMigrationVersion(db *sql.DB, schema string) (version int, err error) {
	if _, err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s;", schema)); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		err := generateMigrationTable(db)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	return err
}
