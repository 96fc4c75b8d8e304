package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/Sanyaraj24/CrimeReporting/internal/config"
	"github.com/Sanyaraj24/CrimeReporting/internal/database/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close connection: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping database: ", err)
	}
	fmt.Println("Connected to database")

	schema, err := migrations.Files.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("failed to read embedded schema: ", err)
	}

	fmt.Println("Running migration...")
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatal("migration failed: ", err)
	}
	fmt.Println("Migration applied")

	// Show what exists now
	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name IN ('crime_reports', 'users')
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatal("failed to list tables: ", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	fmt.Println("Tables:")
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			log.Printf("failed to scan table name: %v", err)
			continue
		}
		fmt.Printf("  %s\n", table)
	}
	if err := rows.Err(); err != nil {
		log.Fatal("failed to iterate tables: ", err)
	}
}
