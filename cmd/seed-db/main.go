package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/abdullahwaheed/fsnd-capstone/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// Утилита готовит базу без запуска API: применяет миграции схемы вместе с
// посевным набором вопросов и печатает итоговое состояние.
func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal(err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatal(err)
	}

	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		fmt.Println("Schema is up to date, nothing to apply.")
	} else {
		fmt.Println("Migrations applied.")
	}

	var categories, questions int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categories); err != nil {
		log.Fatalf("Failed to count categories: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM questions").Scan(&questions); err != nil {
		log.Fatalf("Failed to count questions: %v", err)
	}

	fmt.Printf("Database ready: %d categories, %d questions.\n", categories, questions)
}
