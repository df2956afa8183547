package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/hireloop/hireloop-api/config"
	"github.com/hireloop/hireloop-api/pkg/helpers"
)

// Seeds the city directory plus a demo candidate and company for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	cities := []struct {
		ID, Name, CountryCode string
	}{
		{"ams", "Amsterdam", "NL"},
		{"ber", "Berlin", "DE"},
		{"lis", "Lisbon", "PT"},
		{"lon", "London", "GB"},
		{"nyc", "New York", "US"},
		{"sfo", "San Francisco", "US"},
	}
	for _, c := range cities {
		if _, err := db.Exec(`
			INSERT INTO cities (id, name, country_code)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, country_code = EXCLUDED.country_code
		`, c.ID, c.Name, c.CountryCode); err != nil {
			log.Fatalf("failed to seed city %s: %v", c.ID, err)
		}
	}
	fmt.Printf("seeded %d cities\n", len(cities))

	email := "demo@hireloop.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (id, email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name
		RETURNING id
	`, uuid.NewString(), email, hash, "Demo", "Candidate").Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	if _, err := db.Exec(`
		INSERT INTO candidates (user_id, city_id, headline)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET city_id = EXCLUDED.city_id, headline = EXCLUDED.headline
	`, userID, "ams", "Backend engineer"); err != nil {
		log.Fatalf("failed to seed candidate: %v", err)
	}
	fmt.Printf("seeded candidate: id=%s email=%s password=%s\n", userID, email, password)

	var companyID string
	err = db.QueryRow(`
		INSERT INTO companies (id, name, website)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) WHERE NOT is_deleted DO UPDATE SET website = EXCLUDED.website
		RETURNING id
	`, uuid.NewString(), "Hireloop Demo Co", "https://hireloop.dev").Scan(&companyID)
	if err != nil {
		log.Fatalf("failed to seed company: %v", err)
	}
	fmt.Printf("seeded company: id=%s\n", companyID)
}
