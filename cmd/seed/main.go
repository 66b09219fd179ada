package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/gatherly/gatherly/config"
	"github.com/gatherly/gatherly/pkg/helpers"
)

// Seeds demo identities, profiles and events for local development.
// In production the users table is written by the auth provider; this
// tool stands in for it and prints ready-to-use access tokens.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	jwt := helpers.NewJWTManager(cfg.JWTAccessSecret, 24*time.Hour)

	organizerID := seedUser(db, "ada@example.com", "Ada Organizer")
	attendeeID := seedUser(db, "sam@example.com", "Sam Attendee")

	seedProfile(db, organizerID, "organizer", "Northside Events Co.")
	seedProfile(db, attendeeID, "attendee", "")

	in30d := time.Now().Add(30 * 24 * time.Hour).UnixMilli()
	in60d := time.Now().Add(60 * 24 * time.Hour).UnixMilli()
	seedEvent(db, organizerID, "Riverside Jazz Night", "An evening of live jazz by the river.", in30d, "Riverside Hall", "Music", true)
	seedEvent(db, organizerID, "Intro to Birdwatching", "Guided walk for beginners.", in60d, "City Park", "Outdoors", true)

	for _, u := range []struct{ id, label string }{
		{organizerID, "organizer"},
		{attendeeID, "attendee"},
	} {
		token, _, err := jwt.GenerateAccessToken(u.id)
		if err != nil {
			log.Fatalf("token for %s: %v", u.label, err)
		}
		fmt.Printf("%s token:\n%s\n\n", u.label, token)
	}
	log.Println("seed complete")
}

func seedUser(db *sql.DB, email, name string) string {
	var id string
	err := db.QueryRow(`
		INSERT INTO users (email, name) VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, email, name).Scan(&id)
	if err != nil {
		log.Fatalf("seed user %s: %v", email, err)
	}
	return id
}

func seedProfile(db *sql.DB, userID, role, org string) {
	_, err := db.Exec(`
		INSERT INTO user_profiles (user_id, role, organization_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, userID, role, org)
	if err != nil {
		log.Fatalf("seed profile for %s: %v", userID, err)
	}
}

func seedEvent(db *sql.DB, organizerID, title, description string, date int64, location, category string, public bool) {
	_, err := db.Exec(`
		INSERT INTO events (title, description, date, location, category, organizer_id, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT DO NOTHING
	`, title, description, date, location, category, organizerID, public)
	if err != nil {
		log.Fatalf("seed event %q: %v", title, err)
	}
}
