// seed inserts development sample data for local testing. Run via go run ./cmd/seed.
// Idempotent: skips inserts if the admin user (admin@example.com) already exists.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"event-hub/backend/internal/config"
	"event-hub/backend/internal/db"
	eventdomain "event-hub/backend/internal/event/domain"
	eventrepo "event-hub/backend/internal/event/repository"
	"event-hub/backend/internal/security"
	userdomain "event-hub/backend/internal/user/domain"
	userrepo "event-hub/backend/internal/user/repository"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	pool, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "postgres:", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := userrepo.NewPostgresRepository(pool)
	existing, err := users.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatalf("seed: check admin user: %v", err)
	}
	if existing != nil {
		log.Println("seed: admin user already present, nothing to do")
		return
	}

	hasher := security.NewHasher(cfg.BcryptCost)
	hash, err := hasher.Hash([]byte(adminPassword))
	if err != nil {
		log.Fatalf("seed: hash password: %v", err)
	}

	now := time.Now().UTC()
	admin := &userdomain.User{
		ID:           uuid.New().String(),
		Email:        adminEmail,
		Name:         "Admin",
		Role:         userdomain.RoleAdmin,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("seed: insert admin user: %v", err)
	}

	events := eventrepo.NewPostgresRepository(pool)
	sample := &eventdomain.Event{
		ID:          uuid.New().String(),
		Name:        "Launch Meetup",
		Description: "Kickoff gathering for early users.",
		Location:    "Community Hall",
		StartTime:   now.Add(7 * 24 * time.Hour),
		EndTime:     now.Add(7*24*time.Hour + 2*time.Hour),
		Status:      eventdomain.StatusUpcoming,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := events.Create(ctx, sample); err != nil {
		log.Fatalf("seed: insert sample event: %v", err)
	}

	log.Printf("seed: created admin user %s and sample event %s", admin.ID, sample.ID)
}
