package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"bandbook/internal/config"
	"bandbook/internal/models"
)

// Development helper: rebuilds the schema with bun and seeds a few
// records. Production schema changes go through migrations/ instead.

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	cfg := config.Load()

	sqldb, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	log.Println("Dropping tables...")
	dropTables(ctx, db)

	log.Println("Creating tables...")
	createTables(ctx, db)

	log.Println("Seeding sample data...")
	if err := seedData(ctx, db); err != nil {
		log.Fatalf("Failed to seed data: %v", err)
	}

	log.Println("Done.")
}

func dropTables(ctx context.Context, db *bun.DB) {
	// Reverse dependency order so FKs do not block the drops.
	tables := []interface{}{(*models.Show)(nil), (*models.Artist)(nil), (*models.Venue)(nil)}
	for _, m := range tables {
		_, _ = db.NewDropTable().Model(m).IfExists().Cascade().Exec(ctx)
	}
}

func createTables(ctx context.Context, db *bun.DB) {
	tables := []interface{}{(*models.Venue)(nil), (*models.Artist)(nil), (*models.Show)(nil)}
	for _, m := range tables {
		q := db.NewCreateTable().Model(m).IfNotExists()
		if _, ok := m.(*models.Show); ok {
			q = q.ForeignKey(`("artist_id") REFERENCES "artists" ("id") ON DELETE CASCADE`).
				ForeignKey(`("venue_id") REFERENCES "venues" ("id") ON DELETE CASCADE`)
		}
		if _, err := q.Exec(ctx); err != nil {
			log.Fatalf("Failed to create table for %T: %v", m, err)
		}
	}
}

func seedData(ctx context.Context, db *bun.DB) error {
	venueGenres, err := models.EncodeGenres([]string{"Rock", "Jazz"})
	if err != nil {
		return err
	}
	venue := models.Venue{
		Name:         "The Fillmore",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1805 Geary St",
		Phone:        "415-555-0100",
		Genres:       venueGenres,
		FacebookLink: "https://facebook.com/thefillmore",
		Website:      "https://thefillmore.example",
	}
	if _, err := db.NewInsert().Model(&venue).Exec(ctx); err != nil {
		return err
	}

	artistGenres, err := models.EncodeGenres([]string{"Blues"})
	if err != nil {
		return err
	}
	artist := models.Artist{
		Name:   "The Night Owls",
		City:   "Austin",
		State:  "TX",
		Phone:  "512-555-0188",
		Genres: artistGenres,
	}
	if _, err := db.NewInsert().Model(&artist).Exec(ctx); err != nil {
		return err
	}

	show := models.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: time.Now().AddDate(0, 1, 0),
	}
	if _, err := db.NewInsert().Model(&show).Exec(ctx); err != nil {
		return err
	}

	return nil
}
