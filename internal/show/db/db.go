package db

import (
	"context"
	"database/sql"
	"time"

	"bandbook/internal/models"

	"github.com/uptrace/bun"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- SHOWS ----------------

// ListUpcomingShows → shows strictly later than now with artist and venue
// loaded, ascending by start time. Past shows never appear here; they
// stay reachable through venue and artist detail pages.
func (d *DB) ListUpcomingShows(ctx context.Context, now time.Time) ([]models.Show, error) {
	var shows []models.Show
	err := d.Bun.NewSelect().
		Model(&shows).
		Relation("Artist").
		Relation("Venue").
		Where("show.start_time > ?", now).
		Order("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	if shows == nil {
		shows = []models.Show{}
	}
	return shows, nil
}

// CreateShow → insert in one transaction. Referential integrity is the
// schema's foreign keys: a dangling artist or venue id fails the commit.
func (d *DB) CreateShow(ctx context.Context, show *models.Show) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(show).Exec(ctx)
		return err
	})
}
