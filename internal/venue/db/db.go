package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bandbook/internal/models"

	"github.com/uptrace/bun"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- VENUES ----------------

// ListVenues → all venues ordered by (city, state, name) with a real
// per-venue upcoming-show count.
func (d *DB) ListVenues(ctx context.Context, now time.Time) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		ColumnExpr("venue.*").
		ColumnExpr("(SELECT count(*) FROM shows WHERE shows.venue_id = venue.id AND shows.start_time > ?) AS num_upcoming_shows", now).
		OrderExpr("venue.city ASC, venue.state ASC, venue.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range venues {
		if err := decodeGenres(&venues[i]); err != nil {
			return nil, err
		}
	}
	return venues, nil
}

// SearchVenuesByName → case-insensitive substring match on name, ordered
// by name, with the total show count per match.
func (d *DB) SearchVenuesByName(ctx context.Context, term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := d.Bun.NewSelect().
		Model(&venues).
		ColumnExpr("venue.*").
		ColumnExpr("(SELECT count(*) FROM shows WHERE shows.venue_id = venue.id) AS num_shows").
		Where("lower(venue.name) LIKE lower(?)", "%"+term+"%").
		OrderExpr("venue.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	if venues == nil {
		venues = []models.Venue{}
	}
	for i := range venues {
		if err := decodeGenres(&venues[i]); err != nil {
			return nil, err
		}
	}
	return venues, nil
}

// GetVenueByID → one venue with its shows and each show's artist loaded.
func (d *DB) GetVenueByID(ctx context.Context, id int64) (*models.Venue, error) {
	var venue models.Venue
	err := d.Bun.NewSelect().
		Model(&venue).
		Relation("Shows", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("start_time ASC")
		}).
		Relation("Shows.Artist").
		Where("venue.id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := decodeGenres(&venue); err != nil {
		return nil, err
	}
	return &venue, nil
}

// CreateVenue → insert in one transaction; the assigned id is written
// back to venue.ID.
func (d *DB) CreateVenue(ctx context.Context, venue *models.Venue) error {
	encoded, err := models.EncodeGenres(venue.GenreList)
	if err != nil {
		return err
	}
	venue.Genres = encoded

	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(venue).Exec(ctx)
		return err
	})
}

// UpdateVenue → full overwrite of the editable fields.
func (d *DB) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	encoded, err := models.EncodeGenres(venue.GenreList)
	if err != nil {
		return err
	}
	venue.Genres = encoded

	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(venue).
			Column("name", "city", "state", "address", "phone", "genres", "facebook_link", "image_link", "website").
			Where("id = ?", venue.ID).
			Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

// DeleteVenue → remove a venue and, in the same transaction, every show
// that references it. Cascade is the chosen deletion policy.
func (d *DB) DeleteVenue(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if rows == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

func decodeGenres(venue *models.Venue) error {
	genres, err := models.DecodeGenres(venue.Genres)
	if err != nil {
		return err
	}
	venue.GenreList = genres
	return nil
}
