package db

import (
	"context"
	"database/sql"
	"errors"

	"bandbook/internal/models"

	"github.com/uptrace/bun"
)

type DB struct {
	Bun *bun.DB
}

// ---------------- ARTISTS ----------------

// ListArtists → all artists in id order.
func (d *DB) ListArtists(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	for i := range artists {
		if err := decodeGenres(&artists[i]); err != nil {
			return nil, err
		}
	}
	return artists, nil
}

// SearchArtistsByName → case-insensitive substring match on name with the
// total show count per match.
func (d *DB) SearchArtistsByName(ctx context.Context, term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := d.Bun.NewSelect().
		Model(&artists).
		ColumnExpr("artist.*").
		ColumnExpr("(SELECT count(*) FROM shows WHERE shows.artist_id = artist.id) AS num_shows").
		Where("lower(artist.name) LIKE lower(?)", "%"+term+"%").
		OrderExpr("artist.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	for i := range artists {
		if err := decodeGenres(&artists[i]); err != nil {
			return nil, err
		}
	}
	return artists, nil
}

// GetArtistByID → one artist with its shows and each show's venue loaded.
func (d *DB) GetArtistByID(ctx context.Context, id int64) (*models.Artist, error) {
	var artist models.Artist
	err := d.Bun.NewSelect().
		Model(&artist).
		Relation("Shows", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("start_time ASC")
		}).
		Relation("Shows.Venue").
		Where("artist.id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := decodeGenres(&artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// CreateArtist → insert in one transaction.
func (d *DB) CreateArtist(ctx context.Context, artist *models.Artist) error {
	encoded, err := models.EncodeGenres(artist.GenreList)
	if err != nil {
		return err
	}
	artist.Genres = encoded

	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(artist).Exec(ctx)
		return err
	})
}

// UpdateArtist → full overwrite of the editable fields.
func (d *DB) UpdateArtist(ctx context.Context, artist *models.Artist) error {
	encoded, err := models.EncodeGenres(artist.GenreList)
	if err != nil {
		return err
	}
	artist.Genres = encoded

	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(artist).
			Column("name", "city", "state", "phone", "genres", "facebook_link", "image_link", "website").
			Where("id = ?", artist.ID).
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

func decodeGenres(artist *models.Artist) error {
	genres, err := models.DecodeGenres(artist.Genres)
	if err != nil {
		return err
	}
	artist.GenreList = genres
	return nil
}
