package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/farellandr/showbook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrUnknownReference is wrapped in a PersistenceError when a show points
// at an artist or venue that does not exist.
var ErrUnknownReference = errors.New("unknown artist or venue")

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// List returns all shows by start time with artist and venue loaded.
func (r *ShowRepo) List(ctx context.Context) ([]models.Show, error) {
	var shows []models.Show
	err := r.db.WithContext(ctx).
		Preload("Artist").
		Preload("Venue").
		Order("start_time ASC, id ASC").
		Find(&shows).Error
	if err != nil {
		return nil, err
	}
	return shows, nil
}

// Create inserts a show after checking, in the same transaction, that both
// sides of the relation exist.
func (r *ShowRepo) Create(ctx context.Context, show *models.Show) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &models.Artist{}, show.ArtistID); err != nil {
			return fmt.Errorf("artist %d: %w", show.ArtistID, err)
		}
		if err := exists(tx, &models.Venue{}, show.VenueID); err != nil {
			return fmt.Errorf("venue %d: %w", show.VenueID, err)
		}
		return tx.Omit(clause.Associations).Create(show).Error
	})
	return persistErr("create show", err)
}

func exists(tx *gorm.DB, model any, id uint) error {
	var total int64
	if err := tx.Model(model).Where("id = ?", id).Count(&total).Error; err != nil {
		return err
	}
	if total == 0 {
		return ErrUnknownReference
	}
	return nil
}

// Options returns id/name pairs for the show form pickers.
func (r *ShowRepo) Options(ctx context.Context) (artists []models.Artist, venues []models.Venue, err error) {
	db := r.db.WithContext(ctx)
	if err = db.Select("id", "name").Order("name ASC").Find(&artists).Error; err != nil {
		return nil, nil, err
	}
	if err = db.Select("id", "name").Order("name ASC").Find(&venues).Error; err != nil {
		return nil, nil, err
	}
	return artists, venues, nil
}
