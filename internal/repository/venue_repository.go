package repository

import (
	"context"
	"errors"

	"github.com/farellandr/showbook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// List returns every venue ordered by id with its shows loaded.
func (r *VenueRepo) List(ctx context.Context) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).Preload("Shows").Order("id ASC").Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

// Get loads one venue with its shows and each show's artist.
func (r *VenueRepo) Get(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("start_time ASC") }).
		Preload("Shows.Artist").
		First(&venue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *VenueRepo) Create(ctx context.Context, venue *models.Venue) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(venue).Error
	})
	return persistErr("create venue", err)
}

// Update loads the venue, applies the change and saves it in one
// transaction. ErrNotFound is returned unwrapped.
func (r *VenueRepo) Update(ctx context.Context, id uint, apply func(*models.Venue)) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&venue, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		apply(&venue)
		venue.ID = id
		return tx.Omit(clause.Associations).Save(&venue).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistErr("update venue", err)
	}
	return &venue, nil
}

// Delete removes the venue and its shows. It reports false, with no error,
// when the id does not exist.
func (r *VenueRepo) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Venue{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, persistErr("delete venue", err)
	}
	return deleted, nil
}

func (r *VenueRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Venue{}).Count(&total).Error
	return total, err
}
