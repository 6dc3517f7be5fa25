package repository

import (
	"context"
	"errors"

	"github.com/farellandr/showbook/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func (r *ArtistRepo) List(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.WithContext(ctx).Preload("Shows").Order("id ASC").Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// Get loads one artist with its shows and each show's venue.
func (r *ArtistRepo) Get(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Shows", func(db *gorm.DB) *gorm.DB { return db.Order("start_time ASC") }).
		Preload("Shows.Venue").
		First(&artist, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *ArtistRepo) Create(ctx context.Context, artist *models.Artist) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(artist).Error
	})
	return persistErr("create artist", err)
}

func (r *ArtistRepo) Update(ctx context.Context, id uint, apply func(*models.Artist)) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&artist, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		apply(&artist)
		artist.ID = id
		return tx.Omit(clause.Associations).Save(&artist).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, persistErr("update artist", err)
	}
	return &artist, nil
}

func (r *ArtistRepo) Delete(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Artist{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, persistErr("delete artist", err)
	}
	return deleted, nil
}

func (r *ArtistRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Artist{}).Count(&total).Error
	return total, err
}
