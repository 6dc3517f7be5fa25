package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null;index"`
	City               string `gorm:"size:120;not null"`
	State              string `gorm:"size:120;not null"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	WebsiteLink        string `gorm:"size:120"`
	Genres             string `gorm:"size:500"`
	SeekingVenue       bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`
	Shows              []Show `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (artist *Artist) BeforeSave(tx *gorm.DB) (err error) {
	artist.Name = strings.TrimSpace(artist.Name)
	if artist.Name == "" {
		return gorm.ErrInvalidValue
	}
	return
}

func (artist Artist) ListingID() uint     { return artist.ID }
func (artist Artist) ListingName() string { return artist.Name }
func (artist Artist) ListingShows() []Show {
	return artist.Shows
}
