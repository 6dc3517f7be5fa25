package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null;index"`
	City               string `gorm:"size:120;not null"`
	State              string `gorm:"size:120;not null"`
	Address            string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`
	WebsiteLink        string `gorm:"size:120"`
	Genres             string `gorm:"size:500"`
	SeekingTalent      bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:500"`
	Shows              []Show `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (venue *Venue) BeforeSave(tx *gorm.DB) (err error) {
	venue.Name = strings.TrimSpace(venue.Name)
	if venue.Name == "" {
		return gorm.ErrInvalidValue
	}
	return
}

func (venue Venue) ListingID() uint     { return venue.ID }
func (venue Venue) ListingName() string { return venue.Name }
func (venue Venue) ListingShows() []Show {
	return venue.Shows
}
