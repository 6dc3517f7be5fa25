package models

import (
	"time"
)

// Show joins one Artist to one Venue at a start time. Shows are created
// through the show form only and never edited.
type Show struct {
	ID        uint      `gorm:"primaryKey"`
	StartTime time.Time `gorm:"not null;index"`
	ArtistID  uint      `gorm:"not null;index"`
	Artist    Artist
	VenueID   uint `gorm:"not null;index"`
	Venue     Venue
	CreatedAt time.Time
}

// IsUpcoming reports whether the show starts at or after now.
func (show Show) IsUpcoming(now time.Time) bool {
	return !show.StartTime.Before(now)
}
