package forms

import (
	"strconv"

	"github.com/farellandr/showbook/internal/models"
)

type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" validate:"required,showtime"`
}

func (f *ShowForm) Validate() error {
	trim(&f.ArtistID, &f.VenueID, &f.StartTime)
	return check(f)
}

// Show converts a validated form into a record.
func (f ShowForm) Show() (models.Show, error) {
	artistID, err := strconv.ParseUint(f.ArtistID, 10, 0)
	if err != nil {
		return models.Show{}, &ValidationError{Problems: []string{"artist_id must be a valid id"}}
	}
	venueID, err := strconv.ParseUint(f.VenueID, 10, 0)
	if err != nil {
		return models.Show{}, &ValidationError{Problems: []string{"venue_id must be a valid id"}}
	}
	start, err := ParseShowTime(f.StartTime)
	if err != nil {
		return models.Show{}, &ValidationError{Problems: []string{err.Error()}}
	}
	return models.Show{ArtistID: uint(artistID), VenueID: uint(venueID), StartTime: start}, nil
}
