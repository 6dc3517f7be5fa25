package forms

import (
	"strings"

	"github.com/farellandr/showbook/internal/models"
)

type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Address            string   `form:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"required,min=1,genresfit,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// Validate trims the text fields and checks every constraint.
func (f *VenueForm) Validate() error {
	trim(&f.Name, &f.City, &f.State, &f.Address, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	return check(f)
}

// Apply copies the form onto a venue record.
func (f VenueForm) Apply(venue *models.Venue) {
	venue.Name = f.Name
	venue.City = f.City
	venue.State = f.State
	venue.Address = f.Address
	venue.Phone = f.Phone
	venue.ImageLink = f.ImageLink
	venue.Genres = models.JoinGenres(f.Genres)
	venue.FacebookLink = f.FacebookLink
	venue.WebsiteLink = f.WebsiteLink
	venue.SeekingTalent = f.SeekingTalent
	venue.SeekingDescription = f.SeekingDescription
}

// VenueFormFrom pre-populates an edit form from a stored venue.
func VenueFormFrom(venue models.Venue) VenueForm {
	return VenueForm{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          venue.ImageLink,
		Genres:             venue.GenreList(),
		FacebookLink:       venue.FacebookLink,
		WebsiteLink:        venue.WebsiteLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
	}
}

func trim(fields ...*string) {
	for _, field := range fields {
		*field = strings.TrimSpace(*field)
	}
}
