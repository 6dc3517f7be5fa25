package forms

import "github.com/farellandr/showbook/internal/models"

type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"required,max=120"`
	State              string   `form:"state" validate:"required,usstate"`
	Phone              string   `form:"phone" validate:"omitempty,phone"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"required,min=1,genresfit,dive,genre"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

func (f *ArtistForm) Validate() error {
	trim(&f.Name, &f.City, &f.State, &f.Phone, &f.ImageLink,
		&f.FacebookLink, &f.WebsiteLink, &f.SeekingDescription)
	return check(f)
}

func (f ArtistForm) Apply(artist *models.Artist) {
	artist.Name = f.Name
	artist.City = f.City
	artist.State = f.State
	artist.Phone = f.Phone
	artist.ImageLink = f.ImageLink
	artist.Genres = models.JoinGenres(f.Genres)
	artist.FacebookLink = f.FacebookLink
	artist.WebsiteLink = f.WebsiteLink
	artist.SeekingVenue = f.SeekingVenue
	artist.SeekingDescription = f.SeekingDescription
}

func ArtistFormFrom(artist models.Artist) ArtistForm {
	return ArtistForm{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		Genres:             artist.GenreList(),
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.WebsiteLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
	}
}
