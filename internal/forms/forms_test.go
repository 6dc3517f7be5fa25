package forms

import (
	"testing"
	"time"

	"github.com/farellandr/showbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenueForm() VenueForm {
	return VenueForm{
		Name:         "  The Musical Hop ",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1015 Folsom Street",
		Phone:        "123-123-1234",
		Genres:       []string{"Jazz", "Reggae"},
		WebsiteLink:  "https://www.themusicalhop.com",
		FacebookLink: "https://www.facebook.com/TheMusicalHop",
	}
}

func problems(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Problems
}

func TestVenueFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*VenueForm)
		problem string
	}{
		{"missing name", func(f *VenueForm) { f.Name = "   " }, "name is a required field"},
		{"unknown state", func(f *VenueForm) { f.State = "ZZ" }, "state must be a valid state code"},
		{"bad phone", func(f *VenueForm) { f.Phone = "12-34" }, "phone must look like 555-555-5555"},
		{"unlisted genre", func(f *VenueForm) { f.Genres = []string{"Jazz", "Polka"} }, "genres must only contain listed genres"},
		{"no genres", func(f *VenueForm) { f.Genres = nil }, "genres is a required field"},
		{"bad website", func(f *VenueForm) { f.WebsiteLink = "not a link" }, "website_link must be a valid URL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validVenueForm()
			tt.mutate(&form)
			assert.Contains(t, problems(t, form.Validate()), tt.problem)
		})
	}
}

func TestVenueFormValidAndApply(t *testing.T) {
	form := validVenueForm()
	require.NoError(t, form.Validate())
	assert.Equal(t, "The Musical Hop", form.Name)

	var venue models.Venue
	form.Apply(&venue)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, "Jazz,Reggae", venue.Genres)
	assert.Equal(t, "CA", venue.State)

	back := VenueFormFrom(venue)
	assert.Equal(t, []string{"Jazz", "Reggae"}, back.Genres)
	assert.Equal(t, form.Address, back.Address)
}

func TestVenueFormOptionalFieldsMayBeBlank(t *testing.T) {
	form := validVenueForm()
	form.Phone = ""
	form.WebsiteLink = ""
	form.FacebookLink = ""
	assert.NoError(t, form.Validate())
}

func TestArtistFormValidate(t *testing.T) {
	form := ArtistForm{
		Name:         "Guns N Petals",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "3261235000",
		Genres:       []string{"Rock n Roll"},
		SeekingVenue: true,
	}
	require.NoError(t, form.Validate())

	var artist models.Artist
	form.Apply(&artist)
	assert.True(t, artist.SeekingVenue)
	assert.Equal(t, "Rock n Roll", artist.Genres)
	assert.Equal(t, form, ArtistFormFrom(artist))

	form.City = ""
	form.State = "california"
	got := problems(t, form.Validate())
	assert.Contains(t, got, "city is a required field")
	assert.Contains(t, got, "state must be a valid state code")
}

func TestShowForm(t *testing.T) {
	form := ShowForm{ArtistID: " 4 ", VenueID: "1", StartTime: "2035-04-01 20:00"}
	require.NoError(t, form.Validate())

	show, err := form.Show()
	require.NoError(t, err)
	assert.Equal(t, uint(4), show.ArtistID)
	assert.Equal(t, uint(1), show.VenueID)
	assert.Equal(t, time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC), show.StartTime)
}

func TestShowFormRejects(t *testing.T) {
	tests := []struct {
		name    string
		form    ShowForm
		problem string
	}{
		{"missing artist", ShowForm{VenueID: "1", StartTime: "2035-04-01 20:00"}, "artist_id is a required field"},
		{"non numeric venue", ShowForm{ArtistID: "1", VenueID: "abc", StartTime: "2035-04-01 20:00"}, "venue_id must be a valid number"},
		{"bad time", ShowForm{ArtistID: "1", VenueID: "1", StartTime: "next tuesday"}, "start_time must be a date and time like 2006-01-02 15:04"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, problems(t, tt.form.Validate()), tt.problem)
		})
	}
}

func TestParseShowTimeLayouts(t *testing.T) {
	want := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2035-04-01 20:00:00",
		"2035-04-01 20:00",
		"2035-04-01T20:00",
		"2035-04-01T20:00:00Z",
	} {
		got, err := ParseShowTime(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := ParseShowTime("01/04/2035")
	assert.Error(t, err)
}

func TestEveryGenreFitsTheColumn(t *testing.T) {
	venue := validVenueForm()
	venue.Genres = append([]string(nil), Genres...)
	require.NoError(t, venue.Validate())
	assert.LessOrEqual(t, len(models.JoinGenres(venue.Genres)), models.GenresMaxLen)

	artist := ArtistForm{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: append([]string(nil), Genres...)}
	require.NoError(t, artist.Validate())
}

func TestGenresLongerThanTheColumnAreRejected(t *testing.T) {
	form := validVenueForm()
	form.Genres = nil
	for len(models.JoinGenres(form.Genres)) <= models.GenresMaxLen {
		form.Genres = append(form.Genres, "Musical Theatre")
	}

	got := problems(t, form.Validate())
	assert.Contains(t, got, "genres must fit in 500 characters")
}
