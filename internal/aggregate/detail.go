package aggregate

import (
	"errors"
	"fmt"
	"time"

	"github.com/farellandr/showbook/internal/models"
)

// ErrUnresolvedShow is returned when a show's counterpart (the venue for an
// artist page, the artist for a venue page) was not loaded.
var ErrUnresolvedShow = errors.New("show counterpart not loaded")

// ShowSummary is one row of a detail page. Name and ImageLink belong to the
// counterpart entity.
type ShowSummary struct {
	ShowID    uint
	VenueID   uint
	ArtistID  uint
	Name      string
	ImageLink string
	StartTime time.Time
	Start     string
	Relative  string
}

type VenueDetail struct {
	ID                 uint
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string

	PastShows          []ShowSummary
	UpcomingShows      []ShowSummary
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistDetail struct {
	ID                 uint
	Name               string
	City               string
	State              string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string

	PastShows          []ShowSummary
	UpcomingShows      []ShowSummary
	PastShowsCount     int
	UpcomingShowsCount int
}

// BuildVenueDetail assembles a venue page. The venue's shows must have
// their Artist loaded.
func BuildVenueDetail(venue models.Venue, now time.Time) (VenueDetail, error) {
	past, upcoming := ClassifyShows(venue.Shows, now)

	pastRows, err := summarize(past, now, artistSide)
	if err != nil {
		return VenueDetail{}, fmt.Errorf("venue %d: %w", venue.ID, err)
	}
	upcomingRows, err := summarize(upcoming, now, artistSide)
	if err != nil {
		return VenueDetail{}, fmt.Errorf("venue %d: %w", venue.ID, err)
	}

	return VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          venue.ImageLink,
		FacebookLink:       venue.FacebookLink,
		WebsiteLink:        venue.WebsiteLink,
		Genres:             venue.GenreList(),
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		PastShows:          pastRows,
		UpcomingShows:      upcomingRows,
		PastShowsCount:     len(pastRows),
		UpcomingShowsCount: len(upcomingRows),
	}, nil
}

// BuildArtistDetail assembles an artist page. The artist's shows must have
// their Venue loaded.
func BuildArtistDetail(artist models.Artist, now time.Time) (ArtistDetail, error) {
	past, upcoming := ClassifyShows(artist.Shows, now)

	pastRows, err := summarize(past, now, venueSide)
	if err != nil {
		return ArtistDetail{}, fmt.Errorf("artist %d: %w", artist.ID, err)
	}
	upcomingRows, err := summarize(upcoming, now, venueSide)
	if err != nil {
		return ArtistDetail{}, fmt.Errorf("artist %d: %w", artist.ID, err)
	}

	return ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.WebsiteLink,
		Genres:             artist.GenreList(),
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		PastShows:          pastRows,
		UpcomingShows:      upcomingRows,
		PastShowsCount:     len(pastRows),
		UpcomingShowsCount: len(upcomingRows),
	}, nil
}

type counterpart func(show models.Show) (name, image string, ok bool)

func artistSide(show models.Show) (string, string, bool) {
	if show.Artist.ID == 0 || show.Artist.ID != show.ArtistID {
		return "", "", false
	}
	return show.Artist.Name, show.Artist.ImageLink, true
}

func venueSide(show models.Show) (string, string, bool) {
	if show.Venue.ID == 0 || show.Venue.ID != show.VenueID {
		return "", "", false
	}
	return show.Venue.Name, show.Venue.ImageLink, true
}

func summarize(shows []models.Show, now time.Time, other counterpart) ([]ShowSummary, error) {
	rows := make([]ShowSummary, 0, len(shows))
	for _, show := range shows {
		name, image, ok := other(show)
		if !ok {
			return nil, fmt.Errorf("show %d: %w", show.ID, ErrUnresolvedShow)
		}
		rows = append(rows, ShowSummary{
			ShowID:    show.ID,
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			Name:      name,
			ImageLink: image,
			StartTime: show.StartTime,
			Start:     FormatDateTime(show.StartTime, "full"),
			Relative:  RelativeTime(show.StartTime, now),
		})
	}
	return rows, nil
}
