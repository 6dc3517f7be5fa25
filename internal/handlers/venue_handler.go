package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/farellandr/showbook/internal/aggregate"
	"github.com/farellandr/showbook/internal/flash"
	"github.com/farellandr/showbook/internal/forms"
	"github.com/farellandr/showbook/internal/helpers"
	"github.com/farellandr/showbook/internal/models"
	"github.com/farellandr/showbook/internal/repository"
	"github.com/gin-gonic/gin"
)

const venuesPath = "/venues"

func ListVenues(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}
	at := now()

	venues, err := repository.NewVenueRepo(db).List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("list venues: %w", err))
		return
	}

	helpers.Render(c, http.StatusOK, "venues.html", gin.H{
		"Title": "Venues",
		"Areas": aggregate.GroupVenuesByLocation(venues, at),
	})
}

func SearchVenues(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}
	at := now()

	venues, err := repository.NewVenueRepo(db).List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("search venues: %w", err))
		return
	}

	helpers.Render(c, http.StatusOK, "search_venues.html", gin.H{
		"Title":   "Venue search",
		"Results": aggregate.SearchByName(venues, c.PostForm("search_term"), at),
	})
}

func GetVenue(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}
	at := now()

	venue, err := repository.NewVenueRepo(db).Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Redirect(c, venuesPath, flash.Warning(fmt.Sprintf("Venue %d was not found.", id)))
		return
	}
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("get venue %d: %w", id, err))
		return
	}

	detail, err := aggregate.BuildVenueDetail(*venue, at)
	if err != nil {
		helpers.RespondWithError(c, err)
		return
	}

	helpers.Render(c, http.StatusOK, "show_venue.html", gin.H{
		"Title": detail.Name,
		"Venue": detail,
	})
}

func NewVenueForm(c *gin.Context) {
	helpers.Render(c, http.StatusOK, "new_venue.html", formChoices(gin.H{
		"Title":  "New venue",
		"Form":   forms.VenueForm{},
		"Action": venuesPath + "/create",
		"Submit": "Create venue",
	}))
}

func CreateVenue(c *gin.Context) {
	formPath := venuesPath + "/create"

	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		reject(c, formPath, "Venue could not be listed.", err)
		return
	}
	if err := form.Validate(); err != nil {
		reject(c, formPath, "Venue could not be listed.", err)
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	var venue models.Venue
	form.Apply(&venue)
	if err := repository.NewVenueRepo(db).Create(c.Request.Context(), &venue); err != nil {
		persistFailed(c, venuesPath, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name), err)
		return
	}

	helpers.Redirect(c, venuesPath, flash.Success(fmt.Sprintf("Venue %s was successfully listed!", venue.Name)))
}

func EditVenueForm(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	venue, err := repository.NewVenueRepo(db).Get(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Redirect(c, venuesPath, flash.Warning(fmt.Sprintf("Venue %d was not found.", id)))
		return
	}
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("get venue %d: %w", id, err))
		return
	}

	helpers.Render(c, http.StatusOK, "edit_venue.html", formChoices(gin.H{
		"Title":  "Edit " + venue.Name,
		"Form":   forms.VenueFormFrom(*venue),
		"Action": fmt.Sprintf("%s/%d/edit", venuesPath, id),
		"Submit": "Save venue",
	}))
}

func UpdateVenue(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	formPath := fmt.Sprintf("%s/%d/edit", venuesPath, id)

	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		reject(c, formPath, "Venue could not be updated.", err)
		return
	}
	if err := form.Validate(); err != nil {
		reject(c, formPath, "Venue could not be updated.", err)
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	venue, err := repository.NewVenueRepo(db).Update(c.Request.Context(), id, form.Apply)
	if errors.Is(err, repository.ErrNotFound) {
		helpers.Redirect(c, venuesPath, flash.Warning(fmt.Sprintf("Venue %d was not found.", id)))
		return
	}
	if err != nil {
		persistFailed(c, venuesPath, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name), err)
		return
	}

	helpers.Redirect(c, fmt.Sprintf("%s/%d", venuesPath, venue.ID),
		flash.Success(fmt.Sprintf("Venue %s was successfully updated!", venue.Name)))
}

func DeleteVenue(c *gin.Context) {
	id, ok := helpers.ParamID(c, "id")
	if !ok {
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	deleted, err := repository.NewVenueRepo(db).Delete(c.Request.Context(), id)
	if err != nil {
		persistFailed(c, venuesPath, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id), err)
		return
	}
	if !deleted {
		helpers.Redirect(c, venuesPath, flash.Info(fmt.Sprintf("Venue %d does not exist.", id)))
		return
	}

	helpers.Redirect(c, venuesPath, flash.Success(fmt.Sprintf("Venue %d was deleted.", id)))
}
