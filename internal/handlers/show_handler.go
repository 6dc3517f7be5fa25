package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farellandr/showbook/internal/aggregate"
	"github.com/farellandr/showbook/internal/flash"
	"github.com/farellandr/showbook/internal/forms"
	"github.com/farellandr/showbook/internal/helpers"
	"github.com/farellandr/showbook/internal/repository"
	"github.com/gin-gonic/gin"
)

const (
	showsPath    = "/shows"
	showFormPath = showsPath + "/create"
	// datetime-local input layout
	showInputLayout = "2006-01-02T15:04"
)

func ListShows(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}
	at := now()

	shows, err := repository.NewShowRepo(db).List(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("list shows: %w", err))
		return
	}

	helpers.Render(c, http.StatusOK, "shows.html", gin.H{
		"Title": "Shows",
		"Shows": aggregate.BuildShowListings(shows, at),
	})
}

func NewShowForm(c *gin.Context) {
	db, ok := database(c)
	if !ok {
		return
	}

	artists, venues, err := repository.NewShowRepo(db).Options(c.Request.Context())
	if err != nil {
		helpers.RespondWithError(c, fmt.Errorf("show form options: %w", err))
		return
	}

	helpers.Render(c, http.StatusOK, "new_show.html", gin.H{
		"Title":   "New show",
		"Form":    forms.ShowForm{StartTime: now().UTC().Truncate(time.Minute).Format(showInputLayout)},
		"Artists": artists,
		"Venues":  venues,
	})
}

func CreateShow(c *gin.Context) {
	var form forms.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		reject(c, showFormPath, "Show could not be listed.", err)
		return
	}
	if err := form.Validate(); err != nil {
		reject(c, showFormPath, "Show could not be listed.", err)
		return
	}
	show, err := form.Show()
	if err != nil {
		reject(c, showFormPath, "Show could not be listed.", err)
		return
	}
	db, ok := database(c)
	if !ok {
		return
	}

	err = repository.NewShowRepo(db).Create(c.Request.Context(), &show)
	if errors.Is(err, repository.ErrUnknownReference) {
		reject(c, showFormPath, "Show could not be listed.",
			&forms.ValidationError{Problems: []string{"the selected artist or venue does not exist"}})
		return
	}
	if err != nil {
		persistFailed(c, showsPath, "An error occurred. Show could not be listed.", err)
		return
	}

	helpers.Redirect(c, showsPath, flash.Success("Show was successfully listed!"))
}
