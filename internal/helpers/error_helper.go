package helpers

import (
	"net/http"

	"github.com/farellandr/showbook/internal/flash"
	"github.com/farellandr/showbook/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Render executes a page template, adding the pending flash notice and the
// request id to data.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if notice, ok := flash.ReadAndClear(c.Writer, c.Request); ok {
		data["Flash"] = &notice
	}
	data["RequestID"] = middleware.GetRequestID(c)
	c.HTML(status, name, data)
}

// Redirect stores notice and sends a 303 to location.
func Redirect(c *gin.Context, location string, notice flash.Notice) {
	flash.Write(c.Writer, c.Request, notice)
	c.Redirect(http.StatusSeeOther, location)
}

func RespondNotFound(c *gin.Context) {
	Render(c, http.StatusNotFound, "404.html", gin.H{"Title": "Not found"})
}

// RespondWithError logs err and renders the 500 page.
func RespondWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	logrus.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}).WithError(err).Error("unhandled error")
	Render(c, http.StatusInternalServerError, "500.html", gin.H{"Title": "Server error"})
}

// RespondPanic is the recovery hook for middleware.Recovery.
func RespondPanic(c *gin.Context) {
	Render(c, http.StatusInternalServerError, "500.html", gin.H{"Title": "Server error"})
}
