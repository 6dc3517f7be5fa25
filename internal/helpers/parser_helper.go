package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func StringToID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ParamID reads a numeric path parameter. A malformed value renders the 404
// page and reports false.
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := StringToID(c.Param(name))
	if err != nil || id == 0 {
		RespondNotFound(c)
		return 0, false
	}
	return id, true
}
