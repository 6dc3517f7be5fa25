package middleware

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbKey = "db"

func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbKey, db)
		c.Next()
	}
}

// GetDB returns the request-scoped handle, bound to the request context.
// It returns nil when DatabaseMiddleware is not installed.
func GetDB(c *gin.Context) *gorm.DB {
	value, exists := c.Get(dbKey)
	if !exists {
		return nil
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil
	}
	return db.WithContext(c.Request.Context())
}
