package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health probes postgres and redis connectivity. Never exposes credentials
// or internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if rdb.Ping(ctx).Err() != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus != "up" || cacheStatus != "up" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"service": "catalog",
			"db":      dbStatus,
			"cache":   cacheStatus,
		})
	}
}
