package db

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

// PoolStats represents database connection pool statistics.
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
}

// GetPoolStats returns connection pool statistics.
func GetPoolStats(pool *pgxpool.Pool) *PoolStats {
	stat := pool.Stat()
	return &PoolStats{
		TotalConns:    stat.TotalConns(),
		IdleConns:     stat.IdleConns(),
		AcquiredConns: stat.AcquiredConns(),
		MaxConns:      stat.MaxConns(),
	}
}

// HealthHandler returns the health check endpoint handler. It reports the
// environment label and process uptime, and pings the database.
func HealthHandler(pool *pgxpool.Pool, env string, started time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		if err := pool.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":      "unhealthy",
				"timestamp":   time.Now().UTC().Format(time.RFC3339),
				"environment": env,
				"error":       err.Error(),
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":      "ok",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"uptime":      time.Since(started).Seconds(),
			"environment": env,
			"pool":        GetPoolStats(pool),
		})
	}
}
