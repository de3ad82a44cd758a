package api

import (
	"strconv"
	"time"

	"github.com/avialab/aircatalog/pkg/logger"
	"github.com/avialab/aircatalog/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const correlationIDHeader = "X-Correlation-ID"

// CorrelationID takes the incoming correlation id or mints one, and echoes it
// on the response so callers can stitch logs across services.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(correlationIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}
		c.Set("correlation_id", correlationID)
		c.Writer.Header().Set(correlationIDHeader, correlationID)
		c.Next()
	}
}

// RequestLogger logs one line per request and records the latency histogram.
func RequestLogger(log logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		if m != nil {
			m.RequestDuration.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Observe(duration.Seconds())
		}

		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", duration.String(),
			"correlation_id", c.GetString("correlation_id"),
		)
	}
}
