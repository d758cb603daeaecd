package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/birdcall/birdcall/internal/metrics"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "requestID"
	unmatchedRoute  = "unmatched"
)

// RequestID tags every request with an id, reusing the one provided by the client
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func AccessLog(clock clockwork.Clock, logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := clock.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("route", routeOf(c)).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", clock.Since(started)).
			Str("request_id", GetRequestID(c)).
			Msg("Served http request")
	}
}

func Metrics(clock clockwork.Clock, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		started := clock.Now()
		c.Next()
		route := routeOf(c)
		collector.HTTPRequests.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
		collector.HTTPDurations.
			WithLabelValues(route).
			Observe(clock.Since(started).Seconds())
	}
}

// routeOf keeps the label cardinality bounded by using the route pattern instead of the path
func routeOf(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}
