package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// ContextURL is the key the base URL of the API is stored under in the
// request context.
const ContextURL = "finanzas-url"

func URLMiddleware(url *url.URL) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextURL, url.String())
		c.Next()
	}
}

var metrics = []prometheus.Collector{
	requestCount,
	requestDuration,
}

// registerPrometheusMetrics registers all Prometheus metrics
// with the default registry.
func registerPrometheusMetrics() error {
	for _, c := range metrics {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus", c)
		}
	}

	return nil
}

// unregisterPrometheusMetrics unregisters all Prometheus metrics.
//
// This is needed to cleanly exit.
func unregisterPrometheusMetrics() bool {
	for _, c := range metrics {
		if ok := prometheus.Unregister(c); !ok {
			return false
		}
	}

	return true
}

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

// MetricsMiddleware updates Prometheus metrics.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		elapsed := float64(time.Since(start)) / float64(time.Second)

		// Replace all URL parameters with their name to reduce cardinality
		// https://prometheus.io/docs/practices/naming/#labels
		url := c.Request.URL.Path
		for _, p := range c.Params {
			url = strings.Replace(url, p.Value, fmt.Sprintf(":%s", p.Key), 1)
		}

		requestDuration.WithLabelValues(status, c.Request.Method, url).Observe(elapsed)
		requestCount.WithLabelValues(status, c.Request.Method, url).Inc()
	}
}

// ValidationErrorToText translates a validator error into a human readable
// message.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

type errorResponse struct {
	Error string `json:"error" example:"Month is required"` // The error message
}

// ErrorsMiddleware translates errors that handlers attached to the context
// into responses. Handlers that already wrote a response are left alone.
func ErrorsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			switch e.Type {
			case gin.ErrorTypePublic:
				if !c.Writer.Written() {
					c.JSON(c.Writer.Status(), errorResponse{Error: e.Error()})
				}

			case gin.ErrorTypeBind:
				if errs, ok := e.Err.(validator.ValidationErrors); ok {
					texts := make([]string, 0, len(errs))
					for _, err := range errs {
						texts = append(texts, ValidationErrorToText(err))
					}

					// Maintain the preset response status
					status := http.StatusBadRequest
					if c.Writer.Status() != http.StatusOK {
						status = c.Writer.Status()
					}

					if !c.Writer.Written() {
						c.JSON(status, errorResponse{Error: strings.Join(texts, ", ")})
					}
					continue
				}

				if !c.Writer.Written() {
					c.JSON(http.StatusBadRequest, errorResponse{Error: e.Error()})
				}
			default:
				requestID := requestid.Get(c)
				log.Error().Str("request-id", requestID).Msgf("%T: %v", e, e.Err)
			}
		}

		// If there was no public or bind error, display default 500 message
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "oops, something went wrong"})
		}
	}
}
