package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/control-finanzas/backend/api"
	v1 "github.com/control-finanzas/backend/internal/controllers/v1"
	"github.com/control-finanzas/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router with all middlewares. The returned teardown
// function has to be called before the router is dropped, it releases the
// Prometheus collectors so that a new router can be set up.
func Config() (*gin.Engine, func(), error) {
	apiURL, err := url.Parse(apiURLString())
	if err != nil {
		return nil, func() {}, err
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() { unregisterPrometheusMetrics() }

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(apiURL))
	r.Use(MetricsMiddleware())
	r.Use(ErrorsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, errorResponse{Error: "This HTTP method is not allowed for the endpoint you called"})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = apiURL.Host
	docs.SwaggerInfo.BasePath = apiURL.Path
	docs.SwaggerInfo.Title = "Control Finanzas"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for Control Finanzas, a personal finance tracker for monthly budgets, spending categories and savings goals."

	return r, teardown, nil
}

func apiURLString() string {
	if s, ok := os.LookupEnv("API_URL"); ok {
		return s
	}

	return "http://localhost:8080"
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows attaching the API to different paths
// for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	apiV1 := group.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.OPTIONS("", OptionsV1)
	}

	v1.RegisterCategoryRoutes(apiV1.Group("/categories"))
	v1.RegisterExpenseRoutes(apiV1.Group("/expenses"))
	v1.RegisterIncomeRoutes(apiV1.Group("/incomes"))
	v1.RegisterExtraExpenseRoutes(apiV1.Group("/extra-expenses"))
	v1.RegisterSavingsGoalRoutes(apiV1.Group("/savings-goals"))
	v1.RegisterSettingsRoutes(apiV1.Group("/settings"))
	v1.RegisterMonthRoutes(apiV1.Group("/months"))
	v1.RegisterStatsRoutes(apiV1.Group("/stats"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    c.GetString(ContextURL) + "/docs/index.html",
			Version: c.GetString(ContextURL) + "/version",
			Metrics: c.GetString(ContextURL) + "/metrics",
			V1:      c.GetString(ContextURL) + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories"`        // URL of category list endpoint
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses"`            // URL of expense list endpoint
	Incomes       string `json:"incomes" example:"https://example.com/api/v1/incomes"`              // URL of income list endpoint
	ExtraExpenses string `json:"extraExpenses" example:"https://example.com/api/v1/extra-expenses"` // URL of extra expense list endpoint
	SavingsGoals  string `json:"savingsGoals" example:"https://example.com/api/v1/savings-goals"`   // URL of savings goal list endpoint
	Settings      string `json:"settings" example:"https://example.com/api/v1/settings"`            // URL of the settings endpoint
	Months        string `json:"months" example:"https://example.com/api/v1/months"`                // URL of the month dashboard endpoint
	Stats         string `json:"stats" example:"https://example.com/api/v1/stats"`                  // URL of the statistics endpoints
}

// GetV1 returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Categories:    c.GetString(ContextURL) + "/v1/categories",
			Expenses:      c.GetString(ContextURL) + "/v1/expenses",
			Incomes:       c.GetString(ContextURL) + "/v1/incomes",
			ExtraExpenses: c.GetString(ContextURL) + "/v1/extra-expenses",
			SavingsGoals:  c.GetString(ContextURL) + "/v1/savings-goals",
			Settings:      c.GetString(ContextURL) + "/v1/settings",
			Months:        c.GetString(ContextURL) + "/v1/months",
			Stats:         c.GetString(ContextURL) + "/v1/stats",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
