package router

import (
	"net/http"

	docs "github.com/cashflow-insight/backend/api"
	"github.com/cashflow-insight/backend/internal/config"
	"github.com/cashflow-insight/backend/pkg/controllers/analyze"
	"github.com/cashflow-insight/backend/pkg/controllers/healthz"
	"github.com/cashflow-insight/backend/pkg/controllers/root"
	"github.com/cashflow-insight/backend/pkg/controllers/version"
	"github.com/cashflow-insight/backend/pkg/httperrors"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/cashflow-insight/backend/pkg/router.buildVersion=..."
var buildVersion = "0.0.0"

// Version returns the version the binary was built with.
func Version() string {
	return buildVersion
}

// Config creates the router with all middlewares.
//
// The returned function unregisters the Prometheus metrics and must be
// called when the router is not used anymore.
func Config(c config.Config) (*gin.Engine, func(), error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	// Uploads larger than this are buffered to temporary files
	r.MaxMultipartMemory = c.MaxUploadSize

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() {
		if !unregisterPrometheusMetrics() {
			log.Error().Msg("could not unregister all Prometheus metrics")
		}
	}

	r.Use(gin.Recovery())
	r.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.New().String()
	})))
	r.Use(URLMiddleware(c.APIURL))
	r.Use(MaxBodySizeMiddleware(c.MaxUploadSize))
	r.Use(MetricsMiddleware())
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the endpoint you called")
	})
	r.NoRoute(func(c *gin.Context) {
		httperrors.New(c, http.StatusNotFound, "There is no endpoint at this path")
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
	corsConfig := cors.Config{
		AllowMethods: []string{"OPTIONS", "GET", "POST"},
		AllowHeaders: []string{"Origin", "Content-Length", "Content-Type"},
	}

	if c.AllowAllOrigins() {
		corsConfig.AllowAllOrigins = true
	} else {
		log.Debug().Strs("CORS Allowed Origins", c.CORSAllowOrigins).Msg("Router")
		corsConfig.AllowOrigins = c.CORSAllowOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", c.APIURL.String()).Str("Host", c.APIURL.Host).Str("Path", c.APIURL.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	docs.SwaggerInfo.Host = c.APIURL.Host
	docs.SwaggerInfo.BasePath = c.APIURL.Path
	docs.SwaggerInfo.Title = "Cash Flow Insight"
	docs.SwaggerInfo.Version = buildVersion
	docs.SwaggerInfo.Description = "Analyzes CSV bank statements: burn rate, spending categories, safety buffer and a 12 month balance projection."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
//
// pprof endpoints are only attached when enablePprof is set.
func AttachRoutes(group *gin.RouterGroup, enablePprof bool) {
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	root.RegisterRoutes(group.Group(""))
	healthz.RegisterRoutes(group.Group("/healthz"))
	version.RegisterRoutes(group.Group("/version"), buildVersion)
	analyze.RegisterRoutes(group.Group("/analyze"))
}
