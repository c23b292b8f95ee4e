package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/wanderly/discovery-api/cache"
	"github.com/wanderly/discovery-api/logmodule"
	"github.com/wanderly/discovery-api/recommend"
	"github.com/wanderly/discovery-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.DiscoveryStore

	// Domain services
	scoring *recommend.ScoringService
	trends  *recommend.TrendAnalyzer

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	discoveryStore store.DiscoveryStore,
	trendingCache cache.TrendingCache,
	backgroundServer *machinery.Server) *Server {
	return &Server{
		store:      discoveryStore,
		scoring:    recommend.NewScoringService(discoveryStore, recommend.ScoringWeightsFromViper()),
		trends:     recommend.NewTrendAnalyzer(discoveryStore, trendingCache, recommend.TrendConfigFromViper()),
		background: backgroundServer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	profileRoute := apiRoute.Group("/profiles")
	{
		profileRoute.POST("", s.profileRegister)
		profileRoute.GET("/:profileID", s.profileDetail)
		profileRoute.GET("/:profileID/interactions", s.profileInteractions)
	}

	apiRoute.POST("/recommendations", s.generateRecommendations)
	apiRoute.POST("/interactions", s.recordInteraction)
	apiRoute.POST("/reviews", s.createReview)

	placeRoute := apiRoute.Group("/places")
	{
		placeRoute.POST("", s.addPlace)
		placeRoute.GET("/underrated", s.underratedPlaces)
		placeRoute.GET("/trending", s.trendingPlaces)
		placeRoute.GET("/:poiID", s.getPlace)
		placeRoute.GET("/:poiID/reviews", s.placeReviews)
		placeRoute.GET("/:poiID/seasonal", s.seasonalMetadata)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/blacklist", s.adminBlacklist)
		secretRoute.POST("/blacklist/cleanup", s.adminBlacklistCleanup)
		secretRoute.POST("/seasonal-analysis", s.adminSeasonalAnalysis)
		secretRoute.POST("/trending/refresh", s.adminTrendingRefresh)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) apikeyAuthentication(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiToken := c.GetHeader("Api-Token")
		if apiToken == "" || apiToken != key {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
