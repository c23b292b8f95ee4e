package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/wanderly/discovery-api/utils"
)

type blacklistRequest struct {
	POIID         string `json:"poi_id" binding:"required"`
	Reason        string `json:"reason"`
	DurationHours int    `json:"duration_hours" binding:"required"`
}

// adminBlacklist is an internal only api to suppress a POI from
// recommendations for a bounded period
func (s *Server) adminBlacklist(c *gin.Context) {
	var body blacklistRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	entry, err := s.trends.Blacklist(c, body.POIID, body.Reason, body.DurationHours)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entry})
}

// adminBlacklistCleanup reaps expired blacklist entries immediately
// instead of waiting for the scheduled task
func (s *Server) adminBlacklistCleanup(c *gin.Context) {
	removed, err := s.trends.CleanupExpiredBlacklist(c)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// adminSeasonalAnalysis is an internal only api to trigger the task that
// rebuilds the per-POI seasonal aggregates
func (s *Server) adminSeasonalAnalysis(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "seasonal_analysis",
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}

// adminTrendingRefresh is an internal only api to trigger the task that
// recomputes the trending list of one cell ahead of its TTL
func (s *Server) adminTrendingRefresh(c *gin.Context) {
	geohash := c.Query("geohash")
	if err := utils.ValidateGeohash(geohash); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidGeohash, err)
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "trending_refresh",
		Args: []tasks.Arg{{Type: "string", Value: geohash}},
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}
