package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wanderly/discovery-api/schema"
	"github.com/wanderly/discovery-api/store"
)

type recommendationRequest struct {
	ProfileID    string     `json:"profile_id" binding:"required"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	RadiusMeters float64    `json:"radius_meters"`
	MaxResults   int        `json:"max_results"`
	IsOpenOnly   bool       `json:"is_open_only"`
	TimeOfDay    *time.Time `json:"time_of_day"`
}

func (s *Server) generateRecommendations(c *gin.Context) {
	var body recommendationRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	reqCtx := schema.RecommendContext{
		UserLocation: schema.Location{
			Latitude:  body.Latitude,
			Longitude: body.Longitude,
		},
		RadiusMeters: body.RadiusMeters,
		MaxResults:   body.MaxResults,
		IsOpenOnly:   body.IsOpenOnly,
		TimeOfDay:    body.TimeOfDay,
	}
	if err := reqCtx.Validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	recommendations, err := s.scoring.GenerateRecommendations(c, body.ProfileID, reqCtx)
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorRecommendation, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
