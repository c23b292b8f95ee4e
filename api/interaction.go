package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly/discovery-api/schema"
	"github.com/wanderly/discovery-api/store"
)

type interactionRequest struct {
	ProfileID string `json:"profile_id" binding:"required"`
	POIID     string `json:"poi_id" binding:"required"`
	Type      string `json:"type" binding:"required"`
}

func (s *Server) recordInteraction(c *gin.Context) {
	var body interactionRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if _, err := schema.ParseInteractionType(body.Type); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidInteractionType, err)
		return
	}

	interaction, err := s.scoring.RecordInteraction(c, body.ProfileID, body.POIID, body.Type)
	if err != nil {
		switch err {
		case store.ErrPOINotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPOI)
		case store.ErrProfileNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": interaction})
}
