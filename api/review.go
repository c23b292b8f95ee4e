package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly/discovery-api/store"
)

type reviewRequest struct {
	ProfileID string  `json:"profile_id" binding:"required"`
	POIID     string  `json:"poi_id" binding:"required"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}

func (s *Server) createReview(c *gin.Context) {
	var body reviewRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	review, err := s.scoring.CreateReview(c, body.ProfileID, body.POIID, body.Rating, body.Comment)
	if err != nil {
		switch err {
		case store.ErrInvalidRating:
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidRating)
		case store.ErrPOINotFound:
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPOI)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": review})
}
