package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wanderly/discovery-api/schema"
	"github.com/wanderly/discovery-api/store"
	"github.com/wanderly/discovery-api/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// listLimit reads the optional limit query parameter of a listing route.
func listLimit(c *gin.Context) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return defaultListLimit, true
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		return 0, false
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, true
}

type addPlaceRequest struct {
	Name       string           `json:"name" binding:"required"`
	Address    string           `json:"address"`
	Category   string           `json:"category" binding:"required"`
	Tags       []string         `json:"tags"`
	Location   *schema.Location `json:"location"`
	ExternalID string           `json:"external_id"`
}

func (s *Server) addPlace(c *gin.Context) {
	var body addPlaceRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if body.Location == nil || !body.Location.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	poi, err := s.store.AddPOI(c, body.Name, body.Address, body.Category, body.Tags,
		body.Location.Longitude, body.Location.Latitude, body.ExternalID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": poi})
}

func (s *Server) getPlace(c *gin.Context) {
	poiID, err := primitive.ObjectIDFromHex(c.Param("poiID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	poi, err := s.store.GetPOI(c, poiID)
	if err != nil {
		if err == store.ErrPOINotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUnknownPOI)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": poi})
}

func (s *Server) placeReviews(c *gin.Context) {
	poiID, err := primitive.ObjectIDFromHex(c.Param("poiID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	limit, ok := listLimit(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	reviews, err := s.store.ListReviewsByPOI(c, poiID, limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

func (s *Server) underratedPlaces(c *gin.Context) {
	geohash := c.Query("geohash")
	if err := utils.ValidateGeohash(geohash); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidGeohash, err)
		return
	}

	pois, err := s.trends.Underrated(c, geohash)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"places": pois})
}

func (s *Server) trendingPlaces(c *gin.Context) {
	geohash := c.Query("geohash")
	if err := utils.ValidateGeohash(geohash); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidGeohash, err)
		return
	}

	list, err := s.trends.Trending(c, geohash)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorTrending, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"geohash":     list.Geohash,
		"computed_at": list.ComputedAt,
		"places":      list.Places,
	})
}

func (s *Server) seasonalMetadata(c *gin.Context) {
	poiID, err := primitive.ObjectIDFromHex(c.Param("poiID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	metadata, err := s.store.GetSeasonalMetadata(c, poiID)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seasonal": metadata})
}
