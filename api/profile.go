package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wanderly/discovery-api/store"
)

type profileRegisterRequest struct {
	AccountNumber string `json:"account_number" binding:"required"`
}

func (s *Server) profileRegister(c *gin.Context) {
	var body profileRegisterRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	profile, err := s.store.CreateProfile(c, body.AccountNumber)
	if err != nil {
		if err == store.ErrProfileExisted {
			abortWithEncoding(c, http.StatusConflict, errorAccountTaken, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

func (s *Server) profileDetail(c *gin.Context) {
	profile, err := s.store.GetProfile(c, c.Param("profileID"))
	if err != nil {
		if err == store.ErrProfileNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorProfileNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": profile})
}

func (s *Server) profileInteractions(c *gin.Context) {
	limit, ok := listLimit(c)
	if !ok {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	interactions, err := s.store.ListInteractionsByProfile(c, c.Param("profileID"), limit)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"interactions": interactions})
}
