package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cafe-api/internal/dto"
)

type CafeResponse struct {
	Cafe dto.CafeDTO `json:"cafe"`
}

type ListResponse struct {
	Cafes []dto.CafeDTO `json:"cafes"`
}

func One(c *gin.Context, cafe dto.CafeDTO) {
	c.JSON(http.StatusOK, CafeResponse{Cafe: cafe})
}

func List(c *gin.Context, cafes []dto.CafeDTO) {
	c.JSON(http.StatusOK, ListResponse{Cafes: cafes})
}

// Success renders {"response": {"success": message, ...extra}}.
func Success(c *gin.Context, message string, extra gin.H) {
	body := gin.H{"success": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, gin.H{"response": body})
}
