package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"artify-backend/internal/models"
)

func HealthHandler(c *gin.Context) {
	response := models.HealthResponse{
		Status: "ok",
	}
	c.JSON(http.StatusOK, response)
}
