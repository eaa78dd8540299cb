package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-ordering/utils"
)

type HealthController struct {
	Service string
}

func NewHealthController(service string) *HealthController {
	return &HealthController{Service: service}
}

func (hc *HealthController) Health(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"status":  "healthy",
		"service": hc.Service,
	})
}
