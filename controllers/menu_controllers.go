package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-ordering/utils"
)

type MenuController struct {
	Catalog CatalogService
}

func NewMenuController(catalog CatalogService) *MenuController {
	return &MenuController{Catalog: catalog}
}

func (mc *MenuController) GetMenu(c *gin.Context) {
	restaurantID, ok := parseRestaurantID(c)
	if !ok {
		utils.RespondError(c, utils.NotFoundError("Menu not found"))
		return
	}

	menu, err := mc.Catalog.GetMenu(c.Request.Context(), restaurantID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"restaurantId": restaurantID,
		"menu":         menu,
	})
}

// parseRestaurantID reads :restaurantId. Anything that is not a positive
// integer cannot name a catalog entry.
func parseRestaurantID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("restaurantId"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
