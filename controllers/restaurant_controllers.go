package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-ordering/utils"
)

type RestaurantController struct {
	Catalog CatalogService
}

func NewRestaurantController(catalog CatalogService) *RestaurantController {
	return &RestaurantController{Catalog: catalog}
}

func (rc *RestaurantController) ListRestaurants(c *gin.Context) {
	restaurants, err := rc.Catalog.ListRestaurants(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"restaurants": restaurants})
}

func (rc *RestaurantController) GetRestaurant(c *gin.Context) {
	id, ok := parseRestaurantID(c)
	if !ok {
		utils.RespondError(c, utils.NotFoundError("Restaurant not found"))
		return
	}

	restaurant, err := rc.Catalog.GetRestaurant(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, restaurant)
}
