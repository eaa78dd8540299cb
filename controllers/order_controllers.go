package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/food-ordering/services"
	"github.com/yeremiapane/food-ordering/utils"
)

type OrderController struct {
	Orders OrderService
}

func NewOrderController(orders OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// CreateOrder -> new order with status "pending"
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("Missing required fields"))
		return
	}

	order, err := oc.Orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.Orders.GetOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, order)
}

func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	// an empty body means an empty status; only malformed JSON is rejected
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, utils.ValidationError("Invalid request body"))
		return
	}

	order, err := oc.Orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Order status updated",
		"order":   order,
	})
}
