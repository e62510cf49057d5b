package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/Kariqs/vkusnyashka/models"
	"github.com/Kariqs/vkusnyashka/repository"
	"github.com/gin-gonic/gin"
)

// GetMyOrders lists the caller's orders.
func (c *Controller) GetMyOrders(ctx *gin.Context) {
	orders, err := c.Shop.Orders(c.request(ctx))
	if err != nil {
		c.fail(ctx, err, "", nil)
		return
	}
	c.Render.Render(ctx, http.StatusOK, "orders.html", gin.H{"orders": orders})
}

// GetOrders is the paginated back-office order list.
func (c *Controller) GetOrders(ctx *gin.Context) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 15
	}

	sortOrder := ctx.DefaultQuery("sort", "desc")
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	orders, count, err := c.Repo.Orders(ctx.Request.Context(), repository.OrderPage{Page: page, Limit: limit, Sort: sortOrder})
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func (c *Controller) UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status models.OrderStatus `json:"status" form:"status" binding:"required"`
	}
	if err := ctx.ShouldBind(&orderStatusData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Failed to parse request body", "errors": bindingErrors(err)})
		return
	}
	if !orderStatusData.Status.Valid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Unknown order status", "errors": gin.H{"status": "Select a valid choice."}})
		return
	}

	orderId, err := idParam(ctx, "orderId")
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if err := c.Repo.UpdateOrderStatus(ctx.Request.Context(), orderId, orderStatusData.Status); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}
