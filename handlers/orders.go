package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	orderservice "github.com/lessonhub/lessonhub/internal/order/service"
	"github.com/lessonhub/lessonhub/pkg/metrics"
)

type createOrderRequest struct {
	OrderInfo interface{} `json:"orderInfo"`
	LessonIDs []string    `json:"lessonId"`
}

// createOrder places an order. Every lessonId entry must be structurally
// valid ObjectID hex or nothing is persisted.
func (a *API) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	id, err := a.orders.Create(c.Request.Context(), req.OrderInfo, req.LessonIDs)
	if errors.Is(err, orderservice.ErrInvalidLessonID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		respondServerError(c, "create order", err)
		return
	}
	metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{"message": "Order created", "insertedId": id})
}
