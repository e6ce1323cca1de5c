package handlers

import (
	"github.com/gin-gonic/gin"
	lessonservice "github.com/lessonhub/lessonhub/internal/lesson/service"
	orderservice "github.com/lessonhub/lessonhub/internal/order/service"
)

// API bundles the lesson and order handlers.
type API struct {
	lessons *lessonservice.Service
	orders  *orderservice.Service
}

func NewAPI(lessons *lessonservice.Service, orders *orderservice.Service) *API {
	return &API{lessons: lessons, orders: orders}
}

func (a *API) Register(r gin.IRouter) {
	r.GET("/search", a.search)
	r.GET("/lessons", a.listLessons)
	r.POST("/order", a.createOrder)
	r.PUT("/updateLesson/:id", a.updateLesson)
	r.DELETE("/deleteLesson/:id", a.deleteLesson)
}
