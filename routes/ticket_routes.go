package routes

import (
	"github.com/BerniceZTT/crm_core/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterTicketRoutes registers the /tickets resource.
func RegisterTicketRoutes(router *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewTicketController(db)
	ticketRoutes := router.Group("/tickets")

	ticketRoutes.POST("/", ctl.Create)
	ticketRoutes.GET("/", ctl.List)
	ticketRoutes.GET("/:id", ctl.Get)
	ticketRoutes.PUT("/:id", ctl.Update)
	ticketRoutes.DELETE("/:id", ctl.Delete)
}
