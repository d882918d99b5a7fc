package routes

import (
	"github.com/BerniceZTT/crm_core/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterCustomerRoutes registers the /customers resource.
func RegisterCustomerRoutes(router *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewCustomerController(db)
	customerRoutes := router.Group("/customers")

	customerRoutes.POST("/", ctl.Create)
	customerRoutes.GET("/", ctl.List)
	customerRoutes.GET("/:id", ctl.Get)
	customerRoutes.PUT("/:id", ctl.Update)
	customerRoutes.DELETE("/:id", ctl.Delete)
}
