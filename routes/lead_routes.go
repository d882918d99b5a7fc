package routes

import (
	"github.com/BerniceZTT/crm_core/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterLeadRoutes registers the /leads resource.
func RegisterLeadRoutes(router *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewLeadController(db)
	leadRoutes := router.Group("/leads")

	leadRoutes.POST("/", ctl.Create)
	leadRoutes.GET("/", ctl.List)
	leadRoutes.GET("/:id", ctl.Get)
	leadRoutes.PUT("/:id", ctl.Update)
	leadRoutes.DELETE("/:id", ctl.Delete)
}
