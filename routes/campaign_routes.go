package routes

import (
	"github.com/BerniceZTT/crm_core/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterCampaignRoutes registers the /campaigns resource.
func RegisterCampaignRoutes(router *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewCampaignController(db)
	campaignRoutes := router.Group("/campaigns")

	campaignRoutes.POST("/", ctl.Create)
	campaignRoutes.GET("/", ctl.List)
	campaignRoutes.GET("/:id", ctl.Get)
	campaignRoutes.PUT("/:id", ctl.Update)
	campaignRoutes.DELETE("/:id", ctl.Delete)
}
