package routes

import (
	"github.com/BerniceZTT/crm_core/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterUserRoutes registers the /users resource.
func RegisterUserRoutes(router *gin.Engine, db *gorm.DB) {
	ctl := controllers.NewUserController(db)
	userRoutes := router.Group("/users")

	userRoutes.POST("/", ctl.Create)
	userRoutes.GET("/", ctl.List)
	userRoutes.GET("/:id", ctl.Get)
	userRoutes.PUT("/:id", ctl.Update)
	userRoutes.DELETE("/:id", ctl.Delete)
}
