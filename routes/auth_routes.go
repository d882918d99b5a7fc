package routes

import (
	"github.com/BerniceZTT/crm_core/controllers"
	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes registers the login endpoint.
func RegisterAuthRoutes(router *gin.Engine, db *gorm.DB, tokens *utils.TokenService) {
	ctl := controllers.NewAuthController(db, tokens)
	router.POST("/login", ctl.Login)
}
