package routes

import (
	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Register wires every route onto the engine. Dependencies come in
// explicitly; nothing here reads global state.
func Register(router *gin.Engine, db *gorm.DB, tokens *utils.TokenService) {
	// liveness
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "CRM backend is running"})
	})

	RegisterAuthRoutes(router, db, tokens)
	RegisterUserRoutes(router, db)
	RegisterCustomerRoutes(router, db)
	RegisterLeadRoutes(router, db)
	RegisterCampaignRoutes(router, db)
	RegisterTicketRoutes(router, db)
}
