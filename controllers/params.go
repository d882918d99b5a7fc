package controllers

import (
	"strconv"

	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
)

// parseID extracts the numeric :id path parameter. On failure it writes
// the validation response and returns false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid id parameter"))
		return 0, false
	}
	return uint(id), true
}
