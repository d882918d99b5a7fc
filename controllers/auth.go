package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/BerniceZTT/crm_core/models"
	"github.com/BerniceZTT/crm_core/repository"
	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loginTokenTTL is the explicit expiry the login endpoint requests,
// longer than the service default.
const loginTokenTTL = 30 * time.Minute

// AuthController serves /login.
type AuthController struct {
	db     *gorm.DB
	tokens *utils.TokenService
}

// NewAuthController wires the controller to the database and token
// service.
func NewAuthController(db *gorm.DB, tokens *utils.TokenService) *AuthController {
	return &AuthController{db: db, tokens: tokens}
}

// Login exchanges username+password for a signed bearer token. Unknown
// usernames and wrong passwords get the same 401 response.
func (ctl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	utils.Logger.Info().Str("username", req.Username).Msg("login attempt")

	user, err := repository.FindUserByUsername(c.Request.Context(), ctl.db, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateAuthenticationError())
			return
		}
		utils.HandleError(c, err)
		return
	}

	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		utils.Logger.Info().Str("username", req.Username).Msg("login failed: wrong password")
		utils.HandleError(c, utils.CreateAuthenticationError())
		return
	}

	token, err := ctl.tokens.Issue(user.Username, loginTokenTTL)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.Logger.Info().Str("username", user.Username).Msg("login succeeded")
	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
