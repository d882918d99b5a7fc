package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/BerniceZTT/crm_core/models"
	"github.com/BerniceZTT/crm_core/repository"
	"github.com/BerniceZTT/crm_core/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserController serves the /users resource. Passwords are hashed
// before anything touches the database.
type UserController struct {
	store *repository.Store[models.User]
}

// NewUserController wires the controller to the database.
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{store: repository.NewStore[models.User](db)}
}

// Create inserts a user with a bcrypt-hashed password.
func (ctl *UserController) Create(c *gin.Context) {
	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := ctl.store.Insert(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.HandleError(c, utils.CreateConflictError("username already in use"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// List returns all users. Password hashes are excluded by the model's
// json tags.
func (ctl *UserController) List(c *gin.Context) {
	users, err := ctl.store.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Get returns one user by id.
func (ctl *UserController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("User"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update replaces username, role and password. The submitted password
// is re-hashed unconditionally, matching the create contract.
func (ctl *UserController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	user, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("User"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	user.Username = req.Username
	user.PasswordHash = hash
	user.Role = req.Role

	if err := ctl.store.Save(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.HandleError(c, utils.CreateConflictError("username already in use"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Delete removes a user.
func (ctl *UserController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("User"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("User %d deleted successfully", id)})
}
