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

// CustomerController serves the /customers resource.
type CustomerController struct {
	store *repository.Store[models.Customer]
}

// NewCustomerController wires the controller to the database.
func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{store: repository.NewStore[models.Customer](db)}
}

// Create inserts a customer and returns it with the assigned id and
// created_at.
func (ctl *CustomerController) Create(c *gin.Context) {
	var req models.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	customer := models.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := ctl.store.Insert(c.Request.Context(), &customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.HandleError(c, utils.CreateConflictError("email already in use"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

// List returns all customers.
func (ctl *CustomerController) List(c *gin.Context) {
	customers, err := ctl.store.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// Get returns one customer by id.
func (ctl *CustomerController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Customer"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Update replaces all mutable fields of a customer. id and created_at
// are preserved.
func (ctl *CustomerController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	customer, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Customer"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone

	if err := ctl.store.Save(c.Request.Context(), customer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.HandleError(c, utils.CreateConflictError("email already in use"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer. Its leads and tickets are left in place.
func (ctl *CustomerController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Customer"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Customer %d deleted successfully", id)})
}
