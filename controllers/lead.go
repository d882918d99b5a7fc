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

// LeadController serves the /leads resource.
type LeadController struct {
	store *repository.Store[models.Lead]
}

// NewLeadController wires the controller to the database.
func NewLeadController(db *gorm.DB) *LeadController {
	return &LeadController{store: repository.NewStore[models.Lead](db)}
}

// Create inserts a lead. The customer reference is not checked against
// the customers table.
func (ctl *LeadController) Create(c *gin.Context) {
	var req models.LeadCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	lead := models.Lead{
		CustomerID: req.CustomerID,
		Status:     req.Status,
		Notes:      req.Notes,
	}
	if err := ctl.store.Insert(c.Request.Context(), &lead); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, lead)
}

// List returns all leads.
func (ctl *LeadController) List(c *gin.Context) {
	leads, err := ctl.store.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, leads)
}

// Get returns one lead by id.
func (ctl *LeadController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	lead, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Lead"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Update replaces all mutable fields of a lead.
func (ctl *LeadController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.LeadCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	lead, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Lead"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	lead.CustomerID = req.CustomerID
	lead.Status = req.Status
	lead.Notes = req.Notes

	if err := ctl.store.Save(c.Request.Context(), lead); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, lead)
}

// Delete removes a lead.
func (ctl *LeadController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Lead"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Lead %d deleted successfully", id)})
}
