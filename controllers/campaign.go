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

// CampaignController serves the /campaigns resource.
type CampaignController struct {
	store *repository.Store[models.Campaign]
}

// NewCampaignController wires the controller to the database.
func NewCampaignController(db *gorm.DB) *CampaignController {
	return &CampaignController{store: repository.NewStore[models.Campaign](db)}
}

// Create inserts a campaign. Dates are taken as submitted; no range
// check.
func (ctl *CampaignController) Create(c *gin.Context) {
	var req models.CampaignCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	campaign := models.Campaign{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := ctl.store.Insert(c.Request.Context(), &campaign); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// List returns all campaigns.
func (ctl *CampaignController) List(c *gin.Context) {
	campaigns, err := ctl.store.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// Get returns one campaign by id.
func (ctl *CampaignController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	campaign, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Campaign"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// Update replaces all mutable fields of a campaign.
func (ctl *CampaignController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.CampaignCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	campaign, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Campaign"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	campaign.Title = req.Title
	campaign.Description = req.Description
	campaign.StartDate = req.StartDate
	campaign.EndDate = req.EndDate

	if err := ctl.store.Save(c.Request.Context(), campaign); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, campaign)
}

// Delete removes a campaign.
func (ctl *CampaignController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Campaign"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Campaign %d deleted successfully", id)})
}
