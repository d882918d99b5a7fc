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

// TicketController serves the /tickets resource.
type TicketController struct {
	store *repository.Store[models.Ticket]
}

// NewTicketController wires the controller to the database.
func NewTicketController(db *gorm.DB) *TicketController {
	return &TicketController{store: repository.NewStore[models.Ticket](db)}
}

// Create inserts a ticket. The customer reference is not checked
// against the customers table.
func (ctl *TicketController) Create(c *gin.Context) {
	var req models.TicketCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	ticket := models.Ticket{
		CustomerID: req.CustomerID,
		Issue:      req.Issue,
		Status:     req.Status,
	}
	if err := ctl.store.Insert(c.Request.Context(), &ticket); err != nil {
		utils.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// List returns all tickets.
func (ctl *TicketController) List(c *gin.Context) {
	tickets, err := ctl.store.List(c.Request.Context())
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Get returns one ticket by id.
func (ctl *TicketController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ticket, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Ticket"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Update replaces all mutable fields of a ticket.
func (ctl *TicketController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.TicketCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.CreateValidationError("invalid request body: "+err.Error()))
		return
	}

	ticket, err := ctl.store.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Ticket"))
			return
		}
		utils.HandleError(c, err)
		return
	}

	ticket.CustomerID = req.CustomerID
	ticket.Issue = req.Issue
	ticket.Status = req.Status

	if err := ctl.store.Save(c.Request.Context(), ticket); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Delete removes a ticket.
func (ctl *TicketController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.store.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleError(c, utils.CreateNotFoundError("Ticket"))
			return
		}
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Ticket %d deleted successfully", id)})
}
