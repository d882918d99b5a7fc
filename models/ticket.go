package models

import "time"

// Ticket is a support issue raised for a customer. Like Lead, the
// customer reference is unconstrained and survives customer deletion.
type Ticket struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	Issue      string    `json:"issue"`
	Status     string    `json:"status" gorm:"size:50"`
	CreatedAt  time.Time `json:"created_at"`
}

// TicketCreateRequest is the write contract for create and update.
type TicketCreateRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Issue      string `json:"issue" binding:"required"`
	Status     string `json:"status" binding:"required"`
}
