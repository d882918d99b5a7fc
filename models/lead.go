package models

import "time"

// Lead tracks a sales opportunity for a customer. CustomerID carries no
// database foreign-key constraint: deleting a customer leaves its leads
// in place with a dangling id.
type Lead struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"index;not null"`
	Status     string    `json:"status" gorm:"size:50"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeadCreateRequest is the write contract for create and update.
type LeadCreateRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Notes      string `json:"notes" binding:"required"`
}
