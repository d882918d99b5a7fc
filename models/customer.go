package models

import "time"

// Customer is the central CRM record; leads and tickets point at it by id.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Phone     string    `json:"phone" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerCreateRequest is the write contract for create and update.
type CustomerCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}
