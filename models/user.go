package models

// User is a backoffice account that can authenticate against /login.
// The stored hash is never serialized.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	Role         string `json:"role" gorm:"size:50"`
}

// UserCreateRequest carries the plaintext password; it is hashed before
// the record is persisted, on update as well as on create.
type UserCreateRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}
