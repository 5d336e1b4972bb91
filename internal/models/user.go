// Package models contains the persisted domain records for the BrainBridge platform.
package models

import "time"

// User represents a registered account. The password is stored exactly as
// provided at registration and is never serialized into API responses.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Email           string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Username        string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password        string    `gorm:"not null" json:"-"`
	FirstName       string    `gorm:"size:50" json:"first_name"`
	LastName        string    `gorm:"size:50" json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	IsActive        bool      `gorm:"default:true" json:"is_active"`
	IsEmailVerified bool      `gorm:"default:false" json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
