package models

import "time"

// Project represents a shared coding project owned by a single user.
//
// Deleting a project only flips IsActive to false; the row stays in place and
// remains fetchable by id. ViewCount and LikeCount are plain counters updated
// with read-modify-write semantics, relying on the database transaction for
// isolation.
type Project struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	Languages   []string `gorm:"serializer:json" json:"languages"`
	IsPublic    bool     `gorm:"default:true" json:"is_public"`
	IsActive    bool     `gorm:"default:true" json:"is_active"`
	ViewCount   int64    `gorm:"not null;default:0" json:"view_count"`
	LikeCount   int64    `gorm:"not null;default:0" json:"like_count"`
	UserID      uint     `gorm:"not null;index" json:"user_id"`
	// OwnerUsername is not persisted; joined in at query time.
	OwnerUsername string `gorm:"->;-:migration" json:"-"`
	// CommentCount is not persisted; computed at query time.
	CommentCount int64     `gorm:"->;-:migration" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
