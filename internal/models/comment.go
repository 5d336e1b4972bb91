package models

import "time"

// Comment is a user comment on a project. Only the authoring user may update
// or delete it; deletion is physical.
type Comment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Content   string `gorm:"type:text;not null" json:"content"`
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	IsEdited  bool   `gorm:"default:false" json:"is_edited"`
	// AuthorUsername is not persisted; joined in at query time.
	AuthorUsername string    `gorm:"->;-:migration" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
