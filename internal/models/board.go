package models

import "time"

// Board groups lists within a project, typically per team or sprint. Its
// title only needs to be unique within the owning project.
type Board struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProjectID uint64    `gorm:"not null;uniqueIndex:idx_boards_project_title" json:"project_id"`
	Title     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_boards_project_title" json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Lists   []List  `gorm:"foreignKey:BoardID" json:"lists,omitempty"`
}
