package models

import "time"

// Label is a colored tag scoped to a project and attached to any number of
// tasks. Deleting a label only removes the associations, never the tasks.
type Label struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	ProjectID uint64    `gorm:"not null;uniqueIndex:idx_labels_project_title" json:"project_id"`
	Title     string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_labels_project_title" json:"title"`
	Color     string    `gorm:"type:varchar(7);not null" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Tasks   []Task  `gorm:"many2many:task_labels" json:"tasks,omitempty"`
}
