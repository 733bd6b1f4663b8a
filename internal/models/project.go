package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/projects-tool/project-management-api/internal/utils"
)

// Project is the top-level container for boards, lists, tasks and labels.
type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"title"`
	Description string    `gorm:"type:varchar(256)" json:"description"`
	Image       string    `gorm:"type:varchar(512)" json:"image,omitempty"`
	Slug        string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"slug"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Boards []Board `gorm:"foreignKey:ProjectID" json:"boards,omitempty"`
	Labels []Label `gorm:"foreignKey:ProjectID" json:"labels,omitempty"`
}

// BeforeSave fills the slug from the title on first save. The slug is never
// recomputed once set, even when the title changes later.
func (p *Project) BeforeSave(tx *gorm.DB) error {
	if p.Slug == "" {
		p.Slug = utils.Slugify(p.Title)
	}
	return nil
}
