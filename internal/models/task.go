package models

import "time"

type TaskPriority string

const (
	PriorityHigh   TaskPriority = "HI"
	PriorityMedium TaskPriority = "ME"
	PriorityLow    TaskPriority = "LO"
)

// Priorities lists the closed set of valid priority codes.
func Priorities() []string {
	return []string{string(PriorityHigh), string(PriorityMedium), string(PriorityLow)}
}

// Task is a single card within a list. TaskNo is the primary identity,
// assigned by the database as an auto-incrementing integer. StoryPoints must
// be in [0,100] and divisible by 5.
type Task struct {
	TaskNo      uint64       `gorm:"primarykey" json:"task_no"`
	ListID      uint64       `gorm:"not null;index" json:"list_id"`
	Title       string       `gorm:"type:varchar(64);not null" json:"title"`
	Description string       `gorm:"type:varchar(512)" json:"description"`
	Priority    TaskPriority `gorm:"type:varchar(2);not null;default:'ME'" json:"priority"`
	StoryPoints int          `gorm:"not null" json:"story_points"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	List   List    `gorm:"foreignKey:ListID" json:"list,omitempty"`
	Labels []Label `gorm:"many2many:task_labels" json:"labels,omitempty"`
}
