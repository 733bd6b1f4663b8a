package models

import "time"

// List is a column on a board (e.g. "To Do", "Doing", "Done"). Position is
// the zero-based ordering of the column within its board.
type List struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	BoardID   uint64    `gorm:"not null;uniqueIndex:idx_lists_board_title" json:"board_id"`
	Title     string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_lists_board_title" json:"title"`
	Position  int       `gorm:"not null" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Board Board  `gorm:"foreignKey:BoardID" json:"board,omitempty"`
	Tasks []Task `gorm:"foreignKey:ListID" json:"tasks,omitempty"`
}
