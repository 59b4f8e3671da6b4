package models

import "time"

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null;index" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"not null;default:todo" json:"status"`
	IsFlagged   bool       `gorm:"not null;default:false" json:"is_flagged"`
	DueDate     *time.Time `json:"due_date"`
	Priority    int        `gorm:"not null;default:0" json:"priority"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}
