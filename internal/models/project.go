package models

import "time"

const InboxName = "Inbox"

type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;index" json:"name"`
	Description string    `json:"description"`
	Status      string    `gorm:"not null;default:todo" json:"status"`
	IsFlagged   bool      `gorm:"not null;default:false" json:"is_flagged"`
	IsInbox     bool      `gorm:"not null;default:false" json:"is_inbox"`
	ParentID    *uint     `gorm:"index" json:"parent_id"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}
