package domain

import "time"

// Task is a scheduled piece of apiary work, optionally tied to one hive.
type Task struct {
	ID          int64        `gorm:"primaryKey" json:"id"`
	ApiaryID    int64        `gorm:"not null;index" json:"apiary_id"`
	Apiary      *Apiary      `gorm:"constraint:OnDelete:CASCADE" json:"apiary,omitempty"`
	HiveID      *int64       `gorm:"index" json:"hive_id"`
	Hive        *Hive        `gorm:"constraint:OnDelete:CASCADE" json:"hive,omitempty"`
	Title       string       `gorm:"size:200;not null" json:"title"`
	StartDate   time.Time    `gorm:"not null;index" json:"start_date"`
	StartTime   *string      `gorm:"size:5" json:"start_time"`
	EndDate     *time.Time   `json:"end_date"`
	EndTime     *string      `gorm:"size:5" json:"end_time"`
	Status      TaskStatus   `gorm:"size:20;not null;default:PENDING;index" json:"status"`
	Priority    TaskPriority `gorm:"size:10;not null;default:NORMAL" json:"priority"`
	Type        *string      `gorm:"size:100" json:"type"`
	Description *string      `gorm:"size:2000" json:"description"`
	Reminder    bool         `gorm:"not null;default:false" json:"reminder"`
	ReminderMe  *string      `gorm:"size:100" json:"reminder_me"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (Task) TableName() string { return "tasks" }
