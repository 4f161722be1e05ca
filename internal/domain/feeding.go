package domain

import "time"

// Feeding records supplemental food given to a hive.
type Feeding struct {
	ID              int64           `gorm:"primaryKey" json:"id"`
	ApiaryID        int64           `gorm:"not null;index" json:"apiary_id"`
	Apiary          *Apiary         `gorm:"constraint:OnDelete:CASCADE" json:"apiary,omitempty"`
	ApplyToAllHives bool            `gorm:"not null;default:false" json:"apply_to_all_hives"`
	HiveID          *int64          `gorm:"index" json:"hive_id"`
	Hive            *Hive           `gorm:"constraint:OnDelete:CASCADE" json:"hive,omitempty"`
	Name            *string         `gorm:"size:200" json:"name"`
	FeedingDate     time.Time       `gorm:"not null;index" json:"feeding_date"`
	FeedingType     *string         `gorm:"size:100" json:"feeding_type"`
	FoodType        *string         `gorm:"size:100" json:"food_type"`
	Ratio           *string         `gorm:"size:50" json:"ratio"`
	Note            *string         `gorm:"size:500" json:"note"`
	InputAs         *FeedingInputAs `gorm:"size:20" json:"input_as"`
	Quantity        *float64        `json:"quantity"`
	Unit            *string         `gorm:"size:20" json:"unit"`
	Notes           *string         `gorm:"size:2000" json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (Feeding) TableName() string { return "feedings" }

func (f *Feeding) GetID() int64            { return f.ID }
func (f *Feeding) GetApiaryID() int64      { return f.ApiaryID }
func (f *Feeding) GetHiveID() *int64       { return f.HiveID }
func (f *Feeding) AssignHive(hiveID int64) { f.HiveID = &hiveID }
func (f *Feeding) AppliesToAllHives() bool { return f.ApplyToAllHives }
