package domain

import "time"

// Treatment records a disease or pest treatment applied to a hive.
// A treatment with no end date is still running.
type Treatment struct {
	ID               int64      `gorm:"primaryKey" json:"id"`
	Scope            *string    `gorm:"size:50" json:"scope"`
	ApiaryID         int64      `gorm:"not null;index" json:"apiary_id"`
	Apiary           *Apiary    `gorm:"constraint:OnDelete:CASCADE" json:"apiary,omitempty"`
	ApplyToAllHives  bool       `gorm:"not null;default:false" json:"apply_to_all_hives"`
	HiveID           *int64     `gorm:"index" json:"hive_id"`
	Hive             *Hive      `gorm:"constraint:OnDelete:CASCADE" json:"hive,omitempty"`
	Name             *string    `gorm:"size:100" json:"name"`
	Disease          *string    `gorm:"size:100" json:"disease"`
	TreatmentProduct *string    `gorm:"size:100" json:"treatment_product"`
	StartDate        time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	InputAs          *string    `gorm:"size:50" json:"input_as"`
	TotalQuantity    *float64   `json:"total_quantity"`
	Doses            *string    `gorm:"size:200" json:"doses"`
	Notes            *string    `gorm:"size:500" json:"notes"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (Treatment) TableName() string { return "treatments" }

// ActiveAt reports whether the treatment is running at t.
func (t *Treatment) ActiveAt(at time.Time) bool {
	if t.StartDate.After(at) {
		return false
	}
	return t.EndDate == nil || !t.EndDate.Before(at)
}

func (t *Treatment) GetID() int64            { return t.ID }
func (t *Treatment) GetApiaryID() int64      { return t.ApiaryID }
func (t *Treatment) GetHiveID() *int64       { return t.HiveID }
func (t *Treatment) AssignHive(hiveID int64) { t.HiveID = &hiveID }
func (t *Treatment) AppliesToAllHives() bool { return t.ApplyToAllHives }
