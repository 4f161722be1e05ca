package domain

import "time"

// Harvest records product taken from a hive.
type Harvest struct {
	ID              int64           `gorm:"primaryKey" json:"id"`
	Scope           *string         `gorm:"size:50" json:"scope"`
	ApiaryID        int64           `gorm:"not null;index" json:"apiary_id"`
	Apiary          *Apiary         `gorm:"constraint:OnDelete:CASCADE" json:"apiary,omitempty"`
	ApplyToAllHives bool            `gorm:"not null;default:false" json:"apply_to_all_hives"`
	HiveID          *int64          `gorm:"index" json:"hive_id"`
	Hive            *Hive           `gorm:"constraint:OnDelete:CASCADE" json:"hive,omitempty"`
	Name            *string         `gorm:"size:100" json:"name"`
	HarvestDate     time.Time       `gorm:"not null;index" json:"harvest_date"`
	ProductType     *HarvestProduct `gorm:"size:20" json:"product_type"`
	Variety         *string         `gorm:"size:100" json:"variety"`
	TotalQuantity   *float64        `json:"total_quantity"`
	Unit            *HarvestUnit    `gorm:"size:5" json:"unit"`
	Notes           *string         `gorm:"size:500" json:"notes"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (Harvest) TableName() string { return "harvests" }

func (h *Harvest) GetID() int64            { return h.ID }
func (h *Harvest) GetApiaryID() int64      { return h.ApiaryID }
func (h *Harvest) GetHiveID() *int64       { return h.HiveID }
func (h *Harvest) AssignHive(hiveID int64) { h.HiveID = &hiveID }
func (h *Harvest) AppliesToAllHives() bool { return h.ApplyToAllHives }
