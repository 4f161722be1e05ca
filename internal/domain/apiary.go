package domain

import "time"

// Apiary is a named site containing hives.
type Apiary struct {
	ID          int64        `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Forages     *string      `gorm:"size:200" json:"forages"`
	Type        *ApiaryType  `gorm:"size:20" json:"type"`
	SunExposure *SunExposure `gorm:"size:20" json:"sun_exposure"`
	Description *string      `gorm:"size:500" json:"description"`
	Address     *string      `gorm:"size:200" json:"address"`
	Zip         *string      `gorm:"size:20" json:"zip"`
	City        *string      `gorm:"size:100" json:"city"`
	State       *string      `gorm:"size:100" json:"state"`
	Country     *string      `gorm:"size:100" json:"country"`
	Latitude    *float64     `json:"latitude"`
	Longitude   *float64     `json:"longitude"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (Apiary) TableName() string { return "apiaries" }
