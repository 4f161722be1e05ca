package domain

import "time"

// Hive is a managed colony container within an apiary.
type Hive struct {
	ID             int64        `gorm:"primaryKey" json:"id"`
	ApiaryID       int64        `gorm:"not null;index" json:"apiary_id"`
	Apiary         *Apiary      `gorm:"constraint:OnDelete:CASCADE" json:"apiary,omitempty"`
	Status         *string      `gorm:"size:100" json:"status"`
	HiveIdentifier *string      `gorm:"size:100" json:"hive_identifier"`
	Color          *string      `gorm:"size:50" json:"color"`
	Type           *HiveType    `gorm:"size:20" json:"type"`
	Source         *string      `gorm:"size:100" json:"source"`
	Purpose        *HivePurpose `gorm:"size:30" json:"purpose"`
	CreatedDate    *time.Time   `json:"created_date"`
	Note           *string      `gorm:"size:2000" json:"note"`

	ColonyInfo *HiveColonyInfo `gorm:"foreignKey:HiveID;constraint:OnDelete:CASCADE" json:"colony_info,omitempty"`
	QueenInfo  *HiveQueen      `gorm:"foreignKey:HiveID;constraint:OnDelete:CASCADE" json:"queen_info,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (Hive) TableName() string { return "hives" }

// HiveColonyInfo holds the latest known colony condition of a hive.
// There is at most one row per hive.
type HiveColonyInfo struct {
	ID               int64     `gorm:"primaryKey" json:"id"`
	HiveID           int64     `gorm:"not null;uniqueIndex" json:"hive_id"`
	Strength         *int      `json:"strength"`
	StrengthCategory *string   `gorm:"size:50" json:"strength_category"`
	Temperament      *string   `gorm:"size:50" json:"temperament"`
	SupersCount      *int      `json:"supers_count"`
	FramesCount      *int      `json:"frames_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (HiveColonyInfo) TableName() string { return "hive_colony_info" }

// HiveQueen describes the queen heading a hive.
// There is at most one row per hive.
type HiveQueen struct {
	ID                 int64      `gorm:"primaryKey" json:"id"`
	HiveID             int64      `gorm:"not null;uniqueIndex" json:"hive_id"`
	HasQueen           *bool      `json:"has_queen"`
	QueenStatus        *string    `gorm:"size:50" json:"queen_status"`
	QueenID            *string    `gorm:"column:queen_id;size:100" json:"queen_id"`
	QueenHatchedYear   *int       `json:"queen_hatched_year"`
	QueenInstalledDate *time.Time `json:"queen_installed_date"`
	QueenState         *string    `gorm:"size:50" json:"queen_state"`
	QueenRace          *string    `gorm:"size:50" json:"queen_race"`
	QueenClipped       *bool      `json:"queen_clipped"`
	QueenMarked        *bool      `json:"queen_marked"`
	QueenNote          *string    `gorm:"size:1000" json:"queen_note"`
	QueenOrigin        *string    `gorm:"size:100" json:"queen_origin"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (HiveQueen) TableName() string { return "hive_queens" }
