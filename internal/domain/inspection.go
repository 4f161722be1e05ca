package domain

import "time"

// Inspection is a dated record of a hive's observed condition.
type Inspection struct {
	ID                int64             `gorm:"primaryKey" json:"id"`
	Name              *string           `gorm:"size:100" json:"name"`
	ApiaryID          int64             `gorm:"not null;index" json:"apiary_id"`
	Apiary            *Apiary           `gorm:"constraint:OnDelete:CASCADE" json:"apiary,omitempty"`
	HiveID            int64             `gorm:"not null;index" json:"hive_id"`
	Hive              *Hive             `gorm:"constraint:OnDelete:CASCADE" json:"hive,omitempty"`
	InspectionDate    time.Time         `gorm:"not null;index" json:"inspection_date"`
	InspectionTime    *string           `gorm:"size:50" json:"inspection_time"`
	Strength          *int              `json:"strength"`
	StrengthCategory  *StrengthCategory `gorm:"size:20" json:"strength_category"`
	Temperament       *Temperament      `gorm:"size:20" json:"temperament"`
	SupersCount       *int              `json:"supers_count"`
	FramesCount       *int              `json:"frames_count"`
	Notes             *string           `gorm:"size:500" json:"notes"`
	Weight            *float64          `json:"weight"`
	WeightUnit        *WeightUnit       `gorm:"size:5" json:"weight_unit"`
	IncludeWeather    *bool             `json:"include_weather"`
	WeatherConditions *string           `gorm:"size:200" json:"weather_conditions"`
	Temperature       *float64          `json:"temperature"`

	Queen      *InspectionQueen      `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"queen,omitempty"`
	Brood      *InspectionBrood      `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"brood,omitempty"`
	Conditions *InspectionConditions `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"conditions,omitempty"`
	Frames     *InspectionFrames     `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"frames,omitempty"`
	Activities *InspectionActivities `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
	Problems   *InspectionProblems   `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"problems,omitempty"`
	Treatments *InspectionTreatments `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"treatments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for gorm.
func (Inspection) TableName() string { return "inspections" }

// HasColonyObservation reports whether the inspection recorded any value
// that belongs in the hive's colony info.
func (i *Inspection) HasColonyObservation() bool {
	return i.Strength != nil || i.StrengthCategory != nil || i.Temperament != nil ||
		i.SupersCount != nil || i.FramesCount != nil
}

// InspectionDetail is implemented by the one-to-one sections of an inspection.
type InspectionDetail interface {
	TableName() string
	SetInspectionID(id int64)
}

// InspectionQueen records queen observations.
type InspectionQueen struct {
	ID           int64       `gorm:"primaryKey" json:"id"`
	InspectionID int64       `gorm:"not null;uniqueIndex" json:"inspection_id"`
	QueenSeen    *bool       `json:"queen_seen"`
	QueenCells   *QueenCells `gorm:"size:20" json:"queen_cells"`
	Swarmed      *bool       `json:"swarmed"`
}

func (InspectionQueen) TableName() string           { return "inspection_queens" }
func (d *InspectionQueen) SetInspectionID(id int64) { d.InspectionID = id }

// InspectionBrood records brood observations.
type InspectionBrood struct {
	ID              int64          `gorm:"primaryKey" json:"id"`
	InspectionID    int64          `gorm:"not null;uniqueIndex" json:"inspection_id"`
	EggsPresent     *bool          `json:"eggs_present"`
	CappedBrood     *bool          `json:"capped_brood"`
	UncappedBrood   *bool          `json:"uncapped_brood"`
	ExcessiveDrones *bool          `json:"excessive_drones"`
	LayingPattern   *LayingPattern `gorm:"size:20" json:"laying_pattern"`
	PopulationLevel *Level         `gorm:"size:10" json:"population_level"`
}

func (InspectionBrood) TableName() string           { return "inspection_broods" }
func (d *InspectionBrood) SetInspectionID(id int64) { d.InspectionID = id }

// InspectionConditions records the physical state of the hive.
type InspectionConditions struct {
	ID                 int64               `gorm:"primaryKey" json:"id"`
	InspectionID       int64               `gorm:"not null;uniqueIndex" json:"inspection_id"`
	EquipmentCondition *EquipmentCondition `gorm:"size:10" json:"equipment_condition"`
	Odor               *Odor               `gorm:"size:10" json:"odor"`
	BraceComb          *bool               `json:"brace_comb"`
	ExcessivePropolis  *bool               `json:"excessive_propolis"`
	DeadBees           *bool               `json:"dead_bees"`
	Moisture           *bool               `json:"moisture"`
	Mold               *bool               `json:"mold"`
}

func (InspectionConditions) TableName() string           { return "inspection_conditions" }
func (d *InspectionConditions) SetInspectionID(id int64) { d.InspectionID = id }

// InspectionFrames records frame counts and stores.
type InspectionFrames struct {
	ID               int64        `gorm:"primaryKey" json:"id"`
	InspectionID     int64        `gorm:"not null;uniqueIndex" json:"inspection_id"`
	FramesBees       *int         `json:"frames_bees"`
	FramesBrood      *int         `json:"frames_brood"`
	FramesHoney      *int         `json:"frames_honey"`
	FramesPollen     *int         `json:"frames_pollen"`
	FramesFoundation *int         `json:"frames_foundation"`
	HoneyStores      *StoresLevel `gorm:"size:10" json:"honey_stores"`
	PollenStores     *StoresLevel `gorm:"size:10" json:"pollen_stores"`
}

func (InspectionFrames) TableName() string           { return "inspection_frames" }
func (d *InspectionFrames) SetInspectionID(id int64) { d.InspectionID = id }

// InspectionActivities records entrance activity.
type InspectionActivities struct {
	ID                 int64  `gorm:"primaryKey" json:"id"`
	InspectionID       int64  `gorm:"not null;uniqueIndex" json:"inspection_id"`
	BeeActivity        *Level `gorm:"size:10" json:"bee_activity"`
	OrientationFlights *Level `gorm:"size:10" json:"orientation_flights"`
	PollenArriving     *Level `gorm:"size:10" json:"pollen_arriving"`
	ForagingBees       *Level `gorm:"size:10" json:"foraging_bees"`
	BeesPerMinute      *int   `json:"bees_per_minute"`
}

func (InspectionActivities) TableName() string           { return "inspection_activities" }
func (d *InspectionActivities) SetInspectionID(id int64) { d.InspectionID = id }

// InspectionProblems records diseases, pests and predation.
type InspectionProblems struct {
	ID           int64   `gorm:"primaryKey" json:"id"`
	InspectionID int64   `gorm:"not null;uniqueIndex" json:"inspection_id"`
	Diseases     *string `gorm:"size:200" json:"diseases"`
	Pests        *string `gorm:"size:200" json:"pests"`
	Predation    *string `gorm:"size:200" json:"predation"`
}

func (InspectionProblems) TableName() string           { return "inspection_problems" }
func (d *InspectionProblems) SetInspectionID(id int64) { d.InspectionID = id }

// InspectionTreatments records treatments applied during the visit.
type InspectionTreatments struct {
	ID              int64   `gorm:"primaryKey" json:"id"`
	InspectionID    int64   `gorm:"not null;uniqueIndex" json:"inspection_id"`
	Treatments      *string `gorm:"size:200" json:"treatments"`
	VarroaDropCount *int    `json:"varroa_drop_count"`
	ActionsTaken    *string `gorm:"size:200" json:"actions_taken"`
}

func (InspectionTreatments) TableName() string           { return "inspection_treatments" }
func (d *InspectionTreatments) SetInspectionID(id int64) { d.InspectionID = id }
