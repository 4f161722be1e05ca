package service

import (
	"github.com/phrazzld/apiary-api/internal/domain"
	"github.com/phrazzld/apiary-api/internal/store"
)

// section is a one-to-one inspection detail in a request body.
type section interface {
	// build returns the detail row for inspectionID and the columns
	// that were provided.
	build(inspectionID int64) (domain.InspectionDetail, []string)
}

// InspectionQueenParams holds queen observations.
type InspectionQueenParams struct {
	QueenSeen  *bool              `json:"queen_seen"`
	QueenCells *domain.QueenCells `json:"queen_cells" validate:"omitempty,oneof=NONE SWARM SUPERSEDURE EMERGENCY"`
	Swarmed    *bool              `json:"swarmed"`
}

func (p *InspectionQueenParams) build(inspectionID int64) (domain.InspectionDetail, []string) {
	f := store.Fields{}
	store.Set(f, "queen_seen", p.QueenSeen)
	store.Set(f, "queen_cells", p.QueenCells)
	store.Set(f, "swarmed", p.Swarmed)
	return &domain.InspectionQueen{
		InspectionID: inspectionID,
		QueenSeen:    p.QueenSeen,
		QueenCells:   p.QueenCells,
		Swarmed:      p.Swarmed,
	}, f.Columns()
}

// InspectionBroodParams holds brood observations.
type InspectionBroodParams struct {
	EggsPresent     *bool                 `json:"eggs_present"`
	CappedBrood     *bool                 `json:"capped_brood"`
	UncappedBrood   *bool                 `json:"uncapped_brood"`
	ExcessiveDrones *bool                 `json:"excessive_drones"`
	LayingPattern   *domain.LayingPattern `json:"laying_pattern"   validate:"omitempty,oneof=NONE NOT_UNIFORM MOSTLY_UNIFORM UNIFORM"`
	PopulationLevel *domain.Level         `json:"population_level" validate:"omitempty,oneof=LOW AVERAGE HIGH"`
}

func (p *InspectionBroodParams) build(inspectionID int64) (domain.InspectionDetail, []string) {
	f := store.Fields{}
	store.Set(f, "eggs_present", p.EggsPresent)
	store.Set(f, "capped_brood", p.CappedBrood)
	store.Set(f, "uncapped_brood", p.UncappedBrood)
	store.Set(f, "excessive_drones", p.ExcessiveDrones)
	store.Set(f, "laying_pattern", p.LayingPattern)
	store.Set(f, "population_level", p.PopulationLevel)
	return &domain.InspectionBrood{
		InspectionID:    inspectionID,
		EggsPresent:     p.EggsPresent,
		CappedBrood:     p.CappedBrood,
		UncappedBrood:   p.UncappedBrood,
		ExcessiveDrones: p.ExcessiveDrones,
		LayingPattern:   p.LayingPattern,
		PopulationLevel: p.PopulationLevel,
	}, f.Columns()
}

// InspectionConditionsParams holds the physical state of the hive.
type InspectionConditionsParams struct {
	EquipmentCondition *domain.EquipmentCondition `json:"equipment_condition" validate:"omitempty,oneof=DAMAGED FAIR GOOD"`
	Odor               *domain.Odor               `json:"odor"                validate:"omitempty,oneof=NORMAL FOUL SOUR"`
	BraceComb          *bool                      `json:"brace_comb"`
	ExcessivePropolis  *bool                      `json:"excessive_propolis"`
	DeadBees           *bool                      `json:"dead_bees"`
	Moisture           *bool                      `json:"moisture"`
	Mold               *bool                      `json:"mold"`
}

func (p *InspectionConditionsParams) build(inspectionID int64) (domain.InspectionDetail, []string) {
	f := store.Fields{}
	store.Set(f, "equipment_condition", p.EquipmentCondition)
	store.Set(f, "odor", p.Odor)
	store.Set(f, "brace_comb", p.BraceComb)
	store.Set(f, "excessive_propolis", p.ExcessivePropolis)
	store.Set(f, "dead_bees", p.DeadBees)
	store.Set(f, "moisture", p.Moisture)
	store.Set(f, "mold", p.Mold)
	return &domain.InspectionConditions{
		InspectionID:       inspectionID,
		EquipmentCondition: p.EquipmentCondition,
		Odor:               p.Odor,
		BraceComb:          p.BraceComb,
		ExcessivePropolis:  p.ExcessivePropolis,
		DeadBees:           p.DeadBees,
		Moisture:           p.Moisture,
		Mold:               p.Mold,
	}, f.Columns()
}

// InspectionFramesParams holds frame counts and stores.
type InspectionFramesParams struct {
	FramesBees       *int                `json:"frames_bees"       validate:"omitempty,min=0"`
	FramesBrood      *int                `json:"frames_brood"      validate:"omitempty,min=0"`
	FramesHoney      *int                `json:"frames_honey"      validate:"omitempty,min=0"`
	FramesPollen     *int                `json:"frames_pollen"     validate:"omitempty,min=0"`
	FramesFoundation *int                `json:"frames_foundation" validate:"omitempty,min=0"`
	HoneyStores      *domain.StoresLevel `json:"honey_stores"      validate:"omitempty,oneof=LOW AVERAGE HIGH ABUNDANT"`
	PollenStores     *domain.StoresLevel `json:"pollen_stores"     validate:"omitempty,oneof=LOW AVERAGE HIGH ABUNDANT"`
}

func (p *InspectionFramesParams) build(inspectionID int64) (domain.InspectionDetail, []string) {
	f := store.Fields{}
	store.Set(f, "frames_bees", p.FramesBees)
	store.Set(f, "frames_brood", p.FramesBrood)
	store.Set(f, "frames_honey", p.FramesHoney)
	store.Set(f, "frames_pollen", p.FramesPollen)
	store.Set(f, "frames_foundation", p.FramesFoundation)
	store.Set(f, "honey_stores", p.HoneyStores)
	store.Set(f, "pollen_stores", p.PollenStores)
	return &domain.InspectionFrames{
		InspectionID:     inspectionID,
		FramesBees:       p.FramesBees,
		FramesBrood:      p.FramesBrood,
		FramesHoney:      p.FramesHoney,
		FramesPollen:     p.FramesPollen,
		FramesFoundation: p.FramesFoundation,
		HoneyStores:      p.HoneyStores,
		PollenStores:     p.PollenStores,
	}, f.Columns()
}

// InspectionActivitiesParams holds entrance activity.
type InspectionActivitiesParams struct {
	BeeActivity        *domain.Level `json:"bee_activity"        validate:"omitempty,oneof=LOW AVERAGE HIGH"`
	OrientationFlights *domain.Level `json:"orientation_flights" validate:"omitempty,oneof=LOW AVERAGE HIGH"`
	PollenArriving     *domain.Level `json:"pollen_arriving"     validate:"omitempty,oneof=LOW AVERAGE HIGH"`
	ForagingBees       *domain.Level `json:"foraging_bees"       validate:"omitempty,oneof=LOW AVERAGE HIGH"`
	BeesPerMinute      *int          `json:"bees_per_minute"     validate:"omitempty,min=0"`
}

func (p *InspectionActivitiesParams) build(inspectionID int64) (domain.InspectionDetail, []string) {
	f := store.Fields{}
	store.Set(f, "bee_activity", p.BeeActivity)
	store.Set(f, "orientation_flights", p.OrientationFlights)
	store.Set(f, "pollen_arriving", p.PollenArriving)
	store.Set(f, "foraging_bees", p.ForagingBees)
	store.Set(f, "bees_per_minute", p.BeesPerMinute)
	return &domain.InspectionActivities{
		InspectionID:       inspectionID,
		BeeActivity:        p.BeeActivity,
		OrientationFlights: p.OrientationFlights,
		PollenArriving:     p.PollenArriving,
		ForagingBees:       p.ForagingBees,
		BeesPerMinute:      p.BeesPerMinute,
	}, f.Columns()
}

// InspectionProblemsParams holds diseases, pests and predation.
type InspectionProblemsParams struct {
	Diseases  *string `json:"diseases"  validate:"omitempty,max=200"`
	Pests     *string `json:"pests"     validate:"omitempty,max=200"`
	Predation *string `json:"predation" validate:"omitempty,max=200"`
}

func (p *InspectionProblemsParams) build(inspectionID int64) (domain.InspectionDetail, []string) {
	f := store.Fields{}
	store.Set(f, "diseases", p.Diseases)
	store.Set(f, "pests", p.Pests)
	store.Set(f, "predation", p.Predation)
	return &domain.InspectionProblems{
		InspectionID: inspectionID,
		Diseases:     p.Diseases,
		Pests:        p.Pests,
		Predation:    p.Predation,
	}, f.Columns()
}

// InspectionTreatmentsParams holds treatments applied during the visit.
type InspectionTreatmentsParams struct {
	Treatments      *string `json:"treatments"        validate:"omitempty,max=200"`
	VarroaDropCount *int    `json:"varroa_drop_count" validate:"omitempty,min=0"`
	ActionsTaken    *string `json:"actions_taken"     validate:"omitempty,max=200"`
}

func (p *InspectionTreatmentsParams) build(inspectionID int64) (domain.InspectionDetail, []string) {
	f := store.Fields{}
	store.Set(f, "treatments", p.Treatments)
	store.Set(f, "varroa_drop_count", p.VarroaDropCount)
	store.Set(f, "actions_taken", p.ActionsTaken)
	return &domain.InspectionTreatments{
		InspectionID:    inspectionID,
		Treatments:      p.Treatments,
		VarroaDropCount: p.VarroaDropCount,
		ActionsTaken:    p.ActionsTaken,
	}, f.Columns()
}
