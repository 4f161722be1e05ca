package domain

import "strings"

// ApiaryType classifies how an apiary is operated.
type ApiaryType string

const (
	ApiaryTypeCommercial  ApiaryType = "COMMERCIAL"
	ApiaryTypeHobby       ApiaryType = "HOBBY"
	ApiaryTypeResearch    ApiaryType = "RESEARCH"
	ApiaryTypeEducational ApiaryType = "EDUCATIONAL"
	ApiaryTypeOther       ApiaryType = "OTHER"
)

// SunExposure describes how much sun an apiary site receives.
type SunExposure string

const (
	SunExposureFull         SunExposure = "FULL_SUN"
	SunExposurePartial      SunExposure = "PARTIAL_SUN"
	SunExposureShade        SunExposure = "SHADE"
	SunExposurePartialShade SunExposure = "PARTIAL_SHADE"
)

// HiveType is the construction style of a hive.
type HiveType string

const (
	HiveTypeLangstroth HiveType = "LANGSTROTH"
	HiveTypeTopBar     HiveType = "TOP_BAR"
	HiveTypeWarre      HiveType = "WARRE"
	HiveTypeFlow       HiveType = "FLOW"
	HiveTypeNational   HiveType = "NATIONAL"
	HiveTypeCommercial HiveType = "COMMERCIAL"
	HiveTypeOther      HiveType = "OTHER"
)

// HivePurpose is what a colony is kept for.
type HivePurpose string

const (
	HivePurposeHoneyProduction HivePurpose = "HONEY_PRODUCTION"
	HivePurposePollination     HivePurpose = "POLLINATION"
	HivePurposeQueenBreeding   HivePurpose = "QUEEN_BREEDING"
	HivePurposeNucProduction   HivePurpose = "NUC_PRODUCTION"
	HivePurposeResearch        HivePurpose = "RESEARCH"
	HivePurposeEducation       HivePurpose = "EDUCATION"
	HivePurposeConservation    HivePurpose = "CONSERVATION"
	HivePurposeOther           HivePurpose = "OTHER"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
	TaskStatusOverdue    TaskStatus = "OVERDUE"
)

// ParseTaskStatus converts a case-insensitive status name into a TaskStatus.
// The boolean result is false when the name is not a known status.
func ParseTaskStatus(name string) (TaskStatus, bool) {
	status := TaskStatus(strings.ToUpper(strings.TrimSpace(name)))
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted,
		TaskStatusCancelled, TaskStatusOverdue:
		return status, true
	}
	return "", false
}

// TaskPriority ranks tasks.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityNormal TaskPriority = "NORMAL"
	TaskPriorityHigh   TaskPriority = "HIGH"
	TaskPriorityUrgent TaskPriority = "URGENT"
)

// FeedingInputAs tells whether a feeding quantity is a total or per hive.
type FeedingInputAs string

const (
	FeedingInputTotal   FeedingInputAs = "Total"
	FeedingInputPerHive FeedingInputAs = "Per Hive"
)

// HarvestProduct is the kind of hive product harvested.
type HarvestProduct string

const (
	HarvestProductHoney      HarvestProduct = "HONEY"
	HarvestProductWax        HarvestProduct = "WAX"
	HarvestProductPropolis   HarvestProduct = "PROPOLIS"
	HarvestProductPollen     HarvestProduct = "POLLEN"
	HarvestProductRoyalJelly HarvestProduct = "ROYAL_JELLY"
	HarvestProductBeeBread   HarvestProduct = "BEE_BREAD"
	HarvestProductCombHoney  HarvestProduct = "COMB_HONEY"
	HarvestProductOther      HarvestProduct = "OTHER"
)

// HarvestUnit is the unit a harvest quantity is recorded in.
type HarvestUnit string

const (
	HarvestUnitKilogram HarvestUnit = "kg"
	HarvestUnitPound    HarvestUnit = "lb"
	HarvestUnitGram     HarvestUnit = "g"
	HarvestUnitOunce    HarvestUnit = "oz"
)

// StrengthCategory buckets the colony strength observed during an inspection.
type StrengthCategory string

const (
	StrengthVeryWeak   StrengthCategory = "VERY_WEAK"
	StrengthWeak       StrengthCategory = "WEAK"
	StrengthModerate   StrengthCategory = "MODERATE"
	StrengthStrong     StrengthCategory = "STRONG"
	StrengthVeryStrong StrengthCategory = "VERY_STRONG"
)

// Temperament describes colony behaviour while the hive is open.
type Temperament string

const (
	TemperamentCalm       Temperament = "CALM"
	TemperamentNormal     Temperament = "NORMAL"
	TemperamentNervous    Temperament = "NERVOUS"
	TemperamentAggressive Temperament = "AGGRESSIVE"
	TemperamentDefensive  Temperament = "DEFENSIVE"
)

// WeightUnit is the unit a hive weight is recorded in.
type WeightUnit string

const (
	WeightUnitKilogram WeightUnit = "kg"
	WeightUnitPound    WeightUnit = "lb"
)

// QueenCells records which kind of queen cells were seen.
type QueenCells string

const (
	QueenCellsNone        QueenCells = "NONE"
	QueenCellsSwarm       QueenCells = "SWARM"
	QueenCellsSupersedure QueenCells = "SUPERSEDURE"
	QueenCellsEmergency   QueenCells = "EMERGENCY"
)

// LayingPattern describes the queen's brood pattern.
type LayingPattern string

const (
	LayingPatternNone          LayingPattern = "NONE"
	LayingPatternNotUniform    LayingPattern = "NOT_UNIFORM"
	LayingPatternMostlyUniform LayingPattern = "MOSTLY_UNIFORM"
	LayingPatternUniform       LayingPattern = "UNIFORM"
)

// Level is a three-step LOW/AVERAGE/HIGH observation.
type Level string

const (
	LevelLow     Level = "LOW"
	LevelAverage Level = "AVERAGE"
	LevelHigh    Level = "HIGH"
)

// StoresLevel extends Level with ABUNDANT for honey and pollen stores.
type StoresLevel string

const (
	StoresLow      StoresLevel = "LOW"
	StoresAverage  StoresLevel = "AVERAGE"
	StoresHigh     StoresLevel = "HIGH"
	StoresAbundant StoresLevel = "ABUNDANT"
)

// EquipmentCondition is the state of the woodenware.
type EquipmentCondition string

const (
	EquipmentDamaged EquipmentCondition = "DAMAGED"
	EquipmentFair    EquipmentCondition = "FAIR"
	EquipmentGood    EquipmentCondition = "GOOD"
)

// Odor is the smell of the open hive.
type Odor string

const (
	OdorNormal Odor = "NORMAL"
	OdorFoul   Odor = "FOUL"
	OdorSour   Odor = "SOUR"
)
