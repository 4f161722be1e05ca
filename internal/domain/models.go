package domain

// Models lists every persisted entity in dependency order.
// It is used by gorm's AutoMigrate in tests and local development.
func Models() []any {
	return []any{
		&Apiary{},
		&Hive{},
		&HiveColonyInfo{},
		&HiveQueen{},
		&Inspection{},
		&InspectionQueen{},
		&InspectionBrood{},
		&InspectionConditions{},
		&InspectionFrames{},
		&InspectionActivities{},
		&InspectionProblems{},
		&InspectionTreatments{},
		&Task{},
		&Feeding{},
		&Harvest{},
		&Treatment{},
	}
}
