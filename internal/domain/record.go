package domain

// HiveRecord is implemented by records that are logged against an apiary and
// one of its hives, and that can be fanned out to every hive of the apiary.
type HiveRecord interface {
	GetID() int64
	GetApiaryID() int64
	GetHiveID() *int64
	AssignHive(hiveID int64)
	AppliesToAllHives() bool
}
