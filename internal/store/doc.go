// Package store declares the persistence contracts used by the services:
// a generic RecordStore for create, get, list, update and delete, one
// interface per entity with its list filter, and the errors every
// implementation returns.
//
// Stores are rebound to a transaction with WithTx. RunInTransaction groups
// several writes, such as a record written once per hive of an apiary, so
// they commit or roll back together.
package store
