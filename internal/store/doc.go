// Package store defines interfaces for task data access operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, allowing business rules to remain independent
// of how and where tasks are held.
package store
