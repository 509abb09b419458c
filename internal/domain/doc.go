// Package domain contains the core business entities and domain logic of
// the task manager: the Task record, its status enumeration, due-date
// rules, and the validation errors they produce. It is independent of any
// specific storage or delivery mechanism.
package domain
