// Package memory provides in-memory implementations for the data storage
// interfaces defined in the internal/store package. All state lives in
// process memory behind a mutex and is lost when the process exits.
package memory
