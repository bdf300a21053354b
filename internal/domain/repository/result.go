// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"campusradar/internal/errors"
)

// Sentinel reasons attached to degraded or empty results.
var (
	// ErrOffline is the reason recorded when the connectivity probe reports the remote store unreachable.
	ErrOffline = errors.New("remote store unreachable")
	// ErrRemoteUnavailable is returned by write paths that need the remote store while it is unreachable.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// Status classifies how a read was served.
type Status int

const (
	// StatusOK means the data came from the remote store.
	StatusOK Status = iota
	// StatusDegraded means the remote store was skipped or failed and the local snapshot was served.
	StatusDegraded
	// StatusEmpty means no source could serve the read; Data is the zero value.
	StatusEmpty
)

// String returns the lowercase name of the status, used in logs and metric labels.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusDegraded:
		return "degraded"
	case StatusEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Source identifies the store that produced a result.
type Source int

const (
	// SourceNone means neither store produced data.
	SourceNone Source = iota
	// SourceRemote is the remote document store.
	SourceRemote
	// SourceLocal is the local snapshot store.
	SourceLocal
)

// String returns the lowercase name of the source.
func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceLocal:
		return "local"
	default:
		return "none"
	}
}

// Result is the outcome of a tiered read. Tiered repositories never return Go errors for reads;
// failures are folded into Status and Reason so callers always get a usable (possibly empty) value.
type Result[T any] struct {
	Data   T
	Status Status
	Source Source
	// Reason is nil for StatusOK and explains why the remote data was not served otherwise.
	Reason error
}

// OK wraps data freshly read from the remote store.
func OK[T any](data T) Result[T] {
	return Result[T]{Data: data, Status: StatusOK, Source: SourceRemote}
}

// Degraded wraps data served from the local snapshot because of reason.
func Degraded[T any](data T, reason error) Result[T] {
	return Result[T]{Data: data, Status: StatusDegraded, Source: SourceLocal, Reason: reason}
}

// Empty is a result with no data from any source.
func Empty[T any](source Source, reason error) Result[T] {
	var zero T

	return Result[T]{Data: zero, Status: StatusEmpty, Source: source, Reason: reason}
}

// Stale reports whether the data is a local snapshot rather than a fresh remote read.
// This is the flag the UI shows as "offline, showing cached results".
func (r Result[T]) Stale() bool {
	return r.Status == StatusDegraded
}
