package network

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrUnknownKind       = errors.New("unknown node kind")
	ErrDuplicateNode     = errors.New("duplicate node name")
	ErrDuplicateEdge     = errors.New("duplicate edge")
	ErrSelfLoop          = errors.New("self-loop edge")
	ErrUnknownEndpoint   = errors.New("edge endpoint is not a declared node")
	ErrNonPositiveWeight = errors.New("edge weight must be positive")
	ErrDisconnected      = errors.New("network is not connected")
	ErrNoDepot           = errors.New("network must declare exactly one depot")
	ErrNoCustomers       = errors.New("network must declare at least one customer")
	ErrNodeNotFound      = errors.New("node not found")
)

// BuildError provides structured error information for network construction
// failures. Construction is build-time validation of the definition table,
// so every BuildError is a defect in the shipped or supplied data.
type BuildError struct {
	Op      string // step that failed (e.g. "AddNode", "AddEdge", "Validate")
	Entity  string // offending entity (node name or "a - b" edge label)
	Cause   error  // underlying sentinel
	Context string // additional context
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Entity != "" {
		if e.Context != "" {
			return fmt.Sprintf("%s %s (%s): %v", e.Op, e.Entity, e.Context, e.Cause)
		}
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
	}
	if e.Context != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *BuildError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func buildErr(op, entity string, cause error) *BuildError {
	return &BuildError{Op: op, Entity: entity, Cause: cause}
}
