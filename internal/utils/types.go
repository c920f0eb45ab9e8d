package util

import (
	"fmt"
)

// PageNumber identifies a virtual page in a reference trace
type PageNumber uint64

// Tick is the 0-based position of a reference in the trace
type Tick int

// NoTick marks metadata that has not been set yet
const NoTick Tick = -1

// DefaultIntervalSize is the number of references between two fault-rate samples
const DefaultIntervalSize = 2000

// ErrorType represents the kinds of simulation errors
type ErrorType int

const (
	ErrTypeConfiguration ErrorType = iota
	ErrTypeMetadataConsistency
	ErrTypeTraceIntegrity
	ErrTypeIO
)

func (t ErrorType) String() string {
	switch t {
	case ErrTypeConfiguration:
		return "configuration"
	case ErrTypeMetadataConsistency:
		return "metadata consistency"
	case ErrTypeTraceIntegrity:
		return "trace integrity"
	case ErrTypeIO:
		return "io"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// SimulationError represents a simulator-specific error
type SimulationError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *SimulationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pagesim %s error: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("pagesim %s error: %s", e.Type, e.Message)
}

func (e *SimulationError) Unwrap() error {
	return e.Cause
}

// NewSimulationError creates a new simulation error
func NewSimulationError(errType ErrorType, message string, cause error) *SimulationError {
	return &SimulationError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// With attaches a context value and returns the same error
func (e *SimulationError) With(key string, value interface{}) *SimulationError {
	e.Context[key] = value
	return e
}

// Options represents the engine configuration
type Options struct {
	FrameCapacity int
	IntervalSize  int
}

// DefaultOptions returns default engine options
func DefaultOptions() Options {
	return Options{
		FrameCapacity: 1,
		IntervalSize:  DefaultIntervalSize,
	}
}

// Validate reports a configuration error for unusable options
func (o Options) Validate() error {
	if o.FrameCapacity <= 0 {
		return NewSimulationError(ErrTypeConfiguration, fmt.Sprintf("frame capacity %d", o.FrameCapacity), ErrInvalidFrameCapacity)
	}
	if o.IntervalSize <= 0 {
		return NewSimulationError(ErrTypeConfiguration, fmt.Sprintf("interval size %d", o.IntervalSize), ErrInvalidIntervalSize)
	}
	return nil
}
