package util

import "errors"

var (
	ErrInvalidFrameCapacity = errors.New("frame capacity must be positive")
	ErrInvalidIntervalSize  = errors.New("interval size must be positive")
	ErrFrameTableFull       = errors.New("frame table is full")
	ErrPageNotResident      = errors.New("page is not resident")
	ErrPageAlreadyResident  = errors.New("page is already resident")
	ErrEmptyFrameTable      = errors.New("frame table is empty")
	ErrUnknownAlgorithm     = errors.New("unknown replacement algorithm")
	ErrUnknownField         = errors.New("unknown metadata field")
	ErrMalformedTrace       = errors.New("malformed trace entry")
	ErrNegativePage         = errors.New("negative page number")
	ErrEngineFinished       = errors.New("run already finished")
	ErrInvalidMapping       = errors.New("invalid file mapping")
	ErrMissingFuture        = errors.New("optimal replacement needs the trace future")
)
