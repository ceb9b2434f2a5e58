package grads

import (
	"errors"

	"github.com/scigolib/grads/internal/core"
)

// Errors returned while parsing a descriptor.
var (
	ErrUnsupportedDimension = core.ErrUnsupportedDimension
	ErrMalformedDimension   = core.ErrMalformedDimension
	ErrMalformedTdef        = core.ErrMalformedTdef
	ErrUnsupportedStartTime = core.ErrUnsupportedStartTime
	ErrUnsupportedIncrement = core.ErrUnsupportedIncrement
	ErrMalformedVars        = core.ErrMalformedVars
	ErrMissingTdef          = core.ErrMissingTdef
	ErrMissingZdef          = core.ErrMissingZdef
	ErrLevelsExceedZdef     = core.ErrLevelsExceedZdef
	ErrUnexpectedEOF        = core.ErrUnexpectedEOF
)

// Errors returned while locating and reading records.
var (
	ErrShortRead             = core.ErrShortRead
	ErrRecordIndexOutOfRange = core.ErrRecordIndexOutOfRange
	ErrMissingValidTime      = core.ErrMissingValidTime
	ErrUnrecognizedFilename  = core.ErrUnrecognizedFilename

	ErrVarIndexOutOfRange   = errors.New("variable index out of range")
	ErrLevelIndexOutOfRange = errors.New("level index out of range")
	ErrMissingParameter     = errors.New("query has no parameter")
)
