package core

import "errors"

// Descriptor grammar errors. All of them abort parsing.
var (
	ErrUnsupportedDimension = errors.New("unsupported dimension type")
	ErrMalformedDimension   = errors.New("malformed dimension definition")
	ErrMalformedTdef        = errors.New("malformed tdef")
	ErrUnsupportedStartTime = errors.New("unsupported start time format")
	ErrUnsupportedIncrement = errors.New("unsupported time increment")
	ErrMalformedVars        = errors.New("malformed vars section")
	ErrMissingTdef          = errors.New("vars section requires a preceding tdef")
	ErrMissingZdef          = errors.New("multi-level variable requires a preceding zdef")
	ErrLevelsExceedZdef     = errors.New("variable declares more levels than zdef")
	ErrUnexpectedEOF        = errors.New("unexpected end of descriptor")
)

// Record access errors.
var (
	ErrShortRead             = errors.New("short read")
	ErrRecordIndexOutOfRange = errors.New("record index out of range")
	ErrMissingValidTime      = errors.New("record has no valid time")
	ErrUnrecognizedFilename  = errors.New("unrecognized descriptor file name")
)
