package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Harvest attempt errors
	ErrMsgToolWornOut        = "tool is worn out"
	ErrMsgBadHarvestTarget   = "cannot harvest that"
	ErrMsgNoDefinition       = "no harvest definition for tile"
	ErrMsgOutOfRange         = "harvest target is out of range"
	ErrMsgNoResources        = "no resources left here"
	ErrMsgHarvestInProgress  = "already harvesting"
	ErrMsgHarvestFailed      = "harvest attempt failed"
	ErrMsgAttemptAlreadyDone = "harvest attempt already finished"

	// Configuration errors
	ErrMsgInvalidDefinition = "invalid harvest definition"
	ErrMsgVeinCycle         = "vein fallback chain contains a cycle"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Harvest attempt errors
	ErrToolWornOut        = errors.New(ErrMsgToolWornOut)
	ErrBadHarvestTarget   = errors.New(ErrMsgBadHarvestTarget)
	ErrNoDefinition       = errors.New(ErrMsgNoDefinition)
	ErrOutOfRange         = errors.New(ErrMsgOutOfRange)
	ErrNoResources        = errors.New(ErrMsgNoResources)
	ErrHarvestInProgress  = errors.New(ErrMsgHarvestInProgress)
	ErrHarvestFailed      = errors.New(ErrMsgHarvestFailed)
	ErrAttemptAlreadyDone = errors.New(ErrMsgAttemptAlreadyDone)

	// Configuration errors
	ErrInvalidDefinition = errors.New(ErrMsgInvalidDefinition)
	ErrVeinCycle         = errors.New(ErrMsgVeinCycle)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
