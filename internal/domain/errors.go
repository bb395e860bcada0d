package domain

import "errors"

// Error kinds surfaced to the orchestrator's caller. Tier-internal failures
// are recovered locally and converted to tier misses; only these propagate.
var (
	// ErrNoMatch is the pipeline-wide miss: no tier produced a qualifying
	// candidate and no collaborator answer was available.
	ErrNoMatch = errors.New("no matching command")

	// ErrInvalidInput covers empty/over-long phrases and out-of-range
	// confidence values on custom adds.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownCustomCommand is returned when removing or overwriting a
	// custom entry that does not exist.
	ErrUnknownCustomCommand = errors.New("unknown custom command")

	// ErrCollaboratorTimeout means the external translation call exceeded the
	// caller-supplied timeout. No retry is attempted.
	ErrCollaboratorTimeout = errors.New("translation collaborator timed out")

	// ErrCollaboratorMalformed means the collaborator responded with content
	// that cannot be parsed into a TranslationResult.
	ErrCollaboratorMalformed = errors.New("translation collaborator returned malformed response")

	// ErrCollaboratorUnavailable means no credential or endpoint is
	// configured for the external collaborator.
	ErrCollaboratorUnavailable = errors.New("translation collaborator unavailable")
)
