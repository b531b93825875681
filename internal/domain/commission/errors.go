package commission

import (
	"errors"
	"fmt"
)

// Input errors. Callers compare with errors.Is.
var (
	ErrInvalidPrice            = errors.New("property price must be a valid positive number")
	ErrNoLeadGeneratorSelected = errors.New("at least one lead generator must be selected")
	ErrRoleNotSelected         = errors.New("both telemarketing and conversion roles must be selected")
	ErrSelectionLimitExceeded  = errors.New("lead generator selection limit reached")
	ErrDuplicateLeadGenerator  = errors.New("lead generator selected more than once")
	ErrParticipantNotFound     = errors.New("participant not found in roster")
)

// Configuration errors raised while building a roster or rate table.
var (
	ErrInvalidEntry   = errors.New("invalid roster entry")
	ErrDuplicateEntry = errors.New("duplicate roster entry")
	ErrInvalidRates   = errors.New("invalid commission rate table")
)

// ParticipantNotFoundError identifies the name (or identifier) that failed to resolve.
type ParticipantNotFoundError struct {
	Name string
}

func (e *ParticipantNotFoundError) Error() string {
	return fmt.Sprintf("participant %q not found in roster", e.Name)
}

// Is lets errors.Is(err, ErrParticipantNotFound) match.
func (e *ParticipantNotFoundError) Is(target error) bool {
	return target == ErrParticipantNotFound
}

// Stable error codes surfaced to API clients.
const (
	CodeInvalidPrice            = "invalid_price"
	CodeNoLeadGeneratorSelected = "no_lead_generator_selected"
	CodeRoleNotSelected         = "role_not_selected"
	CodeSelectionLimitExceeded  = "selection_limit_exceeded"
	CodeDuplicateLeadGenerator  = "duplicate_lead_generator"
	CodeParticipantNotFound     = "participant_not_found"
)

// Code maps an input error to its stable code. It returns "" for errors
// outside the input taxonomy.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrInvalidPrice):
		return CodeInvalidPrice
	case errors.Is(err, ErrNoLeadGeneratorSelected):
		return CodeNoLeadGeneratorSelected
	case errors.Is(err, ErrRoleNotSelected):
		return CodeRoleNotSelected
	case errors.Is(err, ErrSelectionLimitExceeded):
		return CodeSelectionLimitExceeded
	case errors.Is(err, ErrDuplicateLeadGenerator):
		return CodeDuplicateLeadGenerator
	case errors.Is(err, ErrParticipantNotFound):
		return CodeParticipantNotFound
	default:
		return ""
	}
}

// IsInputError reports whether err belongs to the input taxonomy, i.e. it
// should be shown to the user rather than treated as an internal failure.
func IsInputError(err error) bool {
	return Code(err) != ""
}
