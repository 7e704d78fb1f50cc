package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InvalidScannerOutput indicates the scanner output is not a record collection at all
	InvalidScannerOutput ErrorCode = "INVALID_SCANNER_OUTPUT"
	// MalformedInput indicates a scanner record with missing or mistyped fields
	MalformedInput ErrorCode = "MALFORMED_INPUT"
	// UnresolvedSeed indicates the resolver chain found no matching node
	UnresolvedSeed ErrorCode = "UNRESOLVED_SEED"
	// UnknownNode indicates a traversal seed absent from the adjacency map
	UnknownNode ErrorCode = "UNKNOWN_NODE"
	// GraphTooLarge indicates the aggregation builder hit its node cap
	GraphTooLarge ErrorCode = "GRAPH_TOO_LARGE"
	// ConfigInvalid indicates a configuration value out of range
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// FixActionType represents the type of fix action
type FixActionType string

const (
	// RunCommand suggests running a command
	RunCommand FixActionType = "run-command"
	// OpenDocs suggests opening documentation
	OpenDocs FixActionType = "open-docs"
)

// FixAction represents a suggested fix for an error
type FixAction struct {
	Type        FixActionType `json:"type"`
	Command     string        `json:"command,omitempty"`
	Safe        bool          `json:"safe,omitempty"`
	Description string        `json:"description,omitempty"`
	URL         string        `json:"url,omitempty"`
}

// DepError is an error with a stable code, message and suggestions
type DepError struct {
	Code           ErrorCode   `json:"code"`
	Message        string      `json:"message"`
	Details        interface{} `json:"details,omitempty"`
	SuggestedFixes []FixAction `json:"suggestedFixes,omitempty"`
	cause          error       // Underlying error (not exported to JSON)
}

// New creates a DepError with the default suggested fixes for its code.
func New(code ErrorCode, message string, cause error) *DepError {
	return &DepError{
		Code:           code,
		Message:        message,
		cause:          cause,
		SuggestedFixes: GetSuggestedFixes(code),
	}
}

// Newf creates a DepError with a formatted message and no cause.
func Newf(code ErrorCode, format string, args ...interface{}) *DepError {
	return New(code, fmt.Sprintf(format, args...), nil)
}

// Error implements the error interface
func (e *DepError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DepError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *DepError) WithDetails(details interface{}) *DepError {
	e.Details = details
	return e
}

// CodeOf returns the code of the first DepError in err's chain, or "" if none.
func CodeOf(err error) ErrorCode {
	var de *DepError
	if stderrors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// ErrorActions maps error codes to suggested fix actions
var ErrorActions = map[ErrorCode][]FixAction{
	InvalidScannerOutput: {
		{
			Type:        RunCommand,
			Command:     "depcruise --output-type json --output-to .depscope/dependencies.json src",
			Safe:        true,
			Description: "Regenerate the scanner output as a JSON module list",
		},
	},
	MalformedInput: {
		{
			Type:        RunCommand,
			Command:     "depcruise --output-type json --output-to .depscope/dependencies.json src",
			Safe:        true,
			Description: "Regenerate the scanner output; skipped records had no source or resolved path",
		},
	},
	UnknownNode: {
		{
			Type:        RunCommand,
			Command:     "depcruise --output-type json --output-to .depscope/dependencies.json src",
			Safe:        true,
			Description: "Rescan so files added since the last scan become graph nodes",
		},
	},
	UnresolvedSeed: {
		{
			Type:        RunCommand,
			Command:     "depscope resolve --topic ${input}",
			Safe:        true,
			Description: "Retry the lookup as a free-text topic",
		},
		{
			Type:        RunCommand,
			Command:     "depscope graph --full --nodes --format human",
			Safe:        true,
			Description: "List the known node ids",
		},
	},
	GraphTooLarge: {
		{
			Type:        RunCommand,
			Command:     "depscope graph --full",
			Safe:        true,
			Description: "Build the full-fidelity graph instead of the capped rendering graph",
		},
	},
	ConfigInvalid: {
		{
			Type:        OpenDocs,
			Description: "Check .depscope/config.json",
		},
	},
}

// GetSuggestedFixes returns suggested fixes for an error code
func GetSuggestedFixes(code ErrorCode) []FixAction {
	if fixes, ok := ErrorActions[code]; ok {
		return fixes
	}
	return nil
}
