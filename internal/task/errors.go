package task

import "errors"

// Error variables for task operations.
var (
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrInvalidID        = errors.New("invalid task ID")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrMissingOperand   = errors.New("missing operand")
	ErrTaskNotFound     = errors.New("task not found")

	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrTasksFileEmpty     = errors.New("tasks_file cannot be empty")
)

// IsInvalidArgument reports whether err stems from malformed user input:
// a bad id, an empty description, an unknown status, or a missing operand.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidStatus) ||
		errors.Is(err, ErrMissingOperand)
}

// IsNotFound reports whether err means a referenced task does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTaskNotFound)
}

// IsValidation reports whether err is an expected, user-correctable failure.
// Anything else is unexpected and may carry a stack trace in debug mode.
func IsValidation(err error) bool {
	return IsInvalidArgument(err) || IsNotFound(err)
}
