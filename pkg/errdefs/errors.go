package errdefs

import "fmt"

// ToolError indicates an internal error in the tools themselves, such as a
// helper invoked with arguments that violate its contract. These are
// programming errors, not something the user can fix by changing input.
type ToolError struct {
	// Msg describes what went wrong.
	Msg string
	// Reason is the underlying error, if any.
	Reason error
}

// NewToolError creates a ToolError with a formatted message.
func NewToolError(format string, args ...interface{}) *ToolError {
	return &ToolError{Msg: fmt.Sprintf(format, args...)}
}

// Error returns the error message.
func (e *ToolError) Error() string {
	if e.Reason != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Reason)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to match any ToolError.
func (e *ToolError) Is(target error) bool {
	_, ok := target.(*ToolError)
	return ok
}

// UserError indicates a problem the user can act on, such as a missing
// input file or a nonexistent output directory. It always carries the name
// of the invoking tool for attribution.
type UserError struct {
	// Tool is the name of the tool that raised the error.
	Tool string
	// Msg describes the problem and, where possible, the remedy.
	Msg string
}

// NewUserError creates a UserError for the named tool with a formatted message.
func NewUserError(tool, format string, args ...interface{}) *UserError {
	return &UserError{Tool: tool, Msg: fmt.Sprintf(format, args...)}
}

// Error returns the message prefixed with the tool name.
func (e *UserError) Error() string {
	if e.Tool == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Tool, e.Msg)
}

// Is allows errors.Is() to match any UserError.
func (e *UserError) Is(target error) bool {
	_, ok := target.(*UserError)
	return ok
}
