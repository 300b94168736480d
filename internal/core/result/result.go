// Package result defines the single outcome shape shared by every execution path
// and the error taxonomy used to classify failures.
package result

import "fmt"

// Status tags the variant carried by a Result.
type Status int

const (
	StatusOK Status = iota
	StatusClearScreen
	StatusExit
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusClearScreen:
		return "clear"
	case StatusExit:
		return "exit"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of one dispatch. Presentation layers branch on Status,
// never on the content of Output.
type Result struct {
	Status Status
	Output string
	// Warning is diagnostic text that accompanies a successful result, such as
	// stderr written by a process that still exited zero.
	Warning string
	Err     *Error
	// Translated holds the command line produced by the translator when the
	// input was resolved through natural-language translation.
	Translated string
}

// OK returns a successful result.
func OK(output string) Result {
	return Result{Status: StatusOK, Output: output}
}

// OKWithWarning returns a successful result carrying a non-fatal warning.
func OKWithWarning(output, warning string) Result {
	return Result{Status: StatusOK, Output: output, Warning: warning}
}

// ClearScreen asks the presentation layer to clear its display.
func ClearScreen() Result {
	return Result{Status: StatusClearScreen}
}

// Exit asks the presentation layer to end the session.
func Exit() Result {
	return Result{Status: StatusExit, Output: "Goodbye!"}
}

// Fail returns a failed result with the given code and message.
func Fail(code Code, format string, args ...any) Result {
	return Result{Status: StatusError, Err: Errorf(code, format, args...)}
}

// FromError converts err into a failed result. Errors that are not *Error are
// reported as GenericIO.
func FromError(err error) Result {
	return Result{Status: StatusError, Err: AsError(err)}
}

// Succeeded reports whether the result is anything other than a failure.
func (r Result) Succeeded() bool {
	return r.Status != StatusError
}

// ErrorMessage returns the failure message for failed results and the warning
// text for successful ones.
func (r Result) ErrorMessage() string {
	if r.Err != nil {
		return r.Err.Message
	}
	return r.Warning
}

// Code returns the error code, or CodeNone for successful results.
func (r Result) Code() Code {
	if r.Err == nil {
		return CodeNone
	}
	return r.Err.Code
}
