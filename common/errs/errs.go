package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound = ErrorKind("Not Found")

	// InvalidArgument is returned when an argument is invalid.
	InvalidArgument = ErrorKind("Invalid Argument")

	// Unsupported is returned when a feature or backend is not supported by the current configuration.
	Unsupported = ErrorKind("Unsupported")

	// ConflictSetting is returned when the persisted state was created with a different setting.
	ConflictSetting = ErrorKind("Conflict Setting")

	// InternalError is returned when an unexpected state is reached.
	InternalError = ErrorKind("Internal Error")

	// Timeout is returned when an operation did not finish in time.
	Timeout = ErrorKind("Timeout")

	// SomethingWentWrong is a generic error for failures that should never surface to clients.
	SomethingWentWrong = ErrorKind("Something Went Wrong")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
