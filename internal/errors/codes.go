package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                     Code = "OK"
	CodeCanceled               Code = "CANCELED"
	CodeInvalidArgument        Code = "INVALID_ARGUMENT"
	CodeConfiguration          Code = "CONFIGURATION"
	CodeNotFound               Code = "NOT_FOUND"
	CodePlacementUnsatisfiable Code = "PLACEMENT_UNSATISFIABLE"
	CodeModuleFailure          Code = "MODULE_FAILURE"
	CodeConcurrentRun          Code = "CONCURRENT_RUN"
	CodeInternal               Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Fatal reports whether an error with this code aborts a generation run.
// Placement failures are tolerated up to a configured threshold; everything
// else short-circuits the pipeline.
func (c Code) Fatal() bool {
	switch c {
	case CodeOK, CodePlacementUnsatisfiable:
		return false
	default:
		return true
	}
}
