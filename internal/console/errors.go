package console

import "fmt"

const (
	CodeValidation = "validation"
	CodeNotFound   = "not_found"
	CodeGeneration = "generation"
	CodeStorage    = "storage"
	CodeInternal   = "internal"
)

type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func statusForCode(code string) int {
	switch code {
	case CodeValidation:
		return 400
	case CodeNotFound:
		return 404
	case CodeGeneration, CodeStorage:
		return 502
	default:
		return 500
	}
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: statusForCode(code)}
}

func NewValidationError(message string) error {
	return newError(CodeValidation, message)
}

func NewNotFoundError(message string) error {
	return newError(CodeNotFound, message)
}

// NewGenerationError wraps a document build or serialization failure. The
// submission handler surfaces these as a single generic retry notice.
func NewGenerationError(err error) error {
	return newError(CodeGeneration, "blueprint generation failed: "+err.Error())
}

func NewStorageError(err error) error {
	return newError(CodeStorage, "storage failed: "+err.Error())
}

func NewInternalError(message string) error {
	return newError(CodeInternal, message)
}
