package validators

import (
	"encoding/json"
	"errors"
	"maps"
	"strings"

	"github.com/MKhiriev/go-panel/internal/rules"
	"github.com/MKhiriev/go-panel/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEggID          = errors.New("invalid egg ID")
	ErrInvalidServerID       = errors.New("invalid server ID")
	ErrEmptyEnvironment      = errors.New("environment is required")
	ErrInvalidEnvironmentKey = errors.New("invalid environment variable key")
	ErrInvalidServerName     = errors.New("invalid server name")
	ErrInvalidEggName        = errors.New("invalid egg name")
	ErrInvalidVariableName   = errors.New("invalid variable name")
	ErrReservedEnvironment   = errors.New("environment variable key is reserved")
	ErrDuplicateEnvironment  = errors.New("environment variable key is declared twice")
	ErrInvalidVariableRules  = errors.New("invalid variable rules")

	// ErrDisplayValidation marks errors whose message is meant for the end
	// user as is. [*ValidationError] matches it.
	ErrDisplayValidation = errors.New("display validation error")
)

// NoticeKey is the payload key of the human readable notice.
const NoticeKey = "notice"

// ValidationError reports the first egg variable whose submitted value broke
// its rules. Its payload maps "notice" to a one-line summary naming the
// variable and every failing field to the engine's messages.
type ValidationError struct {
	// Variable is the name of the failing egg variable.
	Variable string
	payload  map[string][]string
}

func newValidationError(variable models.EggVariable, messages rules.MessageBag) *ValidationError {
	payload := map[string][]string{
		NoticeKey: {"There was a validation error with the " + variable.Name + " variable."},
	}
	maps.Copy(payload, messages)

	return &ValidationError{
		Variable: variable.Name,
		payload:  payload,
	}
}

// Payload returns a copy of the structured error messages.
func (e *ValidationError) Payload() map[string][]string {
	payload := make(map[string][]string, len(e.payload))
	for key, messages := range e.payload {
		payload[key] = append([]string(nil), messages...)
	}
	return payload
}

// Error returns the payload encoded as JSON.
func (e *ValidationError) Error() string {
	b, err := json.Marshal(e.payload)
	if err != nil {
		return strings.Join(e.payload[NoticeKey], " ")
	}
	return string(b)
}

func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.payload)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrDisplayValidation
}
