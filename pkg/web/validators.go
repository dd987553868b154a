package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// ParamValidator is a function type that validates a parameter.
type ParamValidator func(valueToTest int64) bool

func newComparisonValidator(valueInClosure int64, compareFn func(argValue, closedValue int64) bool) ParamValidator {
	return func(argValue int64) bool {
		return compareFn(argValue, valueInClosure)
	}
}

// gte returns a ParamValidator that checks if the argument is greater than or equal to the value captured in the closure.
func gte(valToCompareAgainst int64) ParamValidator {
	return newComparisonValidator(valToCompareAgainst, func(argValue, closedValue int64) bool {
		return argValue >= closedValue
	})
}

// ParseOptionalGte parses an optional integer query parameter. A missing
// parameter yields fallback; a present but non-numeric or out-of-range value
// is a 400. Returns the value and a boolean indicating success.
func ParseOptionalGte(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, fallback, min int64) (int64, bool) {
	return parseOptional(r, w, logger, key, fallback, gte(min))
}

func parseOptional(r *http.Request, w http.ResponseWriter, logger *slog.Logger, key string, fallback int64, pValidator ParamValidator) (int64, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, true
	}
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil || !pValidator(intValue) {
		RespondError(w, logger, http.StatusBadRequest, fmt.Sprintf("Invalid %s number: %s", key, value))
		return 0, false
	}
	return intValue, true
}
