package services

import "errors"

var validationErrors = []error{
	ErrMissingLastPeriodDate,
	ErrInvalidLastPeriodDate,
	ErrInvalidCycleLength,
	ErrInvalidAge,
	ErrInvalidBMI,
	ErrInvalidStressLevel,
	ErrInvalidSleepHours,
	ErrInvalidPeriodLength,
	ErrInvalidExerciseFrequency,
	ErrInvalidDiet,
	ErrInvalidSymptom,
	ErrIncompleteIncidentReport,
	ErrNoAnalysisInput,
	ErrConflictingAnalysisInput,
}

// IsValidationError reports whether err is a local form-validation
// failure rather than a transport or service failure.
func IsValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
