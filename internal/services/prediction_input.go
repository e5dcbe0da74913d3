package services

import (
	"errors"
	"time"

	"github.com/lunahealth/luna/internal/models"
)

const (
	MinStressLevel = 1
	MaxStressLevel = 10
	MaxSleepHours  = 24
)

var (
	ErrMissingLastPeriodDate    = errors.New("last period date is required")
	ErrInvalidLastPeriodDate    = errors.New("last period date must be a valid YYYY-MM-DD date")
	ErrInvalidCycleLength       = errors.New("cycle length must be a positive number of days")
	ErrInvalidAge               = errors.New("age must be a positive number")
	ErrInvalidBMI               = errors.New("BMI must be a positive number")
	ErrInvalidStressLevel       = errors.New("stress level must be between 1 and 10")
	ErrInvalidSleepHours        = errors.New("sleep hours must be between 0 and 24")
	ErrInvalidPeriodLength      = errors.New("period length must be a positive number of days")
	ErrInvalidExerciseFrequency = errors.New("invalid exercise frequency")
	ErrInvalidDiet              = errors.New("invalid diet")
	ErrInvalidSymptom           = errors.New("invalid symptom")
)

func ValidateDueDateInput(input models.DueDateRequest) error {
	return validateWireDate(input.LastPeriodDate)
}

func ValidateSimplePredictionInput(input models.SimplePredictionRequest) error {
	if err := validateWireDate(input.LastPeriodDate); err != nil {
		return err
	}
	if input.CycleLength <= 0 {
		return ErrInvalidCycleLength
	}
	return nil
}

func ValidateAdvancedPredictionInput(input models.AdvancedPredictionRequest) error {
	if err := validateWireDate(input.LastPeriodDate); err != nil {
		return err
	}
	if input.Age <= 0 {
		return ErrInvalidAge
	}
	if input.BMI <= 0 {
		return ErrInvalidBMI
	}
	if input.StressLevel < MinStressLevel || input.StressLevel > MaxStressLevel {
		return ErrInvalidStressLevel
	}
	if input.SleepHours < 0 || input.SleepHours > MaxSleepHours {
		return ErrInvalidSleepHours
	}
	if input.PeriodLength <= 0 {
		return ErrInvalidPeriodLength
	}
	if !IsValidExerciseFrequency(input.ExerciseFrequency) {
		return ErrInvalidExerciseFrequency
	}
	if !IsValidDiet(input.Diet) {
		return ErrInvalidDiet
	}
	if !IsValidSymptom(input.Symptoms) {
		return ErrInvalidSymptom
	}
	return nil
}

func IsValidExerciseFrequency(value string) bool {
	switch value {
	case models.ExerciseLow, models.ExerciseModerate, models.ExerciseHigh:
		return true
	default:
		return false
	}
}

func IsValidDiet(value string) bool {
	switch value {
	case models.DietBalanced, models.DietVegetarian, models.DietHighSugar, models.DietLowCarb:
		return true
	default:
		return false
	}
}

func IsValidSymptom(value string) bool {
	switch value {
	case models.SymptomCramps, models.SymptomMoodSwings, models.SymptomFatigue,
		models.SymptomHeadache, models.SymptomBloating:
		return true
	default:
		return false
	}
}

func validateWireDate(value string) error {
	if value == "" {
		return ErrMissingLastPeriodDate
	}
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		return ErrInvalidLastPeriodDate
	}
	return nil
}
