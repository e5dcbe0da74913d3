package services

import (
	"errors"
	"testing"

	"github.com/lunahealth/luna/internal/models"
)

func validAdvancedInput() models.AdvancedPredictionRequest {
	return models.AdvancedPredictionRequest{
		LastPeriodDate:    "2025-06-01",
		Age:               29,
		BMI:               22.5,
		StressLevel:       4,
		SleepHours:        7.5,
		PeriodLength:      5,
		ExerciseFrequency: models.ExerciseModerate,
		Diet:              models.DietBalanced,
		Symptoms:          models.SymptomFatigue,
	}
}

func TestValidateDueDateInput(t *testing.T) {
	if err := ValidateDueDateInput(models.DueDateRequest{LastPeriodDate: "2025-06-01"}); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
	if err := ValidateDueDateInput(models.DueDateRequest{}); !errors.Is(err, ErrMissingLastPeriodDate) {
		t.Fatalf("expected missing date error, got %v", err)
	}
	if err := ValidateDueDateInput(models.DueDateRequest{LastPeriodDate: "01/06/2025"}); !errors.Is(err, ErrInvalidLastPeriodDate) {
		t.Fatalf("expected invalid date error, got %v", err)
	}
}

func TestValidateSimplePredictionInput(t *testing.T) {
	valid := models.SimplePredictionRequest{LastPeriodDate: "2025-06-01", CycleLength: 28}
	if err := ValidateSimplePredictionInput(valid); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	noCycle := models.SimplePredictionRequest{LastPeriodDate: "2025-06-01"}
	if err := ValidateSimplePredictionInput(noCycle); !errors.Is(err, ErrInvalidCycleLength) {
		t.Fatalf("expected cycle length error, got %v", err)
	}
}

func TestValidateAdvancedPredictionInput(t *testing.T) {
	if err := ValidateAdvancedPredictionInput(validAdvancedInput()); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	cases := []struct {
		name     string
		mutate   func(*models.AdvancedPredictionRequest)
		expected error
	}{
		{"zero age", func(r *models.AdvancedPredictionRequest) { r.Age = 0 }, ErrInvalidAge},
		{"zero bmi", func(r *models.AdvancedPredictionRequest) { r.BMI = 0 }, ErrInvalidBMI},
		{"stress too high", func(r *models.AdvancedPredictionRequest) { r.StressLevel = 11 }, ErrInvalidStressLevel},
		{"stress too low", func(r *models.AdvancedPredictionRequest) { r.StressLevel = 0 }, ErrInvalidStressLevel},
		{"sleep out of range", func(r *models.AdvancedPredictionRequest) { r.SleepHours = 25 }, ErrInvalidSleepHours},
		{"zero period length", func(r *models.AdvancedPredictionRequest) { r.PeriodLength = 0 }, ErrInvalidPeriodLength},
		{"bad exercise", func(r *models.AdvancedPredictionRequest) { r.ExerciseFrequency = "Daily" }, ErrInvalidExerciseFrequency},
		{"bad diet", func(r *models.AdvancedPredictionRequest) { r.Diet = "Keto" }, ErrInvalidDiet},
		{"bad symptom", func(r *models.AdvancedPredictionRequest) { r.Symptoms = "Nausea" }, ErrInvalidSymptom},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			input := validAdvancedInput()
			testCase.mutate(&input)
			if err := ValidateAdvancedPredictionInput(input); !errors.Is(err, testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, err)
			}
		})
	}
}

func TestEnumMembership(t *testing.T) {
	for _, value := range []string{models.ExerciseLow, models.ExerciseModerate, models.ExerciseHigh} {
		if !IsValidExerciseFrequency(value) {
			t.Fatalf("expected %q to be a valid exercise frequency", value)
		}
	}
	for _, value := range []string{models.DietBalanced, models.DietVegetarian, models.DietHighSugar, models.DietLowCarb} {
		if !IsValidDiet(value) {
			t.Fatalf("expected %q to be a valid diet", value)
		}
	}
	for _, value := range []string{
		models.SymptomCramps, models.SymptomMoodSwings, models.SymptomFatigue,
		models.SymptomHeadache, models.SymptomBloating,
	} {
		if !IsValidSymptom(value) {
			t.Fatalf("expected %q to be a valid symptom", value)
		}
	}
	if IsValidDiet("balanced") {
		t.Fatalf("enum values are case sensitive")
	}
}
