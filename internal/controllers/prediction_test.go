package controllers

import (
	"context"
	"errors"
	"testing"

	"github.com/lunahealth/luna/internal/models"
	"github.com/lunahealth/luna/internal/remote"
	"github.com/lunahealth/luna/internal/services"
)

type fakePredictionService struct {
	lastCall string
	payload  map[string]any
	err      error
}

func (f *fakePredictionService) answer(name string) (map[string]any, error) {
	f.lastCall = name
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func (f *fakePredictionService) PredictPeriodSimple(context.Context, models.SimplePredictionRequest) (map[string]any, error) {
	return f.answer("period-simple")
}

func (f *fakePredictionService) PredictPeriodAdvanced(context.Context, models.AdvancedPredictionRequest) (map[string]any, error) {
	return f.answer("period-advanced")
}

func (f *fakePredictionService) PredictOvulationSimple(context.Context, models.SimplePredictionRequest) (map[string]any, error) {
	return f.answer("ovulation-simple")
}

func (f *fakePredictionService) PredictOvulationAdvanced(context.Context, models.AdvancedPredictionRequest) (map[string]any, error) {
	return f.answer("ovulation-advanced")
}

func simpleRequest() models.SimplePredictionRequest {
	return models.SimplePredictionRequest{LastPeriodDate: "2025-06-01", CycleLength: 28}
}

func advancedRequest() models.AdvancedPredictionRequest {
	return models.AdvancedPredictionRequest{
		LastPeriodDate:    "2025-06-01",
		Age:               29,
		BMI:               22.5,
		StressLevel:       4,
		SleepHours:        7.5,
		PeriodLength:      5,
		ExerciseFrequency: models.ExerciseModerate,
		Diet:              models.DietBalanced,
		Symptoms:          models.SymptomCramps,
	}
}

func TestPredictionTargetRouting(t *testing.T) {
	cases := []struct {
		name     string
		target   PredictionTarget
		advanced bool
		expected string
	}{
		{"period simple", TargetPeriod, false, "period-simple"},
		{"period advanced", TargetPeriod, true, "period-advanced"},
		{"ovulation simple", TargetOvulation, false, "ovulation-simple"},
		{"ovulation advanced", TargetOvulation, true, "ovulation-advanced"},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			service := &fakePredictionService{payload: map[string]any{"next_period": "2025-06-29"}}
			controller := NewPredictionController(service, testCase.target)

			var err error
			if testCase.advanced {
				err = controller.PredictAdvanced(context.Background(), advancedRequest())
			} else {
				err = controller.PredictSimple(context.Background(), simpleRequest())
			}
			if err != nil {
				t.Fatalf("predict: %v", err)
			}
			if service.lastCall != testCase.expected {
				t.Fatalf("expected %s call, got %s", testCase.expected, service.lastCall)
			}
			if controller.Result()["next_period"] != "2025-06-29" {
				t.Fatalf("unexpected result: %v", controller.Result())
			}
		})
	}
}

func TestPredictionValidationShortCircuits(t *testing.T) {
	service := &fakePredictionService{payload: map[string]any{}}
	controller := NewPredictionController(service, TargetPeriod)

	err := controller.PredictSimple(context.Background(), models.SimplePredictionRequest{LastPeriodDate: "2025-06-01"})
	if !errors.Is(err, services.ErrInvalidCycleLength) {
		t.Fatalf("expected cycle length error, got %v", err)
	}
	if service.lastCall != "" {
		t.Fatalf("expected no outbound call on validation failure")
	}
	if controller.ErrorMessage() == "" {
		t.Fatalf("expected an error message for the screen")
	}
}

func TestPredictionFailureClearsResult(t *testing.T) {
	service := &fakePredictionService{payload: map[string]any{"next_period": "2025-06-29"}}
	controller := NewPredictionController(service, TargetOvulation)

	if err := controller.PredictSimple(context.Background(), simpleRequest()); err != nil {
		t.Fatalf("predict: %v", err)
	}

	service.err = &remote.ConnectError{Err: errors.New("refused")}
	if err := controller.PredictSimple(context.Background(), simpleRequest()); err == nil {
		t.Fatalf("expected failure")
	}
	if controller.Result() != nil {
		t.Fatalf("expected result cleared on failure")
	}
	if controller.ErrorMessage() != CouldNotConnectMessage {
		t.Fatalf("unexpected error message: %q", controller.ErrorMessage())
	}
}
