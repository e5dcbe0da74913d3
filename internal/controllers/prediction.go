package controllers

import (
	"context"
	"sync"

	"github.com/lunahealth/luna/internal/models"
	"github.com/lunahealth/luna/internal/services"
)

// PredictionTarget picks which family of endpoints a controller talks
// to; the period and ovulation screens are otherwise identical.
type PredictionTarget string

const (
	TargetPeriod    PredictionTarget = "period"
	TargetOvulation PredictionTarget = "ovulation"
)

type predictionService interface {
	PredictPeriodSimple(ctx context.Context, req models.SimplePredictionRequest) (map[string]any, error)
	PredictPeriodAdvanced(ctx context.Context, req models.AdvancedPredictionRequest) (map[string]any, error)
	PredictOvulationSimple(ctx context.Context, req models.SimplePredictionRequest) (map[string]any, error)
	PredictOvulationAdvanced(ctx context.Context, req models.AdvancedPredictionRequest) (map[string]any, error)
}

// PredictionController backs the period and ovulation screens, each of
// which offers a simple and an advanced form.
type PredictionController struct {
	service predictionService
	target  PredictionTarget

	mu           sync.Mutex
	submitting   bool
	result       map[string]any
	errorMessage string
}

func NewPredictionController(service predictionService, target PredictionTarget) *PredictionController {
	return &PredictionController{service: service, target: target}
}

func (controller *PredictionController) PredictSimple(ctx context.Context, request models.SimplePredictionRequest) error {
	if err := services.ValidateSimplePredictionInput(request); err != nil {
		controller.setFailure(err.Error())
		return err
	}
	return controller.run(ctx, func(ctx context.Context) (map[string]any, error) {
		if controller.target == TargetOvulation {
			return controller.service.PredictOvulationSimple(ctx, request)
		}
		return controller.service.PredictPeriodSimple(ctx, request)
	})
}

func (controller *PredictionController) PredictAdvanced(ctx context.Context, request models.AdvancedPredictionRequest) error {
	if err := services.ValidateAdvancedPredictionInput(request); err != nil {
		controller.setFailure(err.Error())
		return err
	}
	return controller.run(ctx, func(ctx context.Context) (map[string]any, error) {
		if controller.target == TargetOvulation {
			return controller.service.PredictOvulationAdvanced(ctx, request)
		}
		return controller.service.PredictPeriodAdvanced(ctx, request)
	})
}

func (controller *PredictionController) run(ctx context.Context, call func(context.Context) (map[string]any, error)) error {
	controller.mu.Lock()
	if controller.submitting {
		controller.mu.Unlock()
		return ErrRequestInFlight
	}
	controller.submitting = true
	controller.mu.Unlock()

	result, err := call(ctx)

	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.submitting = false
	if err != nil {
		controller.result = nil
		controller.errorMessage = failureText(err)
		return err
	}
	controller.result = result
	controller.errorMessage = ""
	return nil
}

func (controller *PredictionController) Result() map[string]any {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.result
}

func (controller *PredictionController) ErrorMessage() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.errorMessage
}

func (controller *PredictionController) InFlight() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.submitting
}

func (controller *PredictionController) setFailure(message string) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.result = nil
	controller.errorMessage = message
}
