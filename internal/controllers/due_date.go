package controllers

import (
	"context"
	"sync"

	"github.com/lunahealth/luna/internal/models"
	"github.com/lunahealth/luna/internal/services"
)

type dueDateService interface {
	CalculateDueDate(ctx context.Context, req models.DueDateRequest) (map[string]any, error)
}

// DueDateController backs the due-date screen: one date field, one
// call, the backend-defined result rendered as-is.
type DueDateController struct {
	service dueDateService

	mu           sync.Mutex
	submitting   bool
	result       map[string]any
	errorMessage string
}

func NewDueDateController(service dueDateService) *DueDateController {
	return &DueDateController{service: service}
}

func (controller *DueDateController) Calculate(ctx context.Context, lastPeriodDate string) error {
	request := models.DueDateRequest{LastPeriodDate: lastPeriodDate}
	if err := services.ValidateDueDateInput(request); err != nil {
		controller.setFailure(err.Error())
		return err
	}

	controller.mu.Lock()
	if controller.submitting {
		controller.mu.Unlock()
		return ErrRequestInFlight
	}
	controller.submitting = true
	controller.mu.Unlock()

	result, err := controller.service.CalculateDueDate(ctx, request)

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

func (controller *DueDateController) Result() map[string]any {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.result
}

func (controller *DueDateController) ErrorMessage() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.errorMessage
}

func (controller *DueDateController) InFlight() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.submitting
}

func (controller *DueDateController) setFailure(message string) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.result = nil
	controller.errorMessage = message
}
