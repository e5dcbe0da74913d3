package controllers

import (
	"context"
	"sync"

	"github.com/lunahealth/luna/internal/models"
	"github.com/lunahealth/luna/internal/services"
)

type foodAnalyzer interface {
	AnalyzeFood(ctx context.Context, input models.FoodAnalysisInput) (*models.AnalysisEnvelope, error)
}

// FoodAnalysisController drives the food-nutrition screen:
// idle -> submitting -> success | error, with a reset back to idle.
// It owns the transient image preview and guarantees the previous
// handle is released whenever a new file is chosen, the image is
// cleared, or the whole form is reset.
type FoodAnalysisController struct {
	analyzer foodAnalyzer

	mu           sync.Mutex
	state        State
	input        models.FoodAnalysisInput
	preview      *Preview
	result       *models.FoodReport
	errorMessage string
}

func NewFoodAnalysisController(analyzer foodAnalyzer) *FoodAnalysisController {
	return &FoodAnalysisController{analyzer: analyzer, state: StateIdle}
}

// SelectImage stores a newly chosen file as the pending input. Image
// mode and name mode are mutually exclusive, so any typed name or
// description is dropped.
func (controller *FoodAnalysisController) SelectImage(name, contentType string, data []byte) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	controller.releasePreviewLocked()
	controller.input = models.FoodAnalysisInput{
		ImageName: name,
		ImageType: contentType,
		ImageData: data,
	}
	controller.preview = newPreview()
}

// SetFoodDetails switches to name/description mode, discarding any
// selected image along with its preview.
func (controller *FoodAnalysisController) SetFoodDetails(foodName, description string) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	controller.releasePreviewLocked()
	controller.input = models.FoodAnalysisInput{
		FoodName:    foodName,
		Description: description,
	}
}

// ClearImage drops the selected file without touching the rest of the
// form.
func (controller *FoodAnalysisController) ClearImage() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	controller.releasePreviewLocked()
	controller.input.ImageName = ""
	controller.input.ImageType = ""
	controller.input.ImageData = nil
}

// Analyze submits the pending input. While the call is outstanding the
// screen is in StateSubmitting and further submits are rejected.
func (controller *FoodAnalysisController) Analyze(ctx context.Context) error {
	controller.mu.Lock()
	if controller.state == StateSubmitting {
		controller.mu.Unlock()
		return ErrRequestInFlight
	}
	input := controller.input
	if err := services.ValidateFoodAnalysisInput(input); err != nil {
		controller.state = StateError
		controller.errorMessage = err.Error()
		controller.result = nil
		controller.mu.Unlock()
		return err
	}
	controller.state = StateSubmitting
	controller.mu.Unlock()

	envelope, err := controller.analyzer.AnalyzeFood(ctx, input)

	controller.mu.Lock()
	defer controller.mu.Unlock()
	if err != nil {
		controller.state = StateError
		controller.errorMessage = failureText(err)
		controller.result = nil
		return err
	}

	report := services.NormalizeFoodReport(envelope.Report)
	controller.state = StateSuccess
	controller.result = &report
	controller.errorMessage = ""
	return nil
}

// Reset returns the screen to idle, clearing input, preview, result and
// error together. Resetting an already idle screen is a no-op.
func (controller *FoodAnalysisController) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	controller.releasePreviewLocked()
	controller.input = models.FoodAnalysisInput{}
	controller.result = nil
	controller.errorMessage = ""
	controller.state = StateIdle
}

func (controller *FoodAnalysisController) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

func (controller *FoodAnalysisController) Result() *models.FoodReport {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.result
}

func (controller *FoodAnalysisController) ErrorMessage() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.errorMessage
}

// PreviewURL is empty when no image is selected.
func (controller *FoodAnalysisController) PreviewURL() string {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.preview == nil {
		return ""
	}
	return controller.preview.URL()
}

// Preview exposes the current handle so callers can observe its
// lifecycle; may be nil.
func (controller *FoodAnalysisController) Preview() *Preview {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.preview
}

func (controller *FoodAnalysisController) releasePreviewLocked() {
	if controller.preview != nil {
		controller.preview.Release()
		controller.preview = nil
	}
}
