package services

import (
	"errors"
	"strings"

	"github.com/lunahealth/luna/internal/models"
)

var (
	ErrNoAnalysisInput          = errors.New("select an image or enter a food name")
	ErrConflictingAnalysisInput = errors.New("provide either an image or a food name, not both")
)

// ValidateFoodAnalysisInput enforces the two mutually exclusive input
// modes: an uploaded image, or a food name with an optional description.
func ValidateFoodAnalysisInput(input models.FoodAnalysisInput) error {
	hasName := strings.TrimSpace(input.FoodName) != ""
	if input.HasImage() && hasName {
		return ErrConflictingAnalysisInput
	}
	if !input.HasImage() && !hasName {
		return ErrNoAnalysisInput
	}
	return nil
}
