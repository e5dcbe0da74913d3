package services

import (
	"strings"

	"github.com/lunahealth/luna/internal/models"
)

// ValueUnavailable fills nutrient fields the analysis service did not
// return.
const ValueUnavailable = "N/A"

// UnknownFoodName fills in when the service could not identify the food.
const UnknownFoodName = "Unknown"

// NormalizeFoodReport maps a loosely shaped analysis payload onto the
// fixed FoodReport shape. The backend's field names drift between
// versions (protein vs protein_g, food_name vs food), so every field
// takes the first non-empty candidate and falls back to a placeholder.
func NormalizeFoodReport(raw map[string]any) models.FoodReport {
	return models.FoodReport{
		FoodName:        stringField(raw, UnknownFoodName, "food_name", "food", "name"),
		Calories:        nutrientField(raw, "calories", "calories_kcal", "kcal"),
		Protein:         nutrientField(raw, "protein", "protein_g"),
		Carbs:           nutrientField(raw, "carbs", "carbs_g", "carbohydrates"),
		Fats:            nutrientField(raw, "fats", "fat", "fats_g", "fat_g"),
		Fiber:           nutrientField(raw, "fiber", "fiber_g"),
		PregnancySafe:   truthy(firstField(raw, "pregnancy_safe", "is_pregnancy_safe")),
		PeriodFriendly:  truthy(firstField(raw, "period_friendly", "is_period_friendly")),
		Recommendations: textList(firstField(raw, "recommendations", "recommendation", "advice")),
		SuggestedFoods:  textList(firstField(raw, "suggested_foods", "suggestions", "alternatives")),
	}
}

// firstField returns the first present, non-nil, non-empty-string value
// among the candidate keys.
func firstField(raw map[string]any, keys ...string) any {
	for _, key := range keys {
		value, ok := raw[key]
		if !ok || value == nil {
			continue
		}
		if text, isText := value.(string); isText && strings.TrimSpace(text) == "" {
			continue
		}
		return value
	}
	return nil
}

func stringField(raw map[string]any, fallback string, keys ...string) string {
	value := firstField(raw, keys...)
	if text, ok := value.(string); ok {
		return strings.TrimSpace(text)
	}
	return fallback
}

func nutrientField(raw map[string]any, keys ...string) any {
	value := firstField(raw, keys...)
	if value == nil {
		return ValueUnavailable
	}
	return value
}

// truthy coerces the backend's assorted boolean spellings. Textual
// "false"/"no" count as false even though they are non-empty.
func truthy(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "yes", "1", "safe":
			return true
		default:
			return false
		}
	default:
		return false
	}
}

// textList accepts either free text or a list and always yields a list,
// so the screen renders both shapes the same way.
func textList(value any) []string {
	switch typed := value.(type) {
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return []string{}
		}
		return []string{trimmed}
	case []any:
		items := make([]string, 0, len(typed))
		for _, entry := range typed {
			if text, ok := entry.(string); ok && strings.TrimSpace(text) != "" {
				items = append(items, strings.TrimSpace(text))
			}
		}
		return items
	default:
		return []string{}
	}
}
