package models

// FoodAnalysisInput describes one of the two mutually exclusive ways to
// ask for an analysis: an uploaded image, or a food name with an optional
// free-text description.
type FoodAnalysisInput struct {
	ImageName   string
	ImageType   string
	ImageData   []byte
	FoodName    string
	Description string
}

func (input FoodAnalysisInput) HasImage() bool {
	return len(input.ImageData) > 0
}

// AnalysisEnvelope is the wire shape of the food-analysis service
// response. Report is kept loosely typed because the backend's field
// names vary between versions; normalization happens in services.
type AnalysisEnvelope struct {
	Success bool           `json:"success"`
	Source  string         `json:"source"`
	Report  map[string]any `json:"report"`
}

// FoodReport is the fixed shape every analysis is normalized into.
// Nutrient fields carry either the backend's numeric value or the
// "N/A" placeholder, so they stay loosely typed on purpose.
type FoodReport struct {
	FoodName        string   `json:"food_name"`
	Calories        any      `json:"calories"`
	Protein         any      `json:"protein"`
	Carbs           any      `json:"carbs"`
	Fats            any      `json:"fats"`
	Fiber           any      `json:"fiber"`
	PregnancySafe   bool     `json:"pregnancy_safe"`
	PeriodFriendly  bool     `json:"period_friendly"`
	Recommendations []string `json:"recommendations"`
	SuggestedFoods  []string `json:"suggested_foods,omitempty"`
}
