package models

const (
	ExerciseLow      = "Low"
	ExerciseModerate = "Moderate"
	ExerciseHigh     = "High"
)

const (
	DietBalanced   = "Balanced"
	DietVegetarian = "Vegetarian"
	DietHighSugar  = "High Sugar"
	DietLowCarb    = "Low Carb"
)

const (
	SymptomCramps     = "Cramps"
	SymptomMoodSwings = "Mood Swings"
	SymptomFatigue    = "Fatigue"
	SymptomHeadache   = "Headache"
	SymptomBloating   = "Bloating"
)

// DateLayout is the wire format for all date fields sent to the
// calculation service.
const DateLayout = "2006-01-02"

type DueDateRequest struct {
	LastPeriodDate string `json:"last_period_date" form:"last_period_date"`
}

type SimplePredictionRequest struct {
	LastPeriodDate string `json:"last_period_date" form:"last_period_date"`
	CycleLength    int    `json:"cycle_length" form:"cycle_length"`
}

// AdvancedPredictionRequest carries the lifestyle profile the advanced
// prediction models expect. Exercise, diet and symptom are single values,
// not sets.
type AdvancedPredictionRequest struct {
	LastPeriodDate    string  `json:"last_period_date" form:"last_period_date"`
	Age               int     `json:"age" form:"age"`
	BMI               float64 `json:"bmi" form:"bmi"`
	StressLevel       int     `json:"stress_level" form:"stress_level"`
	SleepHours        float64 `json:"sleep_hours" form:"sleep_hours"`
	PeriodLength      int     `json:"period_length" form:"period_length"`
	ExerciseFrequency string  `json:"exercise_frequency" form:"exercise_frequency"`
	Diet              string  `json:"diet" form:"diet"`
	Symptoms          string  `json:"symptoms" form:"symptoms"`
}
