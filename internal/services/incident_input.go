package services

import (
	"errors"
	"strings"

	"github.com/lunahealth/luna/internal/models"
)

var ErrIncompleteIncidentReport = errors.New("all incident report fields are required")

// MissingIncidentFields names every required field that is empty after
// trimming, in form order, so the screen can highlight them.
func MissingIncidentFields(report models.IncidentReport) []string {
	missing := []string{}
	fields := []struct {
		name  string
		value string
	}{
		{"incident_type", report.IncidentType},
		{"date", report.Date},
		{"time", report.Time},
		{"location", report.Location},
		{"description", report.Description},
		{"reporter_name", report.ReporterName},
		{"reporter_phone", report.ReporterPhone},
	}
	for _, field := range fields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func ValidateIncidentReport(report models.IncidentReport) error {
	if len(MissingIncidentFields(report)) > 0 {
		return ErrIncompleteIncidentReport
	}
	return nil
}
