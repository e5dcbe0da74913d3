package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lunahealth/luna/internal/models"
)

func completeReport() models.IncidentReport {
	return models.IncidentReport{
		IncidentType:  "harassment",
		Date:          "2025-06-01",
		Time:          "18:30",
		Location:      "Main street",
		Description:   "details",
		ReporterName:  "A. Person",
		ReporterPhone: "+100200300",
	}
}

func TestValidateIncidentReportComplete(t *testing.T) {
	if err := ValidateIncidentReport(completeReport()); err != nil {
		t.Fatalf("expected complete report to validate, got %v", err)
	}
}

func TestValidateIncidentReportMissingFields(t *testing.T) {
	report := completeReport()
	report.Location = "   "
	report.ReporterPhone = ""

	if err := ValidateIncidentReport(report); !errors.Is(err, ErrIncompleteIncidentReport) {
		t.Fatalf("expected incomplete report error, got %v", err)
	}

	missing := MissingIncidentFields(report)
	if !reflect.DeepEqual(missing, []string{"location", "reporter_phone"}) {
		t.Fatalf("unexpected missing fields: %v", missing)
	}
}

func TestMissingIncidentFieldsEmptyReport(t *testing.T) {
	missing := MissingIncidentFields(models.IncidentReport{})
	if len(missing) != 7 {
		t.Fatalf("expected all 7 fields missing, got %d: %v", len(missing), missing)
	}
}
