package models

// IncidentReport is submitted once and never retained client-side.
type IncidentReport struct {
	IncidentType  string `json:"incident_type" form:"incident_type"`
	Date          string `json:"date" form:"date"`
	Time          string `json:"time" form:"time"`
	Location      string `json:"location" form:"location"`
	Description   string `json:"description" form:"description"`
	ReporterName  string `json:"reporter_name" form:"reporter_name"`
	ReporterPhone string `json:"reporter_phone" form:"reporter_phone"`
}
