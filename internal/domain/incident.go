package domain

type IncidentStatus string

const (
	IncidentStatusOpen        IncidentStatus = "Open"
	IncidentStatusUnderReview IncidentStatus = "Under Review"
	IncidentStatusResolved    IncidentStatus = "Resolved"
	IncidentStatusClosed      IncidentStatus = "Closed"
)

type IncidentReport struct {
	ID                 int32          `json:"incident_id"`
	RentalID           int32          `json:"rental_id"`
	ReportedBy         *int32         `json:"reported_by,omitempty"`
	IncidentDate       Timestamp      `json:"incident_date"`
	IncidentType       string         `json:"incident_type"`
	Description        string         `json:"description"`
	EstimatedCost      *Cents         `json:"estimated_cost,omitempty"`
	Status             IncidentStatus `json:"status"`
	Photos             string         `json:"photos,omitempty"`
	PoliceReportNumber string         `json:"police_report_number,omitempty"`
}

type IncidentReportCreate struct {
	RentalID           int32          `json:"rental_id"`
	ReportedBy         *int32         `json:"reported_by,omitempty"`
	IncidentDate       Date           `json:"incident_date"`
	IncidentType       string         `json:"incident_type"`
	Description        string         `json:"description"`
	EstimatedCost      *Cents         `json:"estimated_cost,omitempty"`
	Status             IncidentStatus `json:"status,omitempty"`
	Photos             string         `json:"photos,omitempty"`
	PoliceReportNumber string         `json:"police_report_number,omitempty"`
}
