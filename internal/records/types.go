package records

import (
	"time"

	"github.com/rankforge/growth-console/internal/projection"
)

// BusinessProfile is the user-submitted form payload captured at submission
// time. The three numeric fields are validated upstream before a projection
// is computed.
type BusinessProfile struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone,omitempty"`
	Company        string  `json:"company"`
	ServiceArea    string  `json:"service_area,omitempty"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	CurrentLeads   float64 `json:"current_leads"`
	AvgJobValue    float64 `json:"avg_job_value"`
}

// LeadRecord is a captured lead. The repository assigns ID and Timestamp on
// insert.
type LeadRecord struct {
	ID string `json:"id"`
	BusinessProfile
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
	Notes     []string  `json:"notes"`
}

// GeneratedReportRecord is the persisted trace of one successful blueprint
// generation. Records are append-only: created at submission, deleted by an
// operator, never mutated in place.
type GeneratedReportRecord struct {
	ID          string            `json:"id"`
	Vertical    string            `json:"type"`
	Filename    string            `json:"filename"`
	GeneratedAt time.Time         `json:"generated_at"`
	Lead        BusinessProfile   `json:"lead_data"`
	Projection  projection.Result `json:"roas_results"`
}

// LeadSnapshot is the legacy per-vertical export shape kept for back-compat
// with the old landing-page storage keys.
type LeadSnapshot struct {
	BusinessProfile
	Source          string            `json:"source"`
	Timestamp       time.Time         `json:"timestamp"`
	ROASProjections projection.Result `json:"roas_projections"`
	BlueprintType   string            `json:"blueprint_type"`
}

const LeadStatusNew = "new"

type LeadRepository interface {
	InsertLead(lead LeadRecord) (LeadRecord, error)
	ListLeads() ([]LeadRecord, error)
}

type ReportRepository interface {
	InsertReport(rec GeneratedReportRecord) (GeneratedReportRecord, error)
	ListReports() ([]GeneratedReportRecord, error)
	GetReport(id string) (GeneratedReportRecord, bool, error)
	DeleteReport(id string) (bool, error)
	DeleteAllReports() (int, error)
}
