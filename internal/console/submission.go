package console

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/rankforge/growth-console/internal/blueprint"
	"github.com/rankforge/growth-console/internal/projection"
	"github.com/rankforge/growth-console/internal/records"
)

// SubmitRequest is the landing-page form payload. The numeric fields arrive
// as the raw form strings; they must all be present and parseable before a
// projection is computed.
type SubmitRequest struct {
	Vertical       string `json:"vertical"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	ServiceArea    string `json:"service_area"`
	MonthlyRevenue string `json:"monthly_revenue"`
	CurrentLeads   string `json:"current_leads"`
	AvgJobValue    string `json:"avg_job_value"`
}

type SubmitResponse struct {
	RecordID   string            `json:"record_id"`
	LeadID     string            `json:"lead_id"`
	Filename   string            `json:"filename"`
	Projection projection.Result `json:"projection"`
	PDFBase64  string            `json:"pdf_base64"`
	Notice     string            `json:"notice"`
}

const downloadNotice = "Your blueprint is ready - check your downloads folder."

func (req SubmitRequest) validate() (records.BusinessProfile, projection.Inputs, error) {
	if strings.TrimSpace(req.Name) == "" {
		return records.BusinessProfile{}, projection.Inputs{}, NewValidationError("name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return records.BusinessProfile{}, projection.Inputs{}, NewValidationError("a valid email is required")
	}
	if strings.TrimSpace(req.Company) == "" {
		return records.BusinessProfile{}, projection.Inputs{}, NewValidationError("company is required")
	}

	in, err := projection.ParseInputs(req.MonthlyRevenue, req.CurrentLeads, req.AvgJobValue)
	if err != nil {
		return records.BusinessProfile{}, projection.Inputs{}, NewValidationError(err.Error())
	}

	return records.BusinessProfile{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		Phone:          strings.TrimSpace(req.Phone),
		Company:        strings.TrimSpace(req.Company),
		ServiceArea:    strings.TrimSpace(req.ServiceArea),
		MonthlyRevenue: in.MonthlyRevenue,
		CurrentLeads:   in.CurrentLeads,
		AvgJobValue:    in.AvgJobValue,
	}, in, nil
}

// submit runs the submission chain. The document is generated first, before
// any write: a generation failure persists nothing. Once a document exists
// the lead is captured even if a later persistence step fails; the legacy
// snapshot is best-effort and never fails the submission.
func (s *Server) submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	profile, in, err := req.validate()
	if err != nil {
		return SubmitResponse{}, err
	}

	vertical := strings.TrimSpace(req.Vertical)
	if vertical == "" {
		vertical = projection.GenericVertical
	}
	v := projection.ProfileForVertical(vertical)
	result := projection.Compute(in, v)

	pdf, err := s.generate(profile, result, vertical)
	if err != nil {
		return SubmitResponse{}, NewGenerationError(err)
	}

	lead, err := s.leads.InsertLead(records.LeadRecord{
		BusinessProfile: profile,
		Source:          fmt.Sprintf("%s-blueprint", vertical),
	})
	if err != nil {
		return SubmitResponse{}, NewStorageError(err)
	}

	if err := s.snapshots.Append(vertical, records.LeadSnapshot{
		BusinessProfile: profile,
		Source:          lead.Source,
		Timestamp:       lead.Timestamp,
		ROASProjections: result,
		BlueprintType:   vertical,
	}); err != nil {
		log.Printf("submission: legacy snapshot for %s: %v", vertical, err)
	}

	rec, err := s.reports.InsertReport(records.GeneratedReportRecord{
		Vertical:   vertical,
		Filename:   blueprint.Filename(vertical),
		Lead:       profile,
		Projection: result,
	})
	if err != nil {
		return SubmitResponse{}, NewStorageError(err)
	}

	return SubmitResponse{
		RecordID:   rec.ID,
		LeadID:     lead.ID,
		Filename:   rec.Filename,
		Projection: result,
		PDFBase64:  encodePDF(pdf),
		Notice:     downloadNotice,
	}, nil
}
