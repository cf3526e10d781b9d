package console

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/rankforge/growth-console/internal/projection"
	"github.com/rankforge/growth-console/internal/records"
)

func TestSubmitValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmitRequest)
	}{
		{"missing name", func(r *SubmitRequest) { r.Name = "  " }},
		{"missing email", func(r *SubmitRequest) { r.Email = "" }},
		{"email without at sign", func(r *SubmitRequest) { r.Email = "dana.example.com" }},
		{"missing company", func(r *SubmitRequest) { r.Company = "" }},
		{"empty revenue", func(r *SubmitRequest) { r.MonthlyRevenue = "" }},
		{"non-numeric leads", func(r *SubmitRequest) { r.CurrentLeads = "twenty" }},
		{"negative job value", func(r *SubmitRequest) { r.AvgJobValue = "-250" }},
	}

	env := newTestEnv(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSubmit()
			tc.mutate(&req)
			rec := env.do(t, http.MethodPost, "/v1/blueprints", req)
			if rec.Code != 400 {
				t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body)
			}
		})
	}

	leads, err := env.store.ListLeads()
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("rejected submissions left %d leads", len(leads))
	}
}

func TestSubmitGenerationFailurePersistsNothing(t *testing.T) {
	dir := t.TempDir()
	store, err := records.OpenSQLiteStore(filepath.Join(dir, "console.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	failing := func(records.BusinessProfile, projection.Result, string) ([]byte, error) {
		return nil, errors.New("font table corrupt")
	}
	s := &Server{
		leads:     store,
		reports:   store,
		snapshots: records.NewSnapshotStore(dir),
		printer:   &stubPrinter{},
		generate:  failing,
	}

	_, err = s.submit(context.Background(), validSubmit())
	if err == nil {
		t.Fatal("expected generation error")
	}
	var ce *Error
	if !errors.As(err, &ce) || ce.Code != CodeGeneration {
		t.Fatalf("err = %v, want generation code", err)
	}

	leads, err := store.ListLeads()
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("generation failure still captured %d leads", len(leads))
	}
	reports, err := store.ListReports()
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("generation failure still wrote %d records", len(reports))
	}
}

func TestSubmitDefaultsToGenericVertical(t *testing.T) {
	env := newTestEnv(t)

	req := validSubmit()
	req.Vertical = ""
	rec := env.do(t, http.MethodPost, "/v1/blueprints", req)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	reports, err := env.store.ListReports()
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports", len(reports))
	}
	if reports[0].Vertical != projection.GenericVertical {
		t.Fatalf("vertical = %q, want %q", reports[0].Vertical, projection.GenericVertical)
	}
	if reports[0].Filename != "growth-blueprint.pdf" {
		t.Fatalf("filename = %q, want growth-blueprint.pdf", reports[0].Filename)
	}

	leads, err := env.store.ListLeads()
	if err != nil {
		t.Fatalf("list leads: %v", err)
	}
	if leads[0].Source != "growth-blueprint" {
		t.Fatalf("source = %q", leads[0].Source)
	}
}

func TestSubmitUnknownVerticalStillCompletes(t *testing.T) {
	env := newTestEnv(t)

	req := validSubmit()
	req.Vertical = "submarine-repair"
	rec := env.do(t, http.MethodPost, "/v1/blueprints", req)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	reports, err := env.store.ListReports()
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if reports[0].Vertical != "submarine-repair" {
		t.Fatalf("vertical = %q", reports[0].Vertical)
	}
	if reports[0].Filename != "submarine-repair-growth-blueprint.pdf" {
		t.Fatalf("filename = %q", reports[0].Filename)
	}
}

func TestSubmitSnapshotFailureIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	store, err := records.OpenSQLiteStore(filepath.Join(dir, "console.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	// Point the snapshot store at a path that cannot be a directory.
	blocked := filepath.Join(dir, "console.db")
	s := &Server{
		leads:     store,
		reports:   store,
		snapshots: records.NewSnapshotStore(filepath.Join(blocked, "nested")),
		printer:   &stubPrinter{},
		generate: func(records.BusinessProfile, projection.Result, string) ([]byte, error) {
			return []byte("%PDF-test"), nil
		},
	}

	resp, err := s.submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if resp.RecordID == "" {
		t.Fatal("submission did not complete")
	}
	reports, err := store.ListReports()
	if err != nil {
		t.Fatalf("list reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
}
