package console

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/rankforge/growth-console/internal/blueprint"
	"github.com/rankforge/growth-console/internal/projection"
	"github.com/rankforge/growth-console/internal/records"
)

type generateFunc func(records.BusinessProfile, projection.Result, string) ([]byte, error)

type Server struct {
	leads     records.LeadRepository
	reports   records.ReportRepository
	snapshots *records.SnapshotStore
	printer   PrintRenderer
	generate  generateFunc
}

func NewServer(leads records.LeadRepository, reports records.ReportRepository, snapshots *records.SnapshotStore) http.Handler {
	return newServer(leads, reports, snapshots, NewChromiumPrintRenderer(), blueprint.Generate)
}

func newServer(leads records.LeadRepository, reports records.ReportRepository, snapshots *records.SnapshotStore, printer PrintRenderer, generate generateFunc) http.Handler {
	s := &Server{
		leads:     leads,
		reports:   reports,
		snapshots: snapshots,
		printer:   printer,
		generate:  generate,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/blueprints", s.handleBlueprints)
	mux.HandleFunc("/v1/projection", s.handleProjection)
	mux.HandleFunc("/v1/verticals", s.handleVerticals)
	mux.HandleFunc("/v1/leads", s.handleLeads)
	mux.HandleFunc("/v1/records", s.handleRecords)
	mux.HandleFunc("/v1/records/", s.handleRecordByID)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeAPIError(w http.ResponseWriter, err error) {
	var ce *Error
	if errors.As(err, &ce) {
		writeJSON(w, ce.Status, map[string]any{
			"ok": false,
			"error": map[string]any{
				"code":    ce.Code,
				"message": ce.Message,
			},
		})
		return
	}
	writeJSON(w, 500, map[string]any{
		"ok": false,
		"error": map[string]any{
			"code":    CodeInternal,
			"message": err.Error(),
		},
	})
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func encodePDF(pdf []byte) string {
	return base64.StdEncoding.EncodeToString(pdf)
}

func (s *Server) handleBlueprints(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIError(w, NewValidationError("invalid json: "+err.Error()))
		return
	}
	resp, err := s.submit(r.Context(), req)
	if err != nil {
		log.Printf("blueprint submission: %v", err)
		writeAPIError(w, err)
		return
	}
	writeJSON(w, 200, resp)
}

// handleProjection is the reactive preview: the landing page calls it on
// every input change and withholds the projection display on a 400.
func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	in, err := projection.ParseInputs(q.Get("monthly_revenue"), q.Get("current_leads"), q.Get("avg_job_value"))
	if err != nil {
		writeAPIError(w, NewValidationError(err.Error()))
		return
	}
	v := projection.ProfileForVertical(strings.TrimSpace(q.Get("vertical")))
	writeJSON(w, 200, map[string]any{
		"vertical":   v.ID,
		"projection": projection.Compute(in, v),
	})
}

func (s *Server) handleVerticals(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	out := make([]projection.VerticalProfile, 0, len(projection.Verticals))
	for id, v := range projection.Verticals {
		if id == projection.GenericVertical {
			continue
		}
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	writeJSON(w, 200, map[string]any{"verticals": out})
}

func (s *Server) handleLeads(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	leads, err := s.leads.ListLeads()
	if err != nil {
		writeAPIError(w, NewStorageError(err))
		return
	}
	writeJSON(w, 200, map[string]any{"leads": leads})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		recs, err := s.reports.ListReports()
		if err != nil {
			writeAPIError(w, NewStorageError(err))
			return
		}
		writeJSON(w, 200, map[string]any{"records": recs})
	case http.MethodDelete:
		n, err := s.reports.DeleteAllReports()
		if err != nil {
			writeAPIError(w, NewStorageError(err))
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true, "deleted": n})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleRecordByID routes /v1/records/{id} and its pdf/preview/print
// subresources.
func (s *Server) handleRecordByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/records/")
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	id := path
	sub := ""
	if i := strings.IndexByte(path, '/'); i >= 0 {
		id, sub = path[:i], path[i+1:]
	}

	switch {
	case sub == "" && r.Method == http.MethodDelete:
		s.deleteRecord(w, id)
	case sub == "" && r.Method == http.MethodGet:
		rec, ok := s.lookupRecord(w, id)
		if !ok {
			return
		}
		writeJSON(w, 200, rec)
	case sub == "pdf" && r.Method == http.MethodGet:
		s.renderRecordPDF(w, id)
	case sub == "preview" && r.Method == http.MethodGet:
		s.renderRecordPreview(w, id)
	case sub == "print" && r.Method == http.MethodGet:
		s.renderRecordPrint(w, r, id)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *Server) lookupRecord(w http.ResponseWriter, id string) (records.GeneratedReportRecord, bool) {
	rec, found, err := s.reports.GetReport(id)
	if err != nil {
		writeAPIError(w, NewStorageError(err))
		return records.GeneratedReportRecord{}, false
	}
	if !found {
		writeAPIError(w, NewNotFoundError("no record "+id))
		return records.GeneratedReportRecord{}, false
	}
	return rec, true
}

func (s *Server) deleteRecord(w http.ResponseWriter, id string) {
	removed, err := s.reports.DeleteReport(id)
	if err != nil {
		writeAPIError(w, NewStorageError(err))
		return
	}
	if !removed {
		writeAPIError(w, NewNotFoundError("no record "+id))
		return
	}
	writeJSON(w, 200, map[string]any{"ok": true})
}

// renderRecordPDF re-renders a stored record with the native builder and
// streams the artifact under its original filename.
func (s *Server) renderRecordPDF(w http.ResponseWriter, id string) {
	rec, ok := s.lookupRecord(w, id)
	if !ok {
		return
	}
	pdf, err := s.generate(rec.Lead, rec.Projection, rec.Vertical)
	if err != nil {
		writeAPIError(w, NewGenerationError(err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rec.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) renderRecordPreview(w http.ResponseWriter, id string) {
	rec, ok := s.lookupRecord(w, id)
	if !ok {
		return
	}
	md := blueprint.BuildMarkdown(rec.Lead, rec.Projection, rec.Vertical, rec.GeneratedAt)

	var body strings.Builder
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(md), &body); err != nil {
		writeAPIError(w, NewGenerationError(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "<!doctype html><html><head><meta charset='utf-8'><title>%s</title></head><body>%s</body></html>",
		"Blueprint Preview", body.String())
}

func (s *Server) renderRecordPrint(w http.ResponseWriter, r *http.Request, id string) {
	rec, ok := s.lookupRecord(w, id)
	if !ok {
		return
	}
	md := blueprint.BuildMarkdown(rec.Lead, rec.Projection, rec.Vertical, rec.GeneratedAt)
	pdf, err := s.printer.Render(r.Context(), md, PrintMeta{
		RecordID:    rec.ID,
		Vertical:    rec.Vertical,
		GeneratedAt: rec.GeneratedAt,
	})
	if err != nil {
		log.Printf("print render %s: %v", id, err)
		writeAPIError(w, NewGenerationError(err))
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", rec.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, 200, map[string]any{"ok": true})
}
