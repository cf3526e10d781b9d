package console

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// PrintRenderer produces a print-quality PDF of a stored record's blueprint
// preview. The native builder remains the download artifact; this path
// exists for the admin "print view" of an archived record.
type PrintRenderer interface {
	Render(ctx context.Context, markdown string, meta PrintMeta) ([]byte, error)
}

// PrintMeta is the header block stamped above the rendered report.
type PrintMeta struct {
	RecordID    string
	Vertical    string
	GeneratedAt time.Time
}

type ChromiumPrintRenderer struct {
	chromePath string
}

func NewChromiumPrintRenderer() *ChromiumPrintRenderer {
	return &ChromiumPrintRenderer{chromePath: detectChromePath()}
}

func (r *ChromiumPrintRenderer) Render(ctx context.Context, markdown string, meta PrintMeta) ([]byte, error) {
	htmlDoc, err := buildPrintHTML(markdown, meta)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
	}
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(timeoutCtx, append(chromedp.DefaultExecAllocatorOptions[:], opts...)...)
	defer allocCancel()

	taskCtx, taskCancel := chromedp.NewContext(allocCtx)
	defer taskCancel()

	var pdf []byte
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(htmlDoc))
	if err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			footer := `<div style="width:100%;text-align:center;font-size:9px;color:#666;">` +
				`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`
			out, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(`<div></div>`).
				WithFooterTemplate(footer).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0.5).
				WithMarginBottom(0.75).
				WithMarginLeft(0.45).
				WithMarginRight(0.45).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = out
			return nil
		}),
	); err != nil {
		return nil, err
	}
	return pdf, nil
}

func buildPrintHTML(markdown string, meta PrintMeta) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}

	return "<!doctype html><html><head><meta charset='utf-8'><title>Growth Blueprint</title>" +
		"<style>" +
		"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;} " +
		"body{font-family:Georgia,serif;color:#1c1917;background:#fff;max-width:900px;margin:0 auto;padding:0.6rem;} " +
		"h1,h2,h3{font-family:Helvetica,Arial,sans-serif;color:#003366;} " +
		".report-meta{color:#44403c;font-size:0.85rem;border-bottom:2px solid #003366;padding-bottom:0.5rem;margin-bottom:1rem;} " +
		".report-meta strong{color:#1c1917;} " +
		"table{width:100% !important;border-collapse:collapse !important;border:1px solid #a8a29e !important;font-size:0.85rem;} " +
		"th,td{border:1px solid #a8a29e !important;padding:0.35rem 0.45rem !important;text-align:left !important;} " +
		"blockquote{border-left:3px solid #003366;margin-left:0;padding-left:0.75rem;color:#44403c;} " +
		"h2{break-before:auto;} " +
		"@media print{ @page{size:auto;margin:12mm;} }" +
		"</style></head><body>" +
		"<div class='report-meta'>" + buildPrintMetaHTML(meta) + "</div>" +
		"<div class='report-html'>" + content.String() + "</div>" +
		"</body></html>", nil
}

func buildPrintMetaHTML(meta PrintMeta) string {
	var out strings.Builder
	if meta.RecordID != "" {
		out.WriteString("<div><strong>Record:</strong> " + html.EscapeString(meta.RecordID) + "</div>")
	}
	if meta.Vertical != "" {
		out.WriteString("<div><strong>Vertical:</strong> " + html.EscapeString(meta.Vertical) + "</div>")
	}
	if !meta.GeneratedAt.IsZero() {
		out.WriteString("<div><strong>Generated:</strong> " + html.EscapeString(meta.GeneratedAt.Format("January 2, 2006 at 3:04 PM MST")) + "</div>")
	}
	return out.String()
}

func detectChromePath() string {
	candidates := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
