package blueprint

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rankforge/growth-console/internal/projection"
	"github.com/rankforge/growth-console/internal/records"
)

const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight

	brandName           = "RankForge Digital"
	confidentialityNote = "Confidential - prepared exclusively for the recipient. Projections are estimates, not guarantees."
)

type buildState int

const (
	stateInitialized buildState = iota
	stateTitleAdded
	stateSummaryAdded
	stateResultsAdded
	stateStrategiesAdded
	stateImplementationAdded
	stateStoriesAdded
	stateCTAAdded
	stateFinalized
)

var stateNames = map[buildState]string{
	stateInitialized:         "initialized",
	stateTitleAdded:          "title added",
	stateSummaryAdded:        "summary added",
	stateResultsAdded:        "results added",
	stateStrategiesAdded:     "strategies added",
	stateImplementationAdded: "implementation added",
	stateStoriesAdded:        "stories added",
	stateCTAAdded:            "cta added",
	stateFinalized:           "finalized",
}

// Builder assembles one growth blueprint document. Sections must be added in
// the fixed order title, summary, results, strategies, implementation,
// stories, CTA, then Finalize; every section is always produced and only the
// content varies by vertical. A Builder is single-use: after Finalize no
// further mutation is permitted.
type Builder struct {
	pdf      *fpdf.Fpdf
	state    buildState
	vertical string
	content  VerticalContent
	sections []string
	now      time.Time
}

func NewBuilder(vertical string) *Builder {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginBottom)

	// The footer is stamped on every page once total layout is known; the
	// {nb} alias is substituted at output time so the stamped total always
	// matches the real page count.
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(contentWidth, 4, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 1, "C", false, 0, "")
		pdf.CellFormat(contentWidth, 4, confidentialityNote, "", 1, "C", false, 0, "")
	})

	return &Builder{
		pdf:      pdf,
		vertical: vertical,
		content:  ContentForVertical(vertical),
		now:      time.Now(),
	}
}

// Generate runs the full section sequence on a fresh builder and returns the
// serialized document. It fails atomically: on error no partial artifact is
// returned.
func Generate(profile records.BusinessProfile, result projection.Result, vertical string) ([]byte, error) {
	b := NewBuilder(vertical)
	if err := b.AddTitle(profile); err != nil {
		return nil, err
	}
	if err := b.AddSummary(); err != nil {
		return nil, err
	}
	if err := b.AddResults(profile, result); err != nil {
		return nil, err
	}
	if err := b.AddStrategies(); err != nil {
		return nil, err
	}
	if err := b.AddImplementation(); err != nil {
		return nil, err
	}
	if err := b.AddStories(); err != nil {
		return nil, err
	}
	if err := b.AddCTA(); err != nil {
		return nil, err
	}
	return b.Finalize()
}

// Filename returns the deterministic artifact name for a vertical. The
// generic vertical keeps the bare name rather than doubling it.
func Filename(vertical string) string {
	if vertical == "" || vertical == projection.GenericVertical {
		return "growth-blueprint.pdf"
	}
	return vertical + "-growth-blueprint.pdf"
}

func (b *Builder) step(from buildState, name string, fn func()) error {
	if b.state != from {
		return fmt.Errorf("blueprint builder: add %s out of order (state %s)", name, stateNames[b.state])
	}
	fn()
	if err := b.pdf.Error(); err != nil {
		return fmt.Errorf("blueprint builder: %s section: %w", name, err)
	}
	b.state = from + 1
	b.sections = append(b.sections, name)
	return nil
}

// ensureSpace starts a new page when the remaining vertical space on the
// current page is below min. Greedy and non-backtracking: blocks never split
// across this check, though long step lists inside a block may still wrap
// onto the next page via the auto page break.
func (b *Builder) ensureSpace(min float64) {
	if b.pdf.GetY() > pageHeight-marginBottom-min {
		b.pdf.AddPage()
	}
}

func (b *Builder) sectionHeader(title string) {
	b.pdf.SetFont("Arial", "B", 16)
	b.pdf.SetTextColor(0, 51, 102)
	b.pdf.CellFormat(contentWidth, 10, title, "", 1, "L", false, 0, "")
	b.pdf.SetDrawColor(0, 51, 102)
	b.pdf.Line(marginLeft, b.pdf.GetY(), marginLeft+contentWidth, b.pdf.GetY())
	b.pdf.Ln(4)
}

func (b *Builder) AddTitle(profile records.BusinessProfile) error {
	return b.step(stateInitialized, "title", func() {
		b.pdf.AddPage()

		b.pdf.SetFont("Arial", "B", 13)
		b.pdf.SetTextColor(0, 51, 102)
		b.pdf.CellFormat(contentWidth, 8, brandName, "", 1, "C", false, 0, "")

		b.pdf.Ln(40)
		b.pdf.SetFont("Arial", "B", 26)
		b.pdf.CellFormat(contentWidth, 14, b.content.Title, "", 1, "C", false, 0, "")

		b.pdf.Ln(8)
		b.pdf.SetFont("Arial", "I", 11)
		b.pdf.SetTextColor(80, 80, 80)
		b.pdf.CellFormat(contentWidth, 8, fmt.Sprintf("Generated: %s", b.now.Format("2 January 2006")), "", 1, "C", false, 0, "")

		if strings.TrimSpace(profile.Name) != "" {
			b.pdf.Ln(4)
			b.pdf.SetFont("Arial", "", 12)
			b.pdf.SetTextColor(50, 50, 50)
			line := fmt.Sprintf("Prepared for %s", profile.Name)
			if strings.TrimSpace(profile.Company) != "" {
				line += fmt.Sprintf(", %s", profile.Company)
			}
			b.pdf.CellFormat(contentWidth, 8, line, "", 1, "C", false, 0, "")
		}
	})
}

func (b *Builder) AddSummary() error {
	return b.step(stateTitleAdded, "summary", func() {
		b.pdf.AddPage()
		b.sectionHeader("Executive Summary")
		b.pdf.SetFont("Arial", "", 11)
		b.pdf.SetTextColor(50, 50, 50)
		b.pdf.MultiCell(contentWidth, 5.5, b.content.Summary, "", "L", false)
	})
}

func (b *Builder) AddResults(profile records.BusinessProfile, result projection.Result) error {
	return b.step(stateSummaryAdded, "results", func() {
		b.pdf.Ln(8)
		b.sectionHeader("Your Personalized Results")

		// Derived for display only; not part of the projection result.
		leadIncrease := result.ProjectedLeads - profile.CurrentLeads

		b.resultsBox("Current Situation", [][2]string{
			{"Monthly Revenue", formatMoney(profile.MonthlyRevenue)},
			{"Monthly Leads", formatNumber(profile.CurrentLeads)},
			{"Average Job Value", formatMoney(profile.AvgJobValue)},
		})
		b.pdf.Ln(5)
		b.resultsBox("Projected Results", [][2]string{
			{"Projected Monthly Leads", formatNumber(result.ProjectedLeads)},
			{"Additional Leads Per Month", formatNumber(leadIncrease)},
			{"Projected Monthly Revenue", formatMoney(result.ProjectedRevenue)},
			{"Recommended Monthly Ad Spend", formatMoney(result.MonthlyAdSpend)},
			{"Return On Ad Spend", fmt.Sprintf("%.1fx", result.ROAS)},
			{"Projected Annual Growth", formatMoney(result.AnnualGrowth)},
		})
	})
}

func (b *Builder) resultsBox(title string, rows [][2]string) {
	b.pdf.SetFillColor(245, 247, 250)
	b.pdf.SetDrawColor(200, 200, 200)
	b.pdf.SetFont("Arial", "B", 12)
	b.pdf.SetTextColor(0, 51, 102)
	b.pdf.CellFormat(contentWidth, 8, title, "1", 1, "C", true, 0, "")

	b.pdf.SetFont("Arial", "", 11)
	b.pdf.SetTextColor(50, 50, 50)
	for i, row := range rows {
		border := "LR"
		if i == len(rows)-1 {
			border = "LRB"
		}
		b.pdf.CellFormat(contentWidth/2, 7, row[0], border, 0, "L", true, 0, "")
		b.pdf.CellFormat(contentWidth/2, 7, row[1], border, 1, "R", true, 0, "")
	}
}

func (b *Builder) AddStrategies() error {
	return b.step(stateResultsAdded, "strategies", func() {
		b.pdf.AddPage()
		b.sectionHeader("Growth Strategies")

		for i, strat := range b.content.Strategies {
			b.ensureSpace(45)

			b.pdf.SetFont("Arial", "B", 12)
			b.pdf.SetTextColor(0, 51, 102)
			b.pdf.CellFormat(contentWidth, 7, fmt.Sprintf("%d. %s", i+1, strat.Title), "", 1, "L", false, 0, "")

			b.pdf.SetFont("Arial", "", 10.5)
			b.pdf.SetTextColor(50, 50, 50)
			b.pdf.MultiCell(contentWidth, 5, strat.Description, "", "L", false)
			b.pdf.Ln(1)

			for _, step := range strat.Steps {
				b.pdf.SetX(marginLeft + 4)
				b.pdf.MultiCell(contentWidth-4, 5, "- "+step, "", "L", false)
			}
			b.pdf.Ln(4)
		}
	})
}

func (b *Builder) AddImplementation() error {
	return b.step(stateStrategiesAdded, "implementation", func() {
		b.pdf.AddPage()
		b.sectionHeader("Implementation Guide")

		for _, month := range ImplementationPlan {
			b.ensureSpace(40)

			b.pdf.SetFont("Arial", "B", 12)
			b.pdf.SetTextColor(0, 51, 102)
			b.pdf.CellFormat(contentWidth, 7, month.Month, "", 1, "L", false, 0, "")

			b.pdf.SetFont("Arial", "", 10.5)
			b.pdf.SetTextColor(50, 50, 50)
			for _, task := range month.Tasks {
				b.pdf.SetX(marginLeft + 4)
				b.pdf.MultiCell(contentWidth-4, 5, "- "+task, "", "L", false)
			}
			b.pdf.Ln(4)
		}
	})
}

func (b *Builder) AddStories() error {
	return b.step(stateImplementationAdded, "stories", func() {
		b.pdf.AddPage()
		b.sectionHeader("Success Stories")

		for _, story := range b.content.Stories {
			b.ensureSpace(35)

			b.pdf.SetFont("Arial", "B", 11.5)
			b.pdf.SetTextColor(0, 51, 102)
			b.pdf.CellFormat(contentWidth, 7, story.Business, "", 1, "L", false, 0, "")

			b.pdf.SetFont("Arial", "I", 10.5)
			b.pdf.SetTextColor(70, 70, 70)
			b.pdf.MultiCell(contentWidth, 5, fmt.Sprintf("\"%s\"", story.Quote), "", "L", false)

			b.pdf.SetFont("Arial", "", 10.5)
			b.pdf.SetTextColor(50, 50, 50)
			b.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("%s in %s", story.Result, story.Timeframe), "", 1, "L", false, 0, "")
			b.pdf.Ln(3)
		}
	})
}

func (b *Builder) AddCTA() error {
	return b.step(stateStoriesAdded, "cta", func() {
		b.ensureSpace(60)
		b.pdf.Ln(6)
		b.sectionHeader("Your Next Step")

		b.pdf.SetFont("Arial", "", 11)
		b.pdf.SetTextColor(50, 50, 50)
		b.pdf.MultiCell(contentWidth, 5.5, ctaText(b.vertical), "", "L", false)

		b.pdf.Ln(5)
		b.pdf.SetFont("Arial", "B", 11)
		b.pdf.SetTextColor(0, 51, 102)
		b.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Call %s", contactPhone), "", 1, "L", false, 0, "")
		b.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Email %s", contactEmail), "", 1, "L", false, 0, "")
		b.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Visit %s", contactSite), "", 1, "L", false, 0, "")
	})
}

// Finalize stamps the page footers and serializes the document. The builder
// is terminal afterwards.
func (b *Builder) Finalize() ([]byte, error) {
	if b.state != stateCTAAdded {
		return nil, fmt.Errorf("blueprint builder: finalize out of order (state %s)", stateNames[b.state])
	}

	var buf bytes.Buffer
	if err := b.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("blueprint builder: serialize: %w", err)
	}
	b.state = stateFinalized
	b.sections = append(b.sections, "footer")
	return buf.Bytes(), nil
}

// Sections lists the sections produced so far, in order. After a successful
// Finalize this is always the full eight-section sequence.
func (b *Builder) Sections() []string {
	out := make([]string, len(b.sections))
	copy(out, b.sections)
	return out
}

// PageCount reports the number of pages laid out so far.
func (b *Builder) PageCount() int {
	return b.pdf.PageCount()
}

func formatNumber(v float64) string {
	return withCommas(int64(math.Round(v)))
}

func formatMoney(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return "-$" + withCommas(-n)
	}
	return "$" + withCommas(n)
}

func withCommas(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}
