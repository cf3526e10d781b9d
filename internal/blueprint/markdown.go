package blueprint

import (
	"fmt"
	"strings"
	"time"

	"github.com/rankforge/growth-console/internal/projection"
	"github.com/rankforge/growth-console/internal/records"
)

// BuildMarkdown renders the same eight blueprint sections as a markdown
// document. The console's HTML preview and print surfaces consume this
// rendition; the downloadable artifact is always the native PDF.
func BuildMarkdown(profile records.BusinessProfile, result projection.Result, vertical string, generatedAt time.Time) string {
	content := ContentForVertical(vertical)
	leadIncrease := result.ProjectedLeads - profile.CurrentLeads

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", content.Title)
	fmt.Fprintf(&b, "- Prepared by: %s\n", brandName)
	if strings.TrimSpace(profile.Name) != "" {
		line := fmt.Sprintf("- Prepared for: %s", profile.Name)
		if strings.TrimSpace(profile.Company) != "" {
			line += fmt.Sprintf(", %s", profile.Company)
		}
		fmt.Fprintf(&b, "%s\n", line)
	}
	fmt.Fprintf(&b, "- Date: %s\n\n", generatedAt.Format("2 January 2006"))

	fmt.Fprintf(&b, "## Executive Summary\n\n%s\n\n", content.Summary)

	fmt.Fprintf(&b, "## Your Personalized Results\n\n")
	fmt.Fprintf(&b, "| Current Situation | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Monthly Revenue | %s |\n", formatMoney(profile.MonthlyRevenue))
	fmt.Fprintf(&b, "| Monthly Leads | %s |\n", formatNumber(profile.CurrentLeads))
	fmt.Fprintf(&b, "| Average Job Value | %s |\n\n", formatMoney(profile.AvgJobValue))
	fmt.Fprintf(&b, "| Projected Results | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Projected Monthly Leads | %s |\n", formatNumber(result.ProjectedLeads))
	fmt.Fprintf(&b, "| Additional Leads Per Month | %s |\n", formatNumber(leadIncrease))
	fmt.Fprintf(&b, "| Projected Monthly Revenue | %s |\n", formatMoney(result.ProjectedRevenue))
	fmt.Fprintf(&b, "| Recommended Monthly Ad Spend | %s |\n", formatMoney(result.MonthlyAdSpend))
	fmt.Fprintf(&b, "| Return On Ad Spend | %.1fx |\n", result.ROAS)
	fmt.Fprintf(&b, "| Projected Annual Growth | %s |\n\n", formatMoney(result.AnnualGrowth))

	fmt.Fprintf(&b, "## Growth Strategies\n\n")
	for i, strat := range content.Strategies {
		fmt.Fprintf(&b, "### %d. %s\n\n%s\n\n", i+1, strat.Title, strat.Description)
		for _, step := range strat.Steps {
			fmt.Fprintf(&b, "- %s\n", step)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Implementation Guide\n\n")
	for _, month := range ImplementationPlan {
		fmt.Fprintf(&b, "### %s\n\n", month.Month)
		for _, task := range month.Tasks {
			fmt.Fprintf(&b, "- %s\n", task)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Success Stories\n\n")
	for _, story := range content.Stories {
		fmt.Fprintf(&b, "**%s** - %s in %s\n\n> %s\n\n", story.Business, story.Result, story.Timeframe, story.Quote)
	}

	fmt.Fprintf(&b, "## Your Next Step\n\n%s\n\n", ctaText(vertical))
	fmt.Fprintf(&b, "Call %s | Email %s | Visit %s\n\n", contactPhone, contactEmail, contactSite)

	fmt.Fprintf(&b, "---\n\n%s\n", confidentialityNote)
	return b.String()
}
