package blueprint

import (
	"strings"
	"testing"
	"time"
)

func TestBuildMarkdownContainsAllSections(t *testing.T) {
	md := BuildMarkdown(testProfile(), testResult(), "cleaning-service", time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))

	for _, heading := range []string{
		"# Cleaning Service Growth Blueprint",
		"## Executive Summary",
		"## Your Personalized Results",
		"## Growth Strategies",
		"## Implementation Guide",
		"## Success Stories",
		"## Your Next Step",
	} {
		if !strings.Contains(md, heading) {
			t.Fatalf("markdown missing %q", heading)
		}
	}
	if !strings.Contains(md, "Prepared for: Dana Whitfield, BrightClean LLC") {
		t.Fatal("markdown missing personalization line")
	}
	if !strings.Contains(md, "| Additional Leads Per Month | 50 |") {
		t.Fatal("markdown missing derived lead increase")
	}
	if !strings.Contains(md, confidentialityNote) {
		t.Fatal("markdown missing confidentiality notice")
	}
}

func TestBuildMarkdownWithoutCompany(t *testing.T) {
	profile := testProfile()
	profile.Company = ""
	md := BuildMarkdown(profile, testResult(), "hvac", time.Now())
	if !strings.Contains(md, "- Prepared for: Dana Whitfield\n") {
		t.Fatal("personalization line missing without company")
	}
	if strings.Contains(md, "Dana Whitfield,") {
		t.Fatal("dangling comma after name when company is empty")
	}
}

func TestBuildMarkdownUnknownVertical(t *testing.T) {
	md := BuildMarkdown(testProfile(), testResult(), "submarine-repair", time.Now())
	if !strings.Contains(md, "# Growth Blueprint") {
		t.Fatal("expected generic title for unknown vertical")
	}
	if !strings.Contains(md, "## Success Stories") {
		t.Fatal("section headers render even with empty lists")
	}
}
