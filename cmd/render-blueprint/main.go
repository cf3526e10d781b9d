package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rankforge/growth-console/internal/blueprint"
	"github.com/rankforge/growth-console/internal/projection"
	"github.com/rankforge/growth-console/internal/records"
)

// renderInput is the saved lead payload accepted on -input. The numeric
// fields mirror the landing-page form, already parsed.
type renderInput struct {
	Vertical string                  `json:"vertical"`
	Lead     records.BusinessProfile `json:"lead_data"`
}

func main() {
	inputPath := flag.String("input", "", "Path to saved lead JSON")
	outputPath := flag.String("output", "", "Path to write the blueprint PDF (defaults to the vertical's standard filename)")
	markdownPath := flag.String("markdown-output", "", "Optional path to write the markdown rendition")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input")
	}

	in, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	var payload renderInput
	if err := json.Unmarshal(in, &payload); err != nil {
		log.Fatalf("decode input JSON: %v", err)
	}
	if payload.Vertical == "" {
		payload.Vertical = projection.GenericVertical
	}

	v := projection.ProfileForVertical(payload.Vertical)
	result := projection.Compute(projection.Inputs{
		MonthlyRevenue: payload.Lead.MonthlyRevenue,
		CurrentLeads:   payload.Lead.CurrentLeads,
		AvgJobValue:    payload.Lead.AvgJobValue,
	}, v)

	pdf, err := blueprint.Generate(payload.Lead, result, payload.Vertical)
	if err != nil {
		log.Fatalf("build blueprint: %v", err)
	}

	out := *outputPath
	if out == "" {
		out = blueprint.Filename(payload.Vertical)
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		log.Fatalf("write pdf: %v", err)
	}
	fmt.Printf("wrote %s (%d bytes)\n", out, len(pdf))

	if *markdownPath != "" {
		md := blueprint.BuildMarkdown(payload.Lead, result, payload.Vertical, time.Now())
		if err := os.WriteFile(*markdownPath, []byte(md), 0o644); err != nil {
			log.Fatalf("write markdown: %v", err)
		}
	}
}
