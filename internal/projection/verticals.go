package projection

import "fmt"

// VerticalProfile holds the constant assumptions for one industry vertical.
// The table is fixed at build time and never mutated.
type VerticalProfile struct {
	ID                    string  `json:"id"`
	Title                 string  `json:"title"`
	ConversionRate        float64 `json:"conversion_rate"`
	MonthlyMarketingSpend float64 `json:"monthly_marketing_spend"`
	LeadGrowthMultiplier  float64 `json:"lead_growth_multiplier"`
}

const GenericVertical = "growth"

var Verticals = map[string]VerticalProfile{
	"cleaning-service": {
		ID:                    "cleaning-service",
		Title:                 "Cleaning Service Growth Blueprint",
		ConversionRate:        0.25,
		MonthlyMarketingSpend: 1500,
		LeadGrowthMultiplier:  3.5,
	},
	"hvac": {
		ID:                    "hvac",
		Title:                 "HVAC Growth Blueprint",
		ConversionRate:        0.30,
		MonthlyMarketingSpend: 2500,
		LeadGrowthMultiplier:  3.2,
	},
	"plumbing": {
		ID:                    "plumbing",
		Title:                 "Plumbing Growth Blueprint",
		ConversionRate:        0.30,
		MonthlyMarketingSpend: 2000,
		LeadGrowthMultiplier:  3.4,
	},
	"electrical": {
		ID:                    "electrical",
		Title:                 "Electrical Contractor Growth Blueprint",
		ConversionRate:        0.28,
		MonthlyMarketingSpend: 1800,
		LeadGrowthMultiplier:  3.3,
	},
	"landscaping": {
		ID:                    "landscaping",
		Title:                 "Landscaping Growth Blueprint",
		ConversionRate:        0.22,
		MonthlyMarketingSpend: 1200,
		LeadGrowthMultiplier:  3.8,
	},
	"roofing": {
		ID:                    "roofing",
		Title:                 "Roofing Growth Blueprint",
		ConversionRate:        0.18,
		MonthlyMarketingSpend: 3000,
		LeadGrowthMultiplier:  3.0,
	},
	"home-service": {
		ID:                    "home-service",
		Title:                 "Home Service Growth Blueprint",
		ConversionRate:        0.24,
		MonthlyMarketingSpend: 1600,
		LeadGrowthMultiplier:  3.5,
	},
	GenericVertical: {
		ID:                    GenericVertical,
		Title:                 "Growth Blueprint",
		ConversionRate:        0.25,
		MonthlyMarketingSpend: 1500,
		LeadGrowthMultiplier:  3.5,
	},
}

// ProfileForVertical returns the profile for a vertical id, falling back to
// the generic profile for unknown ids.
func ProfileForVertical(id string) VerticalProfile {
	if p, ok := Verticals[id]; ok {
		return p
	}
	return Verticals[GenericVertical]
}

// KnownVertical reports whether id names an entry in the vertical table
// (the generic fallback does not count).
func KnownVertical(id string) bool {
	if id == GenericVertical {
		return false
	}
	_, ok := Verticals[id]
	return ok
}

// ValidateProfiles checks the constant table for values that would break the
// engine: a zero marketing spend would divide by zero in the ROAS step, and
// conversion rates outside (0,1) or non-positive multipliers produce
// nonsense projections. Run once at startup.
func ValidateProfiles() error {
	for id, p := range Verticals {
		if p.MonthlyMarketingSpend <= 0 {
			return fmt.Errorf("vertical %s: monthly marketing spend must be positive, got %v", id, p.MonthlyMarketingSpend)
		}
		if p.ConversionRate <= 0 || p.ConversionRate >= 1 {
			return fmt.Errorf("vertical %s: conversion rate must be in (0,1), got %v", id, p.ConversionRate)
		}
		if p.LeadGrowthMultiplier <= 0 {
			return fmt.Errorf("vertical %s: lead growth multiplier must be positive, got %v", id, p.LeadGrowthMultiplier)
		}
	}
	return nil
}
