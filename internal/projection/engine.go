package projection

import (
	"fmt"
	"strconv"
	"strings"
)

// Inputs are the three business numbers a prospect submits. All three must be
// present before a projection is computed; the engine never runs on partial
// input.
type Inputs struct {
	MonthlyRevenue float64 `json:"monthly_revenue"`
	CurrentLeads   float64 `json:"current_leads"`
	AvgJobValue    float64 `json:"avg_job_value"`
}

// Result is the derived projection. It is ephemeral: recomputed on every
// input change and only captured into a record at submission time.
type Result struct {
	MonthlyAdSpend   float64 `json:"monthly_ad_spend"`
	ProjectedLeads   float64 `json:"projected_leads"`
	ProjectedRevenue float64 `json:"projected_revenue"`
	ROAS             float64 `json:"roas"`
	AnnualGrowth     float64 `json:"annual_growth"`
}

// ParseInputs converts the raw form strings into Inputs. Every field must be
// a non-empty string parseable as a non-negative number; a failure here
// means the caller withholds the projection entirely.
func ParseInputs(revenue, leads, jobValue string) (Inputs, error) {
	r, err := parseField("monthly_revenue", revenue)
	if err != nil {
		return Inputs{}, err
	}
	l, err := parseField("current_leads", leads)
	if err != nil {
		return Inputs{}, err
	}
	j, err := parseField("avg_job_value", jobValue)
	if err != nil {
		return Inputs{}, err
	}
	return Inputs{MonthlyRevenue: r, CurrentLeads: l, AvgJobValue: j}, nil
}

func parseField(name, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", name)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative", name)
	}
	return v, nil
}

// Compute derives the growth projection for one vertical. Pure and
// deterministic; no rounding happens here, display layers round for
// presentation. Inputs are assumed pre-validated by the caller: negative
// numbers are not clamped and flow through proportionally.
func Compute(in Inputs, v VerticalProfile) Result {
	projectedLeads := in.CurrentLeads * v.LeadGrowthMultiplier
	projectedRevenue := projectedLeads * v.ConversionRate * in.AvgJobValue
	return Result{
		MonthlyAdSpend:   v.MonthlyMarketingSpend,
		ProjectedLeads:   projectedLeads,
		ProjectedRevenue: projectedRevenue,
		ROAS:             projectedRevenue / v.MonthlyMarketingSpend,
		AnnualGrowth:     (projectedRevenue - in.MonthlyRevenue) * 12,
	}
}
