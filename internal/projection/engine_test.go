package projection

import (
	"math"
	"testing"
)

func TestComputeCleaningService(t *testing.T) {
	v := ProfileForVertical("cleaning-service")
	in := Inputs{MonthlyRevenue: 10000, CurrentLeads: 20, AvgJobValue: 250}
	got := Compute(in, v)

	if got.ProjectedLeads != 70 {
		t.Fatalf("projected leads: expected 70, got %v", got.ProjectedLeads)
	}
	if got.ProjectedRevenue != 4375 {
		t.Fatalf("projected revenue: expected 4375, got %v", got.ProjectedRevenue)
	}
	if math.Abs(got.ROAS-4375.0/1500.0) > 1e-9 {
		t.Fatalf("roas: expected %v, got %v", 4375.0/1500.0, got.ROAS)
	}
	if got.AnnualGrowth != -67500 {
		t.Fatalf("annual growth: expected -67500, got %v", got.AnnualGrowth)
	}
	if got.MonthlyAdSpend != 1500 {
		t.Fatalf("monthly ad spend: expected 1500, got %v", got.MonthlyAdSpend)
	}
}

func TestComputeDeterministic(t *testing.T) {
	v := ProfileForVertical("hvac")
	in := Inputs{MonthlyRevenue: 42000, CurrentLeads: 35, AvgJobValue: 900}
	first := Compute(in, v)
	for i := 0; i < 10; i++ {
		if got := Compute(in, v); got != first {
			t.Fatalf("call %d diverged: %+v != %+v", i, got, first)
		}
	}
}

func TestComputeMonotonicInCurrentLeads(t *testing.T) {
	v := ProfileForVertical("plumbing")
	prev := Compute(Inputs{MonthlyRevenue: 5000, CurrentLeads: 1, AvgJobValue: 400}, v)
	for leads := 2.0; leads <= 50; leads++ {
		got := Compute(Inputs{MonthlyRevenue: 5000, CurrentLeads: leads, AvgJobValue: 400}, v)
		if got.ProjectedLeads <= prev.ProjectedLeads {
			t.Fatalf("projected leads not strictly increasing at %v", leads)
		}
		if got.ProjectedRevenue <= prev.ProjectedRevenue {
			t.Fatalf("projected revenue not strictly increasing at %v", leads)
		}
		prev = got
	}
}

func TestComputeDoesNotClampNegatives(t *testing.T) {
	// The engine reproduces negative inputs proportionally; clamping is the
	// caller's job via ParseInputs.
	v := ProfileForVertical("roofing")
	got := Compute(Inputs{MonthlyRevenue: 0, CurrentLeads: -10, AvgJobValue: 100}, v)
	if got.ProjectedLeads != -30 {
		t.Fatalf("expected -30 projected leads, got %v", got.ProjectedLeads)
	}
	if got.ProjectedRevenue >= 0 {
		t.Fatalf("expected negative projected revenue, got %v", got.ProjectedRevenue)
	}
}

func TestParseInputs(t *testing.T) {
	in, err := ParseInputs(" 10000 ", "20", "250.5")
	if err != nil {
		t.Fatalf("ParseInputs: %v", err)
	}
	if in.MonthlyRevenue != 10000 || in.CurrentLeads != 20 || in.AvgJobValue != 250.5 {
		t.Fatalf("unexpected inputs: %+v", in)
	}

	cases := []struct{ revenue, leads, job string }{
		{"", "20", "250"},
		{"10000", "", "250"},
		{"10000", "20", ""},
		{"abc", "20", "250"},
		{"10000", "-3", "250"},
	}
	for _, c := range cases {
		if _, err := ParseInputs(c.revenue, c.leads, c.job); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}
