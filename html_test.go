package main

import (
	"os"
	"strings"
	"testing"
	"time"
)

func sampleReport(comparison bool) Report {
	current := zeroMetrics(paraMetricKeys)
	current["total_eligible"] = 120
	current["total_complete"] = 90
	current["total_outstanding"] = 30

	prior := zeroMetrics(paraMetricKeys)
	prior["total_eligible"] = 100
	prior["total_complete"] = 80
	prior["total_outstanding"] = 20

	teacherCurrent := zeroMetrics(teacherMetricKeys)
	teacherCurrent["total_eligible"] = 50
	teacherCurrent["total_prc_pru_eligible"] = 40
	teacherCurrent["total_prc_pru_complete"] = 30
	teacherCurrent["total_prc_pru_outstanding"] = 10

	teacherPrior := zeroMetrics(teacherMetricKeys)

	return Report{
		GeneratedAt: time.Date(2026, 7, 1, 9, 30, 0, 0, time.UTC),
		Comparison:  comparison,
		Para:        buildCohortResult(CohortPara, current, prior, paraRate, comparison),
		Teacher:     buildCohortResult(CohortTeacher, teacherCurrent, teacherPrior, teacherRate, comparison),
	}
}

func TestBuildDashboardViewDiffBadges(t *testing.T) {
	view := buildDashboardView(sampleReport(true), nil)

	summary := view.Sections[0]
	eligibleCard := summary.Cards[0]
	if eligibleCard.Value != "120" {
		t.Fatalf("eligible value = %q", eligibleCard.Value)
	}
	if eligibleCard.Diff != "+20" || !eligibleCard.Up {
		t.Fatalf("eligible diff badge = %q up=%v, want +20 up", eligibleCard.Diff, eligibleCard.Up)
	}

	rateBadge := summary.Cards[1]
	if rateBadge.Value != "75.0%" {
		t.Fatalf("rate value = %q, want 75.0%%", rateBadge.Value)
	}
	if rateBadge.Diff != "-5.0%" || rateBadge.Up {
		t.Fatalf("rate diff badge = %q up=%v, want -5.0%% down", rateBadge.Diff, rateBadge.Up)
	}
}

func TestBuildDashboardViewNoComparison(t *testing.T) {
	view := buildDashboardView(sampleReport(false), nil)
	for _, section := range view.Sections {
		for _, card := range section.Cards {
			if card.Diff != "" {
				t.Fatalf("card %q carries diff %q without comparison data", card.Label, card.Diff)
			}
		}
	}
}

func TestWriteDashboard(t *testing.T) {
	dir := t.TempDir()
	path, err := writeDashboard(sampleReport(true), []string{paraChartFile, teacherChartFile, combinedChartFile}, dir)
	if err != nil {
		t.Fatalf("write dashboard: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read dashboard: %v", err)
	}
	html := string(data)
	for _, want := range []string{
		"Substitute Renewal Analytics Dashboard",
		"Total SPAs Eligible for Renewal",
		"SPA Completion Rate",
		paraChartFile,
		combinedChartFile,
		"+20",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("dashboard missing %q", want)
		}
	}
}
