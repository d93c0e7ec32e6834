package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// CohortResult bundles one cohort's current snapshot with its prior
// snapshot and diffs when comparison mode is active.
type CohortResult struct {
	Cohort         string            `json:"cohort"`
	Metrics        Metrics           `json:"metrics"`
	CompletionRate float64           `json:"completion_rate"`
	PriorMetrics   Metrics           `json:"prior_metrics,omitempty"`
	Diffs          map[string]string `json:"diffs,omitempty"`
	RateDiff       string            `json:"rate_diff,omitempty"`
}

// Report is the full output of one analysis run.
type Report struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Comparison  bool         `json:"comparison"`
	Para        CohortResult `json:"paraprofessionals"`
	Teacher     CohortResult `json:"teachers"`
}

func buildCohortResult(cohort Cohort, current, prior Metrics, rate RateSpec, comparison bool) CohortResult {
	result := CohortResult{
		Cohort:         cohort.String(),
		Metrics:        current,
		CompletionRate: rate.SafeRate(current),
	}
	if comparison {
		result.PriorMetrics = prior
		result.Diffs = DiffMetrics(current, prior)
		result.RateDiff = DiffRate(current, prior, rate)
	}
	return result
}

func (r Report) diffSuffix(result CohortResult, key string) string {
	if !r.Comparison {
		return ""
	}
	if diff := result.Diffs[key]; diff != "0" {
		return fmt.Sprintf(" (%s)", diff)
	}
	return ""
}

func (r Report) rateSuffix(result CohortResult) string {
	if !r.Comparison || result.RateDiff == "0%" {
		return ""
	}
	return fmt.Sprintf(" (%s)", result.RateDiff)
}

func printReport(report Report) {
	fmt.Println("Substitute Renewal Analytics")
	fmt.Println(strings.Repeat("=", 38))
	fmt.Printf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04"))
	if report.Comparison {
		fmt.Println("Comparison mode: prior snapshot loaded")
	}

	para := report.Para
	fmt.Println("\nSubstitute paraprofessionals")
	fmt.Println(strings.Repeat("-", 38))
	fmt.Printf("Total eligible: %s%s\n", formatCount(para.Metrics["total_eligible"]), report.diffSuffix(para, "total_eligible"))
	fmt.Printf("Completed: %s%s\n", formatCount(para.Metrics["total_complete"]), report.diffSuffix(para, "total_complete"))
	fmt.Printf("Outstanding: %s%s\n", formatCount(para.Metrics["total_outstanding"]), report.diffSuffix(para, "total_outstanding"))
	fmt.Printf("Completion rate: %s%s\n", formatPercent(para.CompletionRate), report.rateSuffix(para))
	fmt.Printf("RA not complete: %s | RA met, other outstanding: %s\n",
		formatCount(para.Metrics["ra_not_complete"]),
		formatCount(para.Metrics["ra_complete_other_outstanding"]))
	fmt.Printf("Days only: %s | ATAS only: %s | Autism only: %s | Days & others: %s\n",
		formatCount(para.Metrics["days_worked_only"]),
		formatCount(para.Metrics["atas_only"]),
		formatCount(para.Metrics["autism_workshop_only"]),
		formatCount(para.Metrics["days_and_other_requirements"]))
	fmt.Printf("Suspended 2SS: %s | 2SR: %s\n",
		formatCount(para.Metrics["total_suspended_2ss"]),
		formatCount(para.Metrics["total_suspended_2sr"]))

	teacher := report.Teacher
	fmt.Println("\nSubstitute teachers")
	fmt.Println(strings.Repeat("-", 38))
	fmt.Printf("Total eligible: %s%s\n", formatCount(teacher.Metrics["total_eligible"]), report.diffSuffix(teacher, "total_eligible"))
	fmt.Printf("PRC/PRU eligible: %s%s\n", formatCount(teacher.Metrics["total_prc_pru_eligible"]), report.diffSuffix(teacher, "total_prc_pru_eligible"))
	fmt.Printf("PRC/PRU completed: %s%s\n", formatCount(teacher.Metrics["total_prc_pru_complete"]), report.diffSuffix(teacher, "total_prc_pru_complete"))
	fmt.Printf("PRC/PRU outstanding: %s%s\n", formatCount(teacher.Metrics["total_prc_pru_outstanding"]), report.diffSuffix(teacher, "total_prc_pru_outstanding"))
	fmt.Printf("PRC/PRU completion rate: %s%s\n", formatPercent(teacher.CompletionRate), report.rateSuffix(teacher))
	fmt.Printf("RA not complete: %s | RA met, other outstanding: %s\n",
		formatCount(teacher.Metrics["prc_pru_ra_not_complete"]),
		formatCount(teacher.Metrics["prc_pru_met_ra_other_outstanding"]))
	fmt.Printf("Days only: %s | Autism only: %s | Other reqs only: %s | Days & others: %s\n",
		formatCount(teacher.Metrics["prc_pru_days_worked_only"]),
		formatCount(teacher.Metrics["prc_pru_autism_workshop_only"]),
		formatCount(teacher.Metrics["prc_pru_other_requirements_only"]),
		formatCount(teacher.Metrics["prc_pru_days_and_other_requirements"]))
	fmt.Printf("On leave (PRL): %s | Retirees (PRR): %s | PRR complete: %s | PRR outstanding: %s\n",
		formatCount(teacher.Metrics["total_teachers_on_leave"]),
		formatCount(teacher.Metrics["total_retirees"]),
		formatCount(teacher.Metrics["total_prr_complete"]),
		formatCount(teacher.Metrics["total_prr_outstanding"]))
	fmt.Printf("Suspended 2SS: %s | 2SR: %s\n",
		formatCount(teacher.Metrics["total_suspended_2ss"]),
		formatCount(teacher.Metrics["total_suspended_2sr"]))
}

func writeJSON(report Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
