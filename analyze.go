package main

import "strings"

// Metrics is one flat analysis snapshot: metric name to count.
type Metrics map[string]int

const (
	pendingTerminationMarker = "Pending Term for FT"
	suspensionCode2SS        = "2SS"
	suspensionCode2SR        = "2SR"

	renewalClassRetiree = "Retiree"
	renewalClassOnLeave = "On Leave"
)

// paraMetricKeys and teacherMetricKeys fix the key set of each
// snapshot so that current and prior runs always diff cleanly, and so
// a missing input file degrades to an all-zero snapshot of the same
// shape.
var paraMetricKeys = []string{
	"total_eligible",
	"total_complete",
	"total_outstanding",
	"ra_not_complete",
	"ra_complete_other_outstanding",
	"days_worked_only",
	"atas_only",
	"autism_workshop_only",
	"days_and_other_requirements",
	"total_suspended_2ss",
	"total_suspended_2sr",
}

var teacherMetricKeys = []string{
	"total_eligible",
	"total_prc_pru_eligible",
	"total_prc_pru_complete",
	"total_prc_pru_outstanding",
	"prc_pru_ra_not_complete",
	"prc_pru_met_ra_other_outstanding",
	"prc_pru_days_worked_only",
	"prc_pru_autism_workshop_only",
	"prc_pru_other_requirements_only",
	"prc_pru_days_and_other_requirements",
	"total_teachers_on_leave",
	"total_retirees",
	"total_prr_complete",
	"total_prr_outstanding",
	"total_suspended_2ss",
	"total_suspended_2sr",
}

func zeroMetrics(keys []string) Metrics {
	metrics := make(Metrics, len(keys))
	for _, key := range keys {
		metrics[key] = 0
	}
	return metrics
}

func raNotComplete(ra RAStatus) bool {
	return ra == RANotComplete || ra == RALetterSent
}

func countSuspensions(rows []Row, metrics Metrics) {
	for _, row := range rows {
		switch row.Field(fieldSuspensionCode) {
		case suspensionCode2SS:
			metrics["total_suspended_2ss"]++
		case suspensionCode2SR:
			metrics["total_suspended_2sr"]++
		}
	}
}

// AnalyzeParaprofessionals runs the paraprofessional pipeline over one
// snapshot. The population is every row; there are no exclusions.
func AnalyzeParaprofessionals(rows []Row, t Thresholds) Metrics {
	metrics := zeroMetrics(paraMetricKeys)
	metrics["total_eligible"] = len(rows)

	for _, row := range rows {
		status := resolveStatus(row.Field(fieldStatus))
		ra := resolveRA(row.Field(fieldRA))

		if status == StatusComplete {
			metrics["total_complete"]++
		} else {
			metrics["total_outstanding"]++
		}
		if raNotComplete(ra) {
			metrics["ra_not_complete"]++
		}
		if ra == RAComplete && status == StatusOutstanding {
			metrics["ra_complete_other_outstanding"]++
		}

		switch assignBucket(row, paraSchema, t) {
		case BucketDaysOnly:
			metrics["days_worked_only"]++
		case BucketAutismOnly:
			metrics["autism_workshop_only"]++
		case BucketExamOnly:
			metrics["atas_only"]++
		case BucketDaysAndOthers:
			metrics["days_and_other_requirements"]++
		}
	}

	countSuspensions(rows, metrics)
	return metrics
}

func isCertified(row Row) (certified bool, known bool) {
	switch strings.ToUpper(strings.TrimSpace(row.Field(fieldCertified))) {
	case "Y":
		return true, true
	case "N":
		return false, true
	}
	return false, false
}

func hasRenewalClass(row Row, class string) bool {
	return strings.EqualFold(strings.TrimSpace(row.Field(fieldRenewalClass)), class)
}

// AnalyzeTeachers runs the teacher pipeline over one snapshot. Rows
// carrying the pending-termination marker are excluded up front; the
// PRC/PRU sub-population further excludes retirees and on-leave
// classifications and splits on the certified flag.
func AnalyzeTeachers(rows []Row, t Thresholds) Metrics {
	metrics := zeroMetrics(teacherMetricKeys)

	eligible := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.TrimSpace(row.Field(fieldStatus)) == pendingTerminationMarker {
			continue
		}
		eligible = append(eligible, row)
	}
	metrics["total_eligible"] = len(eligible)

	for _, row := range eligible {
		status := resolveStatus(row.Field(fieldStatus))

		if hasRenewalClass(row, renewalClassOnLeave) {
			metrics["total_teachers_on_leave"]++
			continue
		}
		if hasRenewalClass(row, renewalClassRetiree) {
			metrics["total_retirees"]++
			if status == StatusComplete {
				metrics["total_prr_complete"]++
			} else {
				metrics["total_prr_outstanding"]++
			}
			continue
		}

		if _, known := isCertified(row); !known {
			continue
		}

		metrics["total_prc_pru_eligible"]++
		if status == StatusComplete {
			metrics["total_prc_pru_complete"]++
		} else {
			metrics["total_prc_pru_outstanding"]++
		}

		ra := resolveRA(row.Field(fieldRA))
		if raNotComplete(ra) {
			metrics["prc_pru_ra_not_complete"]++
		}
		if ra == RAComplete && status == StatusOutstanding {
			metrics["prc_pru_met_ra_other_outstanding"]++
		}

		switch assignBucket(row, teacherSchema, t) {
		case BucketDaysOnly:
			metrics["prc_pru_days_worked_only"]++
		case BucketAutismOnly:
			metrics["prc_pru_autism_workshop_only"]++
		case BucketOtherReqsOnly:
			metrics["prc_pru_other_requirements_only"]++
		case BucketDaysAndOthers:
			metrics["prc_pru_days_and_other_requirements"]++
		}
	}

	countSuspensions(eligible, metrics)
	return metrics
}
