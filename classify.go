package main

import "strings"

type Cohort int

const (
	CohortPara Cohort = iota
	CohortTeacher
)

func (c Cohort) String() string {
	if c == CohortTeacher {
		return "teacher"
	}
	return "para"
}

// ReqState is the tri-state classification of one requirement value.
// NotRequired items never enter ratio denominators.
type ReqState int

const (
	ReqOutstanding ReqState = iota
	ReqComplete
	ReqNotRequired
)

// Status is the per-row renewal completion status resolved from the
// Status column alone.
type Status int

const (
	StatusOutstanding Status = iota
	StatusComplete
)

// RAStatus is the resolved reasonable-assurance state.
type RAStatus int

const (
	RAOther RAStatus = iota
	RAComplete
	RANotComplete
	RALetterSent
)

// Bucket names the single outstanding-requirement reason a row is
// assigned, or BucketNone.
type Bucket int

const (
	BucketNone Bucket = iota
	BucketDaysOnly
	BucketAutismOnly
	BucketExamOnly
	BucketOtherReqsOnly
	BucketDaysAndOthers
)

func (b Bucket) String() string {
	switch b {
	case BucketDaysOnly:
		return "days_only"
	case BucketAutismOnly:
		return "autism_only"
	case BucketExamOnly:
		return "exam_only"
	case BucketOtherReqsOnly:
		return "other_requirements_only"
	case BucketDaysAndOthers:
		return "days_and_others"
	}
	return "none"
}

// Thresholds are fixed domain policy, kept as named configuration
// rather than scattered literals.
type Thresholds struct {
	ShortDaysMax     int     // upper bound (inclusive) for the low-days buckets
	FullDaysMin      int     // lower bound (inclusive) for the single-requirement buckets
	CompleteRatio    float64 // minimum Complete share of required items
	MultiOutstanding int     // minimum Outstanding count for days-and-others
}

var defaultThresholds = Thresholds{
	ShortDaysMax:     19,
	FullDaysMin:      20,
	CompleteRatio:    0.8,
	MultiOutstanding: 2,
}

const notRequiredSentinel = "NOT REQUIRED"

var completeVocabulary = map[string]bool{
	"COMPLETE": true,
	"PASSED":   true,
	"YES":      true,
	"PAID":     true,
	"PASSING":  true,
	"PASS":     true,
	"COMPL":    true,
	"Y":        true,
	"EXEMPT":   true,
}

// classifyRequirement maps a raw requirement value to its tri-state.
// Unrecognized and empty values fall through to Outstanding; the
// classifier never fails.
func classifyRequirement(raw string) ReqState {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == notRequiredSentinel {
		return ReqNotRequired
	}
	if completeVocabulary[value] {
		return ReqComplete
	}
	return ReqOutstanding
}

// resolveStatus maps the Status column to Complete/Outstanding.
// Anything unrecognized counts as Outstanding.
func resolveStatus(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "COMPL", "COMPLETE":
		return StatusComplete
	case "OUT", "OUTSTANDING":
		return StatusOutstanding
	}
	return StatusOutstanding
}

func resolveRA(raw string) RAStatus {
	value := strings.ToUpper(strings.TrimSpace(raw))
	switch value {
	case "COMPLETE", "LETTER NOT SENT", "PASSED":
		return RAComplete
	case "NOT COMPLETE":
		return RANotComplete
	}
	if strings.Contains(value, "LETTER SENT") {
		return RALetterSent
	}
	return RAOther
}

// classifyRequirements evaluates every requirement field of the
// schema for one row.
func classifyRequirements(row Row, schema DatasetSchema) map[string]ReqState {
	states := make(map[string]ReqState, len(schema.Requirements))
	for _, name := range schema.Requirements {
		states[name] = classifyRequirement(row.Field(name))
	}
	return states
}

func outstandingCount(states map[string]ReqState) int {
	count := 0
	for _, state := range states {
		if state == ReqOutstanding {
			count++
		}
	}
	return count
}

// completeRatio returns the Complete share of required items. ok is
// false when nothing is required; such rows are excluded from
// ratio-gated buckets.
func completeRatio(states map[string]ReqState) (float64, bool) {
	required := 0
	complete := 0
	for _, state := range states {
		switch state {
		case ReqComplete:
			required++
			complete++
		case ReqOutstanding:
			required++
		}
	}
	if required == 0 {
		return 0, false
	}
	return float64(complete) / float64(required), true
}

// ratioExcluding is completeRatio over the required items other than
// the named one.
func ratioExcluding(states map[string]ReqState, exclude string) (float64, bool) {
	others := make(map[string]ReqState, len(states))
	for name, state := range states {
		if name != exclude {
			others[name] = state
		}
	}
	return completeRatio(others)
}

// soloOutstanding reports whether the named requirement is the row's
// effective blocker: it is Outstanding while the other required items
// are mostly Complete.
func soloOutstanding(states map[string]ReqState, name string, t Thresholds) bool {
	if states[name] != ReqOutstanding {
		return false
	}
	ratio, ok := ratioExcluding(states, name)
	return ok && ratio >= t.CompleteRatio
}

// assignBucket is the pure per-row bucket predicate. It applies only
// to the outstanding subset of the RA-complete cohort and returns at
// most one bucket, evaluated in fixed priority order: the low-days
// buckets first (DaysOnly before DaysAndOthers), then the
// single-requirement buckets for rows at or above the full-days line.
func assignBucket(row Row, schema DatasetSchema, t Thresholds) Bucket {
	if resolveStatus(row.Field(fieldStatus)) != StatusOutstanding {
		return BucketNone
	}
	if resolveRA(row.Field(fieldRA)) != RAComplete {
		return BucketNone
	}

	states := classifyRequirements(row, schema)
	days := row.DaysWorked()

	if days <= t.ShortDaysMax {
		if ratio, ok := completeRatio(states); ok && ratio >= t.CompleteRatio {
			return BucketDaysOnly
		}
		if outstandingCount(states) >= t.MultiOutstanding {
			return BucketDaysAndOthers
		}
		return BucketNone
	}
	if days < t.FullDaysMin {
		return BucketNone
	}

	if soloOutstanding(states, reqAutism, t) {
		return BucketAutismOnly
	}
	switch schema.Cohort {
	case CohortPara:
		if soloOutstanding(states, reqStateExam, t) {
			return BucketExamOnly
		}
	case CohortTeacher:
		if states[reqAutism] == ReqComplete && outstandingCount(states) >= 1 {
			return BucketOtherReqsOnly
		}
	}
	return BucketNone
}
