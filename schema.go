package main

import (
	"strconv"
	"strings"
)

// Field names are stable keys decoupled from CSV header spellings.
const (
	fieldStatus         = "status"
	fieldRA             = "reasonable_assurance"
	fieldDaysWorked     = "days_worked"
	fieldSuspensionCode = "suspension_code"
	fieldCertified      = "certified"
	fieldRenewalClass   = "renewal_classification"

	reqChildAbuse         = "child_abuse_workshop"
	reqViolencePrevention = "violence_prevention_workshop"
	reqDASA               = "dasa_workshop"
	reqSubHub             = "subhub_training"
	reqStateExam          = "state_exam"
	reqAutism             = "autism_workshop"
	reqEdCredits          = "ed_credits"
	reqTeachProfile       = "teach_profile"
	reqBachelorDegree     = "bachelor_degree"
)

// FieldSpec declares one named field and the CSV header spellings that
// may carry it. Every field is optional: a missing column yields the
// empty string (0 for days worked).
type FieldSpec struct {
	Name    string
	Headers []string
}

// DatasetSchema is the declared column contract for one cohort.
// Requirements lists, in evaluation order, the fields that form the
// renewal requirement set for bucket assignment.
type DatasetSchema struct {
	Cohort       Cohort
	Fields       []FieldSpec
	Requirements []string
}

var commonFields = []FieldSpec{
	{Name: fieldStatus, Headers: []string{"Status"}},
	{Name: fieldRA, Headers: []string{"Reasonable Assurance"}},
	{Name: fieldDaysWorked, Headers: []string{"Days Wrkd in School Year", "Days Worked"}},
	{Name: fieldSuspensionCode, Headers: []string{"Suspension Reason Code", "Suspension Code"}},
	{Name: reqChildAbuse, Headers: []string{"Child Abuse Workshop"}},
	{Name: reqViolencePrevention, Headers: []string{"Violence Prevention Workshop"}},
	{Name: reqDASA, Headers: []string{"DASA Workshop"}},
	{Name: reqSubHub, Headers: []string{"SubHub Training"}},
	{Name: reqStateExam, Headers: []string{"State Exam"}},
	{Name: reqAutism, Headers: []string{"Autism Workshop"}},
}

var paraSchema = DatasetSchema{
	Cohort: CohortPara,
	Fields: commonFields,
	Requirements: []string{
		reqChildAbuse,
		reqViolencePrevention,
		reqDASA,
		reqSubHub,
		reqStateExam,
		reqAutism,
	},
}

var teacherSchema = DatasetSchema{
	Cohort: CohortTeacher,
	Fields: append(append([]FieldSpec{}, commonFields...),
		FieldSpec{Name: fieldCertified, Headers: []string{"Certified"}},
		FieldSpec{Name: fieldRenewalClass, Headers: []string{"Renewal Classification"}},
		FieldSpec{Name: reqEdCredits, Headers: []string{"Ed Credits"}},
		FieldSpec{Name: reqTeachProfile, Headers: []string{"TEACH Profile"}},
		FieldSpec{Name: reqBachelorDegree, Headers: []string{"Bachelor Degree"}},
	),
	Requirements: []string{
		reqChildAbuse,
		reqViolencePrevention,
		reqDASA,
		reqSubHub,
		reqStateExam,
		reqEdCredits,
		reqTeachProfile,
		reqBachelorDegree,
		reqAutism,
	},
}

// Row holds one person record as trimmed raw field values keyed by
// field name. Absent fields read as "".
type Row map[string]string

func (r Row) Field(name string) string {
	return r[name]
}

func (r Row) DaysWorked() int {
	return safeInt(r[fieldDaysWorked])
}

// columnIndex maps declared field names to CSV column positions for
// one concrete header row; -1 means the column is absent.
func (s DatasetSchema) columnIndex(headers []string) map[string]int {
	normalized := make(map[string]int, len(headers))
	for idx, header := range headers {
		key := normalizeHeader(header)
		if _, exists := normalized[key]; !exists {
			normalized[key] = idx
		}
	}
	index := make(map[string]int, len(s.Fields))
	for _, field := range s.Fields {
		index[field.Name] = -1
		for _, candidate := range field.Headers {
			if idx, ok := normalized[normalizeHeader(candidate)]; ok {
				index[field.Name] = idx
				break
			}
		}
	}
	return index
}

func (s DatasetSchema) rowFromRecord(record []string, index map[string]int) Row {
	row := make(Row, len(s.Fields))
	for _, field := range s.Fields {
		row[field.Name] = recordValue(record, index[field.Name])
	}
	return row
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func recordValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// safeInt mirrors the conservative numeric default: anything that does
// not parse as a number counts as zero days, and days never go
// negative.
func safeInt(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if parsed, err := strconv.Atoi(value); err == nil {
		if parsed < 0 {
			return 0
		}
		return parsed
	}
	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		if parsed < 0 {
			return 0
		}
		return int(parsed)
	}
	return 0
}
