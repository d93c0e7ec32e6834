package main

import "testing"

func TestColumnIndexHeaderVariants(t *testing.T) {
	headers := []string{
		"  status ",
		"DAYS WRKD IN SCHOOL YEAR",
		"reasonable_assurance",
		"Autism-Workshop",
		"Unrelated Column",
	}
	index := paraSchema.columnIndex(headers)

	if index[fieldStatus] != 0 {
		t.Fatalf("status column = %d, want 0", index[fieldStatus])
	}
	if index[fieldDaysWorked] != 1 {
		t.Fatalf("days worked column = %d, want 1", index[fieldDaysWorked])
	}
	if index[fieldRA] != 2 {
		t.Fatalf("reasonable assurance column = %d, want 2", index[fieldRA])
	}
	if index[reqAutism] != 3 {
		t.Fatalf("autism workshop column = %d, want 3", index[reqAutism])
	}
	if index[reqStateExam] != -1 {
		t.Fatalf("absent column should map to -1, got %d", index[reqStateExam])
	}
}

func TestRowFromRecordDefaults(t *testing.T) {
	headers := []string{"Status", "Days Wrkd in School Year"}
	index := paraSchema.columnIndex(headers)

	row := paraSchema.rowFromRecord([]string{"  Out  "}, index)
	if row.Field(fieldStatus) != "Out" {
		t.Fatalf("status = %q, want trimmed Out", row.Field(fieldStatus))
	}
	if row.DaysWorked() != 0 {
		t.Fatalf("short record days = %d, want 0", row.DaysWorked())
	}
	if row.Field(reqAutism) != "" {
		t.Fatalf("absent requirement should default empty, got %q", row.Field(reqAutism))
	}
}

func TestSafeInt(t *testing.T) {
	cases := map[string]int{
		"":      0,
		"  ":    0,
		"abc":   0,
		"12":    12,
		" 12 ":  12,
		"12.7":  12,
		"-3":    0,
		"-3.5":  0,
		"0":     0,
		"19":    19,
		"1e2":   100,
		"12abc": 0,
	}
	for value, want := range cases {
		if got := safeInt(value); got != want {
			t.Fatalf("safeInt(%q) = %d, want %d", value, got, want)
		}
	}
}
