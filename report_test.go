package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := writeJSON(sampleReport(true), path); err != nil {
		t.Fatalf("write json: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read json: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if decoded.Para.Metrics["total_eligible"] != 120 {
		t.Fatalf("eligible = %d, want 120", decoded.Para.Metrics["total_eligible"])
	}
	if !decoded.Comparison {
		t.Fatal("comparison flag lost")
	}
	if decoded.Para.Diffs["total_eligible"] != "+20" {
		t.Fatalf("diff = %q, want +20", decoded.Para.Diffs["total_eligible"])
	}
}

func TestDiffSuffixFormatting(t *testing.T) {
	report := sampleReport(true)
	if got := report.diffSuffix(report.Para, "total_eligible"); got != " (+20)" {
		t.Fatalf("diff suffix = %q, want \" (+20)\"", got)
	}
	if got := report.diffSuffix(report.Para, "atas_only"); got != "" {
		t.Fatalf("zero diff suffix = %q, want empty", got)
	}

	plain := sampleReport(false)
	if got := plain.diffSuffix(plain.Para, "total_eligible"); got != "" {
		t.Fatalf("suffix without comparison = %q, want empty", got)
	}
}
