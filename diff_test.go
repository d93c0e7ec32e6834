package main

import "testing"

func TestDiffMetricsSelfIsZero(t *testing.T) {
	metrics := Metrics{"total_eligible": 120, "total_complete": 80, "total_outstanding": 40}
	diffs := DiffMetrics(metrics, metrics)
	for key, diff := range diffs {
		if diff != "0" {
			t.Fatalf("self diff for %s = %s, want 0", key, diff)
		}
	}
	if got := DiffRate(metrics, metrics, paraRate); got != "0%" {
		t.Fatalf("self rate diff = %s, want 0%%", got)
	}
}

func TestDiffMetricsSignedFormatting(t *testing.T) {
	current := Metrics{"total_eligible": 120, "total_complete": 90, "total_outstanding": 30}
	prior := Metrics{"total_eligible": 100, "total_complete": 95, "total_outstanding": 30}

	diffs := DiffMetrics(current, prior)
	if diffs["total_eligible"] != "+20" {
		t.Fatalf("eligible diff = %s, want +20", diffs["total_eligible"])
	}
	if diffs["total_complete"] != "-5" {
		t.Fatalf("complete diff = %s, want -5", diffs["total_complete"])
	}
	if diffs["total_outstanding"] != "0" {
		t.Fatalf("outstanding diff = %s, want 0", diffs["total_outstanding"])
	}
}

func TestDiffMetricsAntisymmetric(t *testing.T) {
	a := Metrics{"x": 7, "y": 1500, "z": 3}
	b := Metrics{"x": 10, "y": 250, "z": 3}

	forward := DiffMetrics(a, b)
	backward := DiffMetrics(b, a)

	want := map[string][2]string{
		"x": {"-3", "+3"},
		"y": {"+1,250", "-1,250"},
		"z": {"0", "0"},
	}
	for key, pair := range want {
		if forward[key] != pair[0] || backward[key] != pair[1] {
			t.Fatalf("key %s: got (%s, %s), want (%s, %s)",
				key, forward[key], backward[key], pair[0], pair[1])
		}
	}
}

func TestDiffRateOneDecimal(t *testing.T) {
	current := Metrics{"total_eligible": 2, "total_complete": 1}
	prior := Metrics{"total_eligible": 3, "total_complete": 1}

	if got := DiffRate(current, prior, paraRate); got != "+16.7%" {
		t.Fatalf("rate diff = %s, want +16.7%%", got)
	}
	if got := DiffRate(prior, current, paraRate); got != "-16.7%" {
		t.Fatalf("rate diff = %s, want -16.7%%", got)
	}
}

func TestSafeRateFloorsDenominator(t *testing.T) {
	empty := Metrics{"total_eligible": 0, "total_complete": 0}
	if got := paraRate.SafeRate(empty); got != 0 {
		t.Fatalf("empty population rate = %f, want 0", got)
	}

	full := Metrics{"total_prc_pru_eligible": 200, "total_prc_pru_complete": 150}
	if got := teacherRate.SafeRate(full); !floatEqual(got, 75.0) {
		t.Fatalf("rate = %f, want 75.0", got)
	}
}

func TestFormatCount(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		7:        "7",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for value, want := range cases {
		if got := formatCount(value); got != want {
			t.Fatalf("formatCount(%d) = %s, want %s", value, got, want)
		}
	}
	if got := formatSigned(1234); got != "+1,234" {
		t.Fatalf("formatSigned(1234) = %s, want +1,234", got)
	}
}
