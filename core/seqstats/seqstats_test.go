package seqstats

import (
	"math"
	"testing"
)

func TestBaseCountsAndGC(t *testing.T) {
	cases := []struct {
		seq    string
		counts [4]int
		gc     float64
	}{
		{"", [4]int{}, 0},
		{"ACGT", [4]int{1, 1, 1, 1}, 0.5},
		{"GGGCCC", [4]int{0, 3, 3, 0}, 1},
		{"AAATTT", [4]int{3, 0, 0, 3}, 0},
		{"ACGNNT", [4]int{1, 1, 1, 1}, 0.5}, // non-ACGT ignored
	}
	for _, tc := range cases {
		if got := BaseCounts(tc.seq); got != tc.counts {
			t.Errorf("BaseCounts(%q) = %v, want %v", tc.seq, got, tc.counts)
		}
		if got := GCFraction(tc.seq); math.Abs(got-tc.gc) > 1e-12 {
			t.Errorf("GCFraction(%q) = %v, want %v", tc.seq, got, tc.gc)
		}
	}
}

func TestRunsAndMeanRun(t *testing.T) {
	cases := []struct {
		seq  string
		runs []float64
		mean float64
	}{
		{"", nil, 0},
		{"A", []float64{1}, 1},
		{"AAAA", []float64{4}, 4},
		{"AACCCT", []float64{2, 3, 1}, 2},
		{"ACGT", []float64{1, 1, 1, 1}, 1},
	}
	for _, tc := range cases {
		got := Runs(tc.seq)
		if len(got) != len(tc.runs) {
			t.Errorf("Runs(%q) = %v, want %v", tc.seq, got, tc.runs)
			continue
		}
		for i := range got {
			if got[i] != tc.runs[i] {
				t.Errorf("Runs(%q)[%d] = %v, want %v", tc.seq, i, got[i], tc.runs[i])
			}
		}
		if m := MeanRun(tc.seq); math.Abs(m-tc.mean) > 1e-12 {
			t.Errorf("MeanRun(%q) = %v, want %v", tc.seq, m, tc.mean)
		}
	}
}

func TestEntropy(t *testing.T) {
	if e := Entropy("ACGTACGT"); math.Abs(e-math.Log(4)) > 1e-12 {
		t.Errorf("uniform entropy = %v, want ln 4 = %v", e, math.Log(4))
	}
	if e := Entropy("AAAA"); e != 0 {
		t.Errorf("single-base entropy = %v, want 0", e)
	}
	if e := Entropy(""); e != 0 {
		t.Errorf("empty entropy = %v, want 0", e)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize("GGCCAAT")
	if s.Length != 7 {
		t.Errorf("Length = %d", s.Length)
	}
	if s.Counts != [4]int{2, 2, 2, 1} {
		t.Errorf("Counts = %v", s.Counts)
	}
	if math.Abs(s.GC-4.0/7.0) > 1e-12 {
		t.Errorf("GC = %v", s.GC)
	}
	if math.Abs(s.MeanRun-7.0/4.0) > 1e-12 {
		t.Errorf("MeanRun = %v", s.MeanRun)
	}
}
