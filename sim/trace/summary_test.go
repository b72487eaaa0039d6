package trace

import "testing"

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelRejections})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all counts are zero
	if summary.TotalRejections != 0 {
		t.Errorf("expected 0 total rejections, got %d", summary.TotalRejections)
	}
	if summary.RejectedStarts != 0 || summary.RejectedReturns != 0 {
		t.Error("expected 0 rejected starts and returns")
	}
	if summary.UniqueStations != 0 {
		t.Errorf("expected 0 unique stations, got %d", summary.UniqueStations)
	}
	if len(summary.StationDistribution) != 0 {
		t.Error("expected empty station distribution")
	}
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with mixed start and return rejections
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelRejections})
	st.RecordRejection(RejectionRecord{RideID: 1, StationID: "a", Op: OpTakeBike})
	st.RecordRejection(RejectionRecord{RideID: 2, StationID: "b", Op: OpReturnBike})
	st.RecordRejection(RejectionRecord{RideID: 3, StationID: "a", Op: OpTakeBike})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	if summary.TotalRejections != 3 {
		t.Errorf("expected 3 total rejections, got %d", summary.TotalRejections)
	}
	if summary.RejectedStarts != 2 {
		t.Errorf("expected 2 rejected starts, got %d", summary.RejectedStarts)
	}
	if summary.RejectedReturns != 1 {
		t.Errorf("expected 1 rejected return, got %d", summary.RejectedReturns)
	}
	if summary.UniqueStations != 2 {
		t.Errorf("expected 2 unique stations, got %d", summary.UniqueStations)
	}
	if summary.StationDistribution["a"] != 2 {
		t.Errorf("expected 2 rejections at a, got %d", summary.StationDistribution["a"])
	}
}

func TestSummarize_NilTrace_SafeZeroValues(t *testing.T) {
	// GIVEN a nil trace
	// WHEN summarized
	summary := Summarize(nil)

	// THEN no panic, zero values
	if summary.TotalRejections != 0 {
		t.Errorf("expected 0, got %d", summary.TotalRejections)
	}
	if summary.StationDistribution == nil {
		t.Error("expected non-nil station distribution")
	}
}
