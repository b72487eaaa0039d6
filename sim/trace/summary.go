package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalRejections     int            `json:"total_rejections"`
	RejectedStarts      int            `json:"rejected_starts"`
	RejectedReturns     int            `json:"rejected_returns"`
	UniqueStations      int            `json:"unique_stations"`
	StationDistribution map[string]int `json:"station_distribution"` // station ID → count of rejections
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		StationDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalRejections = len(st.Rejections)
	for _, r := range st.Rejections {
		switch r.Op {
		case OpTakeBike:
			summary.RejectedStarts++
		case OpReturnBike:
			summary.RejectedReturns++
		}
		summary.StationDistribution[r.StationID]++
	}

	summary.UniqueStations = len(summary.StationDistribution)

	return summary
}
