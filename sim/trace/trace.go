package trace

// TraceLevel controls the verbosity of rejection tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelRejections captures every ride start or return a station refused.
	TraceLevelRejections TraceLevel = "rejections"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:       true,
	TraceLevelRejections: true,
	"":                   true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// SimulationTrace collects rejection records during a simulation run.
type SimulationTrace struct {
	Config     TraceConfig
	Rejections []RejectionRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:     config,
		Rejections: make([]RejectionRecord, 0),
	}
}

// RecordRejection appends a rejection record.
func (st *SimulationTrace) RecordRejection(record RejectionRecord) {
	st.Rejections = append(st.Rejections, record)
}
