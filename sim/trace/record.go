// Package trace provides capacity-rejection recording for simulation analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "time"

// Operation names as recorded in RejectionRecord.Op.
const (
	OpTakeBike   = "take-bike"
	OpReturnBike = "return-bike"
)

// RejectionRecord captures a single station operation that was refused
// because the station was empty (take) or full (return).
type RejectionRecord struct {
	RideID    int       `json:"ride_id"`
	Clock     time.Time `json:"clock"`
	StationID string    `json:"station_id"`
	Op        string    `json:"op"`
	Reason    string    `json:"reason"`
}
