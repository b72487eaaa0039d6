package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// --- bikeshare validate ---

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the station and ride files and report what a run would use",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := validateNetwork(cfg, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Validation failed: %v", err)
		}
	},
}

// validateNetwork builds a simulator from cfg without running it and writes
// a summary to w.
func validateNetwork(cfg RunConfig, w io.Writer) error {
	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}
	s, err := buildSimulator(cfg)
	if err != nil {
		return err
	}
	stations := s.Stations()
	capacity, bikes := 0, 0
	for _, st := range stations {
		capacity += st.Capacity
		bikes += st.Bikes
	}
	_, _ = fmt.Fprintf(w, "Stations      : %d (capacity %d, bikes %d)\n", len(stations), capacity, bikes)
	_, _ = fmt.Fprintf(w, "Rides         : %d\n", len(s.Rides()))
	_, _ = fmt.Fprintf(w, "Dropped rides : %d\n", s.DroppedRides())
	return nil
}
