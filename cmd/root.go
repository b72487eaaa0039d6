package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gargshiv/bikeshare/sim"
	"github.com/gargshiv/bikeshare/sim/network"
	"github.com/gargshiv/bikeshare/sim/render"
	"github.com/gargshiv/bikeshare/sim/trace"
)

var (
	// CLI flags shared by run and validate
	configPath  string // Optional YAML run file
	dotEnvPath  string // .env file loaded before reading BIKESHARE_* variables
	stationPath string // Station configuration (JSON)
	ridePath    string // Ride log (CSV)
	logLevel    string // Log verbosity level

	// CLI flags for run
	windowStart string // Simulation window start (YYYY-MM-DD HH:MM)
	windowEnd   string // Simulation window end (YYYY-MM-DD HH:MM)
	traceLevel  string // Rejection trace level
	resultsPath string // JSON report output path
	framesPath  string // JSON-lines frame output path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "bikeshare",
	Short: "Discrete-event simulator for bike-share networks",
}

// runCmd executes the simulation using the resolved run configuration
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bike-share simulation over a time window",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := resolveRunConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := runSimulation(cfg); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// resolveRunConfig layers defaults, the run file, the environment and the
// flags the user explicitly set, in that order.
func resolveRunConfig(cmd *cobra.Command) (RunConfig, error) {
	cfg := defaultRunConfig()
	if configPath != "" {
		fileCfg, err := loadRunConfig(configPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
	}

	if err := loadDotEnv(dotEnvPath); err != nil {
		return cfg, err
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	overrides := []struct {
		name  string
		value string
		dst   *string
	}{
		{"stations", stationPath, &cfg.Stations},
		{"rides", ridePath, &cfg.Rides},
		{"log", logLevel, &cfg.LogLevel},
		{"start", windowStart, &cfg.Start},
		{"end", windowEnd, &cfg.End},
		{"trace", traceLevel, &cfg.Trace},
		{"results", resultsPath, &cfg.Results},
		{"frames", framesPath, &cfg.Frames},
	}
	for _, o := range overrides {
		if flags.Lookup(o.name) != nil && flags.Changed(o.name) {
			*o.dst = o.value
		}
	}
	return cfg, nil
}

// setupLogging sets the global log level.
func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// buildSimulator loads the network files and constructs a simulator.
func buildSimulator(cfg RunConfig) (*sim.Simulator, error) {
	stations, err := network.LoadStations(cfg.Stations)
	if err != nil {
		return nil, err
	}
	rides, err := network.LoadRides(cfg.Rides)
	if err != nil {
		return nil, err
	}
	return sim.NewSimulator(stations, rides, sim.SimConfig{TraceLevel: trace.TraceLevel(cfg.Trace)})
}

// runSimulation performs one full run: load, simulate, print, save.
func runSimulation(cfg RunConfig) error {
	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	start, err := network.ParseTime(cfg.Start)
	if err != nil {
		return fmt.Errorf("window start: %w", err)
	}
	end, err := network.ParseTime(cfg.End)
	if err != nil {
		return fmt.Errorf("window end: %w", err)
	}

	s, err := buildSimulator(cfg)
	if err != nil {
		return err
	}

	renderers := render.Multi{render.Log{}}
	var frames *render.JSONLines
	if cfg.Frames != "" {
		f, err := os.Create(cfg.Frames)
		if err != nil {
			return fmt.Errorf("creating frame file: %w", err)
		}
		defer func() { _ = f.Close() }()
		frames = render.NewJSONLines(f)
		renderers = append(renderers, frames)
	}

	logrus.Infof("Starting run %s over %s to %s (trace=%s)", s.RunID, cfg.Start, cfg.End, cfg.Trace)
	wallStart := time.Now()

	if err := s.Run(start, end, renderers); err != nil {
		return err
	}
	logrus.Infof("Run %s finished in %s", s.RunID, time.Since(wallStart))

	s.CalculateStatistics().Print()

	if frames != nil {
		if err := frames.Err(); err != nil {
			return err
		}
		logrus.Infof("Wrote %d frames to %s", frames.Frames(), cfg.Frames)
	}
	if cfg.Results != "" {
		if err := s.Report(start, end).SaveResults(cfg.Results); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML run configuration file")
	rootCmd.PersistentFlags().StringVar(&dotEnvPath, "env-file", ".env", "File of BIKESHARE_* variables loaded before reading the environment")
	rootCmd.PersistentFlags().StringVar(&stationPath, "stations", "stations.json", "Station configuration (JSON)")
	rootCmd.PersistentFlags().StringVar(&ridePath, "rides", "rides.csv", "Ride log (CSV)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&windowStart, "start", "", "Simulation window start (YYYY-MM-DD HH:MM)")
	runCmd.Flags().StringVar(&windowEnd, "end", "", "Simulation window end (YYYY-MM-DD HH:MM), inclusive")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Rejection trace level (none, rejections)")
	runCmd.Flags().StringVar(&resultsPath, "results", "", "Write the JSON report to this file")
	runCmd.Flags().StringVar(&framesPath, "frames", "", "Write one JSON frame per simulated minute to this file")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
}
