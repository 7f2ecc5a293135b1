// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sstf-sim/sstf-sim/sched"
	"github.com/sstf-sim/sstf-sim/sched/trace"
	"github.com/sstf-sim/sstf-sim/sched/workload"
)

var (
	queueSize    int
	maxWaitMs    int64
	debugMode    bool
	logLevel     string
	traceLevel   string
	optionsFile  string
	workloadFile string
	paceMs       int64

	workers      int
	accesses     int
	diskSectors  int64
	writePercent int
	sequential   bool
	seed         int64
)

var rootCmd = &cobra.Command{
	Use:   "sstf-sim",
	Short: "SSTF block I/O scheduler with an FCFS comparison baseline",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a sector workload through the SSTF scheduler",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)

		if !trace.IsValidLevel(traceLevel) {
			return fmt.Errorf("invalid trace level %q", traceLevel)
		}

		opts, err := schedulerOptions()
		if err != nil {
			return err
		}
		spec, err := workloadSpec()
		if err != nil {
			return err
		}
		spec.LogSummary()

		gen, err := workload.NewGenerator(spec)
		if err != nil {
			return err
		}

		var sink trace.Sink
		var log *trace.Log
		if opts.Debug || trace.Level(traceLevel) == trace.LevelEvents {
			log = trace.NewLog()
			sink = log
			opts.Debug = true
		}

		driver, err := sched.NewDriver(opts, sink, nil)
		if err != nil {
			return err
		}

		logrus.Infof("starting run: queue_size=%d max_wait=%dms pace=%dms", opts.QueueSize, opts.MaxWaitMs, paceMs)
		report := driver.Run(gen.Generate(), paceMs)
		printReport(report)
		if log != nil {
			printTraceSummary(trace.Summarize(log))
		}
		return nil
	},
}

// schedulerOptions resolves the scheduler options: the YAML file wins over
// individual flags.
func schedulerOptions() (sched.Options, error) {
	if optionsFile != "" {
		return sched.LoadOptions(optionsFile)
	}
	return sched.NewOptions(queueSize, maxWaitMs, debugMode), nil
}

// workloadSpec resolves the workload: the YAML spec wins over flags.
func workloadSpec() (workload.Spec, error) {
	if workloadFile != "" {
		return workload.LoadSpec(workloadFile)
	}
	spec := workload.DefaultSpec()
	spec.Workers = workers
	spec.Accesses = accesses
	spec.DiskSectors = diskSectors
	spec.WritePercent = writePercent
	spec.Seed = seed
	if sequential {
		spec.Pattern = workload.PatternSequential
	}
	return spec, nil
}

// printReport writes the final FCFS-vs-SSTF comparison to stdout via fmt,
// bypassing logrus so results survive any log level.
func printReport(rep trace.ReportRecord) {
	fmt.Println("=== Seek Distance Report ===")
	fmt.Printf("Simulated distance (FCFS) : %d sectors\n", rep.SimSeekTotal)
	fmt.Printf("Real distance (SSTF)      : %d sectors\n", rep.RealSeekTotal)
	if rep.SavingsValid {
		fmt.Printf("Movement saved            : %d%%\n", rep.SavingsPercent)
	}
}

func printTraceSummary(s *trace.Summary) {
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Arrivals   : %d\n", s.Arrivals)
	fmt.Printf("Dispatches : %d (%d reads, %d writes; %d left, %d right)\n",
		s.Dispatches, s.Reads, s.Writes, s.LeftMoves, s.RightMoves)
	fmt.Printf("Timeouts   : %d\n", s.Timeouts)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().IntVar(&queueSize, "queue-size", sched.DefaultQueueSize, "Requests needed to open the dispatch gate (1-100)")
	runCmd.Flags().Int64Var(&maxWaitMs, "max-wait", sched.DefaultMaxWaitMs, "Batch deadline in milliseconds (20-100)")
	runCmd.Flags().BoolVar(&debugMode, "debug", false, "Emit per-request telemetry events")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Trace level (none, events)")
	runCmd.Flags().StringVar(&optionsFile, "options", "", "Scheduler options YAML file (overrides flags)")
	runCmd.Flags().StringVar(&workloadFile, "workload", "", "Workload spec YAML file (overrides flags)")
	runCmd.Flags().Int64Var(&paceMs, "pace-ms", 0, "Sleep between arrivals in milliseconds")

	runCmd.Flags().IntVar(&workers, "workers", 20, "Simulated worker processes")
	runCmd.Flags().IntVar(&accesses, "accesses", 50, "Accesses per worker")
	runCmd.Flags().Int64Var(&diskSectors, "sectors", 8192, "Device size in sectors")
	runCmd.Flags().IntVar(&writePercent, "write-pct", 0, "Percentage of writes (0-100)")
	runCmd.Flags().BoolVar(&sequential, "sequential", false, "Sequential access pattern instead of random")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Workload RNG seed")

	rootCmd.AddCommand(runCmd)
}
