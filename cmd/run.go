// cmd/run.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/cpu-scheduler-sim/sim"
)

var (
	scenarioFile string
	traceEvents  bool
	timeout      time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scheduling scenario from a YAML file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, jobs, err := loadScenario(scenarioFile)
		if err != nil {
			return err
		}

		s, err := sim.NewSimulator(cfg, jobs)
		if err != nil {
			return err
		}
		if traceEvents {
			s.Subscribe(newTraceObserver())
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if timeout > 0 {
			var timeoutCancel context.CancelFunc
			ctx, timeoutCancel = context.WithTimeout(ctx, timeout)
			defer timeoutCancel()
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt)
		defer signal.Stop(sigCh)
		go func() {
			if _, ok := <-sigCh; ok {
				cancel()
			}
		}()

		logrus.Infof("starting simulation: %d jobs, %d cores, strategy=%s", len(jobs), cfg.NumCores, cfg.Strategy)
		result := s.Run(ctx)

		if result.Status.Kind != sim.StatusOK {
			logrus.Warnf("simulation ended with status %s: %s", result.Status.Kind, result.Status.Reason)
		}

		fmt.Print(result.Aggregates.Summary())
		fmt.Printf("Status                 : %s\n", result.Status.Kind)
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&scenarioFile, "file", "f", "", "Path to the YAML scenario file (required)")
	runCmd.Flags().BoolVar(&traceEvents, "trace", false, "Log every simulation event at debug level")
	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the simulation after this wall-clock duration (0 disables)")
	runCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(runCmd)
}
