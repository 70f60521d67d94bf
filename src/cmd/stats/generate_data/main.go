package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/decision-sim/src/cmd/stats/generate_data/run"
	"github.com/jiaming2012/decision-sim/src/logger"
	"github.com/jiaming2012/decision-sim/src/utils"
)

func newLogger(cmd *cobra.Command) *logger.LogrusLogger {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		log.Fatalf("error getting log-level: %v", err)
	}

	l, err := logger.NewLogrusLogger(level, nil)
	if err != nil {
		log.Fatalf("error setting up logger: %v", err)
	}

	return l
}

var rootCmd = &cobra.Command{
	Use:   "go run src/cmd/stats/generate_data/main.go",
	Short: "Simulate decisions made under statistical uncertainty",
	Long:  `This program simulates a population of decision makers evaluating noisy effect estimates and exports every decision to CSV.`,
	Run: func(cmd *cobra.Command, args []string) {
		l := newLogger(cmd)

		outPath, err := cmd.Flags().GetString("out")
		if err != nil {
			log.Fatalf("error getting out: %v", err)
		}

		paramsPath, err := cmd.Flags().GetString("params")
		if err != nil {
			log.Fatalf("error getting params: %v", err)
		}

		summary, err := cmd.Flags().GetBool("summary")
		if err != nil {
			log.Fatalf("error getting summary: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			OutPath:    outPath,
			ParamsPath: paramsPath,
			Summary:    summary,
			Logger:     l,
		})
		if err != nil {
			log.Fatalf("error running command: %v", err)
		}

		if result.Summary != nil {
			fmt.Print(result.Summary.String())
		}

		fmt.Printf("Simulation complete! Saved to '%s'.\n", result.ExportedFilepath)
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [csv file]",
	Short: "Summarize an exported decision log",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		newLogger(cmd)

		inPath := utils.DefaultDecisionsFilename
		if len(args) == 1 {
			inPath = args[0]
		}

		summary, err := run.Summarize(inPath)
		if err != nil {
			log.Fatalf("error summarizing %s: %v", inPath, err)
		}

		fmt.Print(summary.String())
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "info", "The logrus log level.")
	rootCmd.Flags().StringP("out", "o", utils.DefaultDecisionsFilename, "The csv file to write the decisions to.")
	rootCmd.Flags().StringP("params", "p", "", "Optional yaml file overriding the default simulation params.")
	rootCmd.Flags().Bool("summary", true, "Print a summary table after the run.")

	rootCmd.AddCommand(summarizeCmd)

	cobra.CheckErr(rootCmd.Execute())
}
