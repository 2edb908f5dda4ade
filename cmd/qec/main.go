package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qec"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "qec",
		Short: "Three-qubit bit-flip error-correction demo",
		Long: `qec encodes one logical qubit into three physical qubits, injects a
single bit-flip error on a chosen qubit, decodes by majority vote, and
reports the recovered measurement statistics as a histogram.`,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				json.NewEncoder(os.Stdout).Encode(map[string]string{"version": version})
			} else {
				fmt.Printf("qec version %s\n", version)
			}
		},
	}
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bit-flip demonstration",
		Long: `Run the encode / inject / decode pipeline and print the outcome
histogram. With --all, all three logical states are swept with the same
error target, one histogram per state.

Examples:
  qec run --state plus --error-on 0 --shots 2000
  qec run --all --seed 42 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			demo, err := qec.NewDemo(config, nil)
			if err != nil {
				return err
			}

			all, _ := cmd.Flags().GetBool("all")
			jsonOut, _ := cmd.Flags().GetBool("json")

			var results []*qec.Result
			if all {
				results, err = demo.RunAll(cmd.Context())
			} else {
				var state qec.LogicalState
				state, err = config.LogicalState()
				if err == nil {
					var result *qec.Result
					result, err = demo.Run(cmd.Context(), state)
					results = append(results, result)
				}
			}
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"results": results,
					"count":   len(results),
				})
			}

			for _, result := range results {
				marginal, err := result.LogicalMarginal()
				if err != nil {
					return err
				}

				fmt.Printf("Input |%s⟩ with X on qubit %d (%d shots)\n\n",
					result.State, result.ErrorOn, result.Shots)
				fmt.Print(qec.RenderHistogram(result.Counts, config.Plain))
				fmt.Printf("\nLogical qubit after decode: 0=%d 1=%d\n\n",
					marginal["0"], marginal["1"])
			}

			return nil
		},
	}

	cmd.Flags().String("state", "", "Logical state to protect (zero, one, plus)")
	cmd.Flags().Int("error-on", 1, "Physical qubit receiving the bit flip (0-2)")
	cmd.Flags().Int("shots", 1024, "Number of measurement trials")
	cmd.Flags().Uint64("seed", 0, "Sampler seed (0 = random)")
	cmd.Flags().Int("workers", 1, "Sampler batch goroutines")
	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().Bool("all", false, "Sweep all three logical states")
	cmd.Flags().Bool("plain", false, "Disable color in the histogram")

	return cmd
}

// buildConfig layers flags over an optional YAML file over the defaults.
// Only flags the caller actually set override the file.
func buildConfig(cmd *cobra.Command) (*qec.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var config *qec.Config
	if path != "" {
		loaded, err := qec.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	} else {
		config = qec.NewConfig()
	}

	if cmd.Flags().Changed("state") {
		config.State, _ = cmd.Flags().GetString("state")
	}
	if cmd.Flags().Changed("error-on") {
		config.ErrorOn, _ = cmd.Flags().GetInt("error-on")
	}
	if cmd.Flags().Changed("shots") {
		config.Shots, _ = cmd.Flags().GetInt("shots")
	}
	if cmd.Flags().Changed("seed") {
		config.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("workers") {
		config.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if cmd.Flags().Changed("plain") {
		config.Plain, _ = cmd.Flags().GetBool("plain")
	}

	return config, config.Validate()
}
