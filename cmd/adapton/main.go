package main

import (
	"fmt"
	"os"

	"github.com/AnatoleLucet/adapton"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "adapton",
		Short: "Demand-driven incremental computation demos",
		Long: `adapton demonstrates the incremental computation engine:
writing an input invalidates only the computations that read it,
and re-reading recomputes the minimum necessary subset.`,
	}

	rootCmd.PersistentFlags().String("log-level", "", "Engine tracing level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDemoCmd(),
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
			fmt.Printf("adapton version %s\n", version)
		},
	}
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the recomputation scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			if level != "" {
				adapton.SetLogger(newLogger(level, os.Stderr))
			}

			demoSubtraction()
			demoPlusThree()
			demoTwoInputs()
		},
	}
}
