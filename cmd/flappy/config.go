package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the same way 'flappy play' does, apply the
preset and print the result as YAML. The output is a complete config file.

Search order:
  --config <path>
  ~/.flappy/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, src, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", src)
	fmt.Print(string(data))
}
