package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/switchgen/pkg/interconnect"
	"github.com/OpenTraceLab/switchgen/pkg/topology"
	"github.com/spf13/cobra"
)

const usageLine = "Usage: switchgen <config_file> <output_file>"

var (
	// Global flags
	verbose bool

	// Generation flags
	moduleName string
	timescale  string
)

var rootCmd = &cobra.Command{
	Use:   "switchgen <config_file> <output_file>",
	Short: "AXI interconnect generator",
	Long: `switchgen reads a bus topology (address width, data width, and a list of
master and slave ports) and writes a Verilog interconnect module that routes
each master's write address channel to the slaves by address.

The configuration is JSON, or YAML when the file ends in .yaml or .yml.

Examples:
  switchgen bus.json axi_interconnect.v             # Generate a module
  switchgen -m soc_xbar bus.yaml soc_xbar.v         # Custom module name
  switchgen info bus.json                           # Show the parsed topology`,
	Version:       "0.9.0",
	Args:          cobra.ArbitraryArgs,
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	defaults := interconnect.DefaultConfig()
	rootCmd.Flags().StringVarP(&moduleName, "module", "m", defaults.ModuleName,
		"name of the generated Verilog module")
	rootCmd.Flags().StringVar(&timescale, "timescale", defaults.Timescale,
		"timescale directive of the generated file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		fmt.Println(usageLine)
		return nil
	}
	configPath, outputPath := args[0], args[1]

	if verbose {
		fmt.Printf("Loading topology: %s\n", configPath)
	}

	cfg, err := topology.LoadFile(configPath)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("  Address Width: %d\n", cfg.AddressWidth)
		fmt.Printf("  Data Width:    %d\n", cfg.DataWidth)
		fmt.Printf("  Masters:       %d\n", len(cfg.Masters()))
		fmt.Printf("  Slaves:        %d\n", len(cfg.Slaves()))
		for _, p := range cfg.Dropped() {
			fmt.Printf("  Skipping port %s (Port Type %q)\n", p.Name, p.Type)
		}
		fmt.Printf("Writing module %s: %s\n", moduleName, outputPath)
	}

	err = interconnect.WriteFile(outputPath, cfg,
		interconnect.WithModuleName(moduleName),
		interconnect.WithTimescale(timescale),
	)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %s based on %s.\n", outputPath, configPath)
	return nil
}
