package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/switchgen/pkg/interconnect"
	"github.com/OpenTraceLab/switchgen/pkg/topology"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <config_file>",
	Short: "Show the ports and address maps of a bus topology",
	Long: `Load a bus topology and print what the generator will see: bus widths,
masters with their address maps, slaves, and any port whose type is neither
master nor slave (those ports are left out of the generated module).

Examples:
  switchgen info bus.json
  switchgen info -v bus.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	if verbose {
		fmt.Printf("Loading topology: %s (%s)\n\n", filename, topology.FormatForPath(filename))
	}

	cfg, err := topology.LoadFile(filename)
	if err != nil {
		return errors.Wrap(err, "failed to load topology")
	}

	fmt.Printf("╔════════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║ Bus Topology                                                   ║\n")
	fmt.Printf("╠════════════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║ File: %-56s ║\n", filename)
	fmt.Printf("╚════════════════════════════════════════════════════════════════╝\n\n")

	fmt.Printf("Address Width: %d bits\n", cfg.AddressWidth)
	fmt.Printf("Data Width:    %d bits\n\n", cfg.DataWidth)

	masters := cfg.Masters()
	fmt.Printf("Masters: %d\n", len(masters))
	for _, m := range masters {
		if m.AddressMap == nil {
			fmt.Printf("  %-16s (no address map)\n", m.Name)
			continue
		}
		fmt.Printf("  %-16s %s", m.Name, m.AddressMap)
		lo, hi, err := m.AddressMap.Bounds()
		switch {
		case err != nil:
			if verbose {
				fmt.Printf("  (not decoded: %v)", err)
			}
		case hi < lo:
			fmt.Printf("  (0x%X - 0x%X, end before start)", lo, hi)
		default:
			fmt.Printf("  (0x%X - 0x%X, %d bytes)", lo, hi, hi-lo+1)
		}
		fmt.Println()
	}
	fmt.Println()

	slaves := cfg.Slaves()
	fmt.Printf("Slaves: %d\n", len(slaves))
	for _, s := range slaves {
		fmt.Printf("  %s\n", s.Name)
	}
	fmt.Println()

	if dropped := cfg.Dropped(); len(dropped) > 0 {
		fmt.Printf("Ignored ports: %d\n", len(dropped))
		for _, p := range dropped {
			fmt.Printf("  %-16s Port Type %q\n", p.Name, p.Type)
		}
		fmt.Println()
	}

	branches := 0
	for _, d := range interconnect.Decoders(cfg) {
		branches += len(d.Branches)
	}
	fmt.Printf("Decode branches: %d\n", branches)
	return nil
}
