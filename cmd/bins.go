package cmd

import (
	"fmt"

	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var binsYAML bool

var binsCmd = &cobra.Command{
	Use:   "bins [family]",
	Short: "Print bin definitions (scc, flux, cci, flow_per_ha)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs := binning.Families()
		if len(args) == 1 {
			d, ok := binning.ByName(args[0])
			if !ok {
				return fmt.Errorf("unknown bin family: %s", args[0])
			}
			defs = []binning.Definition{d}
		}
		out := cmd.OutOrStdout()
		if binsYAML {
			b, err := yaml.Marshal(defs)
			if err != nil {
				return fmt.Errorf("marshal yaml: %w", err)
			}
			_, err = out.Write(b)
			return err
		}
		for i, d := range defs {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s (%d bins)\n", d.Name, d.Len())
			for _, iv := range d.Intervals() {
				fmt.Fprintf(out, "  %-16s %-14s %s\n", iv.String(), iv.Label, iv.Color)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(binsCmd)
	binsCmd.Flags().BoolVar(&binsYAML, "yaml", false, "print as YAML")
}
