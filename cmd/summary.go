package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <panel>",
	Short: "Print a markdown summary of a panel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, log, err := loadDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		p, _, err := buildPanel(d, args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), p.Markdown())
		return err
	},
}

var sinksCmd = &cobra.Command{
	Use:   "sinks",
	Short: "List sink countries available to the bilateral panel",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, log, err := loadDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		out := cmd.OutOrStdout()
		sinks := d.Sinks()
		if len(sinks) == 0 {
			fmt.Fprintln(out, "(no sinks)")
			return nil
		}
		for _, s := range sinks {
			fmt.Fprintf(out, "- %s: %s\n", s.ISO, s.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sinksCmd)
	addSelectorFlags(summaryCmd)
}
