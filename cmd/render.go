package cmd

import (
	"fmt"

	"github.com/KaramelBytes/carbonmap/internal/utils"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderFull   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <panel>",
	Short: "Render a panel's map figure as JSON",
	Long: `Render one panel (cscc, flux, cci, bilateral) and write its figure as
JSON suitable for Plotly. Use --full to include records and widgets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, log, err := loadDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		p, fig, err := buildPanel(d, args[0])
		if err != nil {
			return err
		}
		var v any = fig
		if renderFull {
			v = p
		}
		b, err := utils.PrettyJSON(v)
		if err != nil {
			return err
		}
		if renderOutput == "" || renderOutput == "-" {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return err
		}
		if err := utils.SafeWriteFile(renderOutput, append(b, '\n')); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", renderOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addSelectorFlags(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().BoolVar(&renderFull, "full", false, "write the whole panel, not just the figure")
}
