package cmd

import (
	"fmt"

	"github.com/KaramelBytes/carbonmap/internal/dashboard"
	"github.com/KaramelBytes/carbonmap/internal/export"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export panel records to an Excel workbook",
	Long: `Write one sheet per scenario (CSCC), per flux, per CCI measure of the
selected flux and the bilateral flows of the selected sink.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportOutput == "" {
			return fmt.Errorf("--output is required")
		}
		d, log, err := loadDashboard(cmd.Context())
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		sheets, err := exportSheets(d)
		if err != nil {
			return err
		}
		if err := export.WriteXLSX(exportOutput, sheets); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d sheets to %s\n", len(sheets), exportOutput)
		return nil
	},
}

func exportSheets(d *dashboard.Dashboard) ([]export.Sheet, error) {
	var sheets []export.Sheet
	for _, sc := range dashboard.Scenarios {
		p, err := d.CSCC(sc.Key)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.RecordSheet("CSCC "+sc.Label, "CSCC (US$/tCO₂)", p.Records))
	}
	for _, f := range dashboard.Fluxes {
		p, err := d.Flux(f.Key)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.RecordSheet("Flux "+f.Key, "Mean (GtC/yr)", p.Records))
	}
	for _, m := range dashboard.Measures {
		p, err := d.CCI(selFlux, m.Key)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.RecordSheet("CCI "+selFlux+" "+m.Key, "Median (US$ bn/yr)", p.Records))
	}
	if sink := sinkOrDefault(d); sink != "" {
		p, err := d.Bilateral(sink)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, export.RecordSheet("Flows to "+sink, "Mean (US$/ha/yr)", p.Flows))
	}
	return sheets, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addSelectorFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "workbook path (.xlsx)")
}
