package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/carbonmap/internal/config"
	"github.com/KaramelBytes/carbonmap/internal/logging"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set carbonmap configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "data_dir: %s\n", cfg.DataDir)
		fmt.Fprintf(out, "datasets.baseline: %s\n", cfg.Datasets.Baseline)
		fmt.Fprintf(out, "datasets.dr3: %s\n", cfg.Datasets.DR3)
		fmt.Fprintf(out, "datasets.dr5: %s\n", cfg.Datasets.DR5)
		fmt.Fprintf(out, "datasets.endo: %s\n", cfg.Datasets.Endo)
		fmt.Fprintf(out, "datasets.bilateral: %s\n", cfg.Datasets.Bilateral)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", cfg.Delimiter)
		}
		if cfg.Sheet != "" {
			fmt.Fprintf(out, "sheet: %s\n", cfg.Sheet)
		}
		fmt.Fprintf(out, "listen_addr: %s\n", cfg.ListenAddr)
		fmt.Fprintf(out, "fetch_timeout_sec: %d\n", cfg.FetchTimeoutSec)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_dir":
			cfg.DataDir = val
		case "datasets.baseline":
			cfg.Datasets.Baseline = val
		case "datasets.dr3":
			cfg.Datasets.DR3 = val
		case "datasets.dr5":
			cfg.Datasets.DR5 = val
		case "datasets.endo":
			cfg.Datasets.Endo = val
		case "datasets.bilateral":
			cfg.Datasets.Bilateral = val
		case "delimiter":
			prev := cfg.Delimiter
			cfg.Delimiter = val
			if _, err := cfg.DelimiterRune(); err != nil {
				cfg.Delimiter = prev
				return err
			}
		case "sheet":
			cfg.Sheet = val
		case "listen_addr":
			cfg.ListenAddr = val
		case "fetch_timeout_sec":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for fetch_timeout_sec: %v", val)
			}
			cfg.FetchTimeoutSec = i
		case "log_level":
			if _, err := logging.ParseLevel(val); err != nil {
				return err
			}
			cfg.LogLevel = val
		case "log_format":
			switch val {
			case "console", "json":
				cfg.LogFormat = val
			default:
				return fmt.Errorf("invalid log_format: %s (use console or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
