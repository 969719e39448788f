package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/KaramelBytes/carbonmap/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Datasets names the file (or URL) of each source dataset. Relative names
// resolve against DataDir.
type Datasets struct {
	Baseline  string `mapstructure:"baseline" yaml:"baseline"`
	DR3       string `mapstructure:"dr3" yaml:"dr3"`
	DR5       string `mapstructure:"dr5" yaml:"dr5"`
	Endo      string `mapstructure:"endo" yaml:"endo"`
	Bilateral string `mapstructure:"bilateral" yaml:"bilateral"`
}

// Global configuration structure.
type Global struct {
	DataDir  string   `mapstructure:"data_dir" yaml:"data_dir"`
	Datasets Datasets `mapstructure:"datasets" yaml:"datasets"`
	// Delimiter overrides CSV delimiter sniffing (",", ";", "tab").
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	// Sheet names the worksheet read from .xlsx datasets; empty means the first.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	ListenAddr      string `mapstructure:"listen_addr" yaml:"listen_addr"`
	FetchTimeoutSec int    `mapstructure:"fetch_timeout_sec" yaml:"fetch_timeout_sec"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`
}

// Default dataset file names.
const (
	DefaultBaseline  = "final_with_forest_area.csv"
	DefaultDR3       = "final_dr3.csv"
	DefaultDR5       = "final_dr5.csv"
	DefaultEndo      = "final_ela_prtp.csv"
	DefaultBilateral = "bilateral_flows_per_ha.csv"
)

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.carbonmap/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env (including a local .env file) > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CARBONMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", "./data")
	v.SetDefault("datasets.baseline", DefaultBaseline)
	v.SetDefault("datasets.dr3", DefaultDR3)
	v.SetDefault("datasets.dr5", DefaultDR5)
	v.SetDefault("datasets.endo", DefaultEndo)
	v.SetDefault("datasets.bilateral", DefaultBilateral)
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet", "")
	v.SetDefault("listen_addr", "127.0.0.1:8080")
	v.SetDefault("fetch_timeout_sec", 30)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Sources resolves every dataset location.
func (c *Global) Sources() dataset.Sources {
	return dataset.Sources{
		dataset.Baseline:  c.resolve(c.Datasets.Baseline),
		dataset.DR3:       c.resolve(c.Datasets.DR3),
		dataset.DR5:       c.resolve(c.Datasets.DR5),
		dataset.Endo:      c.resolve(c.Datasets.Endo),
		dataset.Bilateral: c.resolve(c.Datasets.Bilateral),
	}
}

func (c *Global) resolve(name string) string {
	if name == "" || dataset.IsRemote(name) || filepath.IsAbs(name) {
		return name
	}
	if dataset.IsRemote(c.DataDir) {
		base := c.DataDir
		if base[len(base)-1] != '/' {
			base += "/"
		}
		return base + name
	}
	return filepath.Join(c.DataDir, name)
}

// FetchTimeout returns the dataset load timeout.
func (c *Global) FetchTimeout() time.Duration {
	if c.FetchTimeoutSec <= 0 {
		return 0
	}
	return time.Duration(c.FetchTimeoutSec) * time.Second
}

// DelimiterRune maps the delimiter setting to a rune; 0 means sniff.
func (c *Global) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported delimiter: %q", c.Delimiter)
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".carbonmap"), nil
}
