package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "./data", c.DataDir)
	assert.Equal(t, DefaultBaseline, c.Datasets.Baseline)
	assert.Equal(t, "127.0.0.1:8080", c.ListenAddr)
	assert.Equal(t, 30*time.Second, c.FetchTimeout())
	src := c.Sources()
	assert.Equal(t, filepath.Join("data", DefaultBilateral), src[dataset.Bilateral])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CARBONMAP_DATA_DIR", "https://example.org/data")
	t.Setenv("CARBONMAP_DATASETS_DR3", "alt_dr3.csv")
	t.Setenv("CARBONMAP_LOG_LEVEL", "debug")
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	src := c.Sources()
	assert.Equal(t, "https://example.org/data/alt_dr3.csv", src[dataset.DR3])
	assert.Equal(t, "https://example.org/data/"+DefaultBaseline, src[dataset.Baseline])
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")
	c, err := Load(path)
	require.NoError(t, err)
	c.ListenAddr = ":9999"
	c.Datasets.Endo = "/abs/endo.csv"
	c.FetchTimeoutSec = 0
	require.NoError(t, Save(c, path))
	_, err = os.Stat(path)
	require.NoError(t, err)

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", back.ListenAddr)
	assert.Equal(t, "/abs/endo.csv", back.Sources()[dataset.Endo])
	assert.Equal(t, time.Duration(0), back.FetchTimeout())
}

func TestDelimiterRune(t *testing.T) {
	for in, want := range map[string]rune{"": 0, ",": ',', ";": ';', "tab": '\t'} {
		c := &Global{Delimiter: in}
		got, err := c.DelimiterRune()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := (&Global{Delimiter: "|"}).DelimiterRune()
	assert.Error(t, err)
}
