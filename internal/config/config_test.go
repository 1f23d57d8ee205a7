package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"shopkeeper"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "shop.db", cfg.StorePath)
	assert.NotEmpty(t, cfg.PeopleURL)
	assert.NotEmpty(t, cfg.PeopleToken)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-s", "/tmp/other.db", "-i", "9", "-l", "debug")

	cfg := LoadConfig()

	assert.Equal(t, "/tmp/other.db", cfg.StorePath)
	assert.Equal(t, 9*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"store_path": "from-json.db",
		"fetch_timeout": "7s"
	}`), 0o660))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "from-json.db", cfg.StorePath)
	assert.Equal(t, 7*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.LogLevel, "fields absent from JSON keep defaults")
}

func TestLoadConfig_FlagsWinOverJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store_path": "from-json.db"}`), 0o660))

	withArgs(t, "-c", path, "-s", "from-flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "from-flag.db", cfg.StorePath)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	withArgs(t)
	t.Setenv("SHOP_PEOPLE_TOKEN", "env-token")
	t.Setenv("SHOP_FETCH_TIMEOUT", "2s")

	cfg := LoadConfig()

	assert.Equal(t, "env-token", cfg.PeopleToken)
	assert.Equal(t, 2*time.Second, cfg.FetchTimeout)
}

func TestLoadConfig_BadEnvDurationIgnored(t *testing.T) {
	withArgs(t)
	t.Setenv("SHOP_FETCH_TIMEOUT", "pronto")

	cfg := LoadConfig()
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
}

func TestParseJson_PanicsOnMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0o660))

	withArgs(t, "-c", path)

	var cfg Config
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(&cfg) })
}
