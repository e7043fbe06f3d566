package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noEnv points Load at an env file that does not exist.
func noEnv(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", noEnv(t))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "aris anagnostopoulos", cfg.Hub.Name)
	assert.Equal(t, "data/reduced_dblp.json", cfg.DatasetPath(true))
	assert.Equal(t, "data/full_dblp.json", cfg.DatasetPath(false))
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "collabgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data:
  full: /srv/full.json
  reduced: /srv/reduced.json
hub:
  name: jane doe
ingest:
  strict: true
labeling:
  workers: 4
logging:
  level: debug
  format: json
`), 0o600))

	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("COLLAB_CACHE_PATH=/tmp/x.db\n"), 0o600))
	t.Setenv("COLLAB_CACHE_PATH", "")
	require.NoError(t, os.Unsetenv("COLLAB_CACHE_PATH"))
	t.Setenv("COLLAB_LABELING_WORKERS", "2")

	cfg, err := Load(path, envPath)
	require.NoError(t, err)

	assert.Equal(t, "/srv/full.json", cfg.Data.Full)
	assert.Equal(t, "jane doe", cfg.Hub.Name)
	assert.True(t, cfg.Ingest.Strict)
	assert.Equal(t, 2, cfg.Labeling.Workers, "environment beats the file")
	assert.Equal(t, "/tmp/x.db", cfg.Cache.Path, ".env feeds the environment")
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), noEnv(t))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("data: [unclosed"), 0o600))
	_, err = Load(bad, noEnv(t))
	assert.Error(t, err)

	t.Setenv("COLLAB_INGEST_STRICT", "maybe")
	_, err = Load("", noEnv(t))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"COLLAB_NEO4J_URI":             "bolt://db:7687",
		"COLLAB_NEO4J_MAX_CONNECTIONS": "16",
		"COLLAB_INGEST_STRICT":         "true",
		"COLLAB_HUB_NAME":              "someone else",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}))
	assert.Equal(t, "bolt://db:7687", cfg.Neo4j.URI)
	assert.Equal(t, 16, cfg.Neo4j.MaxConnections)
	assert.True(t, cfg.Ingest.Strict)
	assert.Equal(t, "someone else", cfg.Hub.Name)

	err := cfg.applyEnv(func(k string) (string, bool) {
		if k == "COLLAB_LABELING_WORKERS" {
			return "many", true
		}
		return "", false
	})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"no full data":   func(c *Config) { c.Data.Full = "" },
		"no cache":       func(c *Config) { c.Cache.Path = "" },
		"blank hub":      func(c *Config) { c.Hub.Name = "  " },
		"neg workers":    func(c *Config) { c.Labeling.Workers = -1 },
		"neg conns":      func(c *Config) { c.Neo4j.MaxConnections = -2 },
		"bad level":      func(c *Config) { c.Logging.Level = "loud" },
		"bad log format": func(c *Config) { c.Logging.Format = "xml" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
	assert.NoError(t, Default().Validate())
}
