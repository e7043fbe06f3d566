// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Layered configuration: defaults, YAML file, .env file, environment.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "COLLAB_"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full runtime configuration.
type Config struct {
	Data     Data     `yaml:"data"`
	Cache    Cache    `yaml:"cache"`
	Hub      Hub      `yaml:"hub"`
	Ingest   Ingest   `yaml:"ingest"`
	Labeling Labeling `yaml:"labeling"`
	Logging  Logging  `yaml:"logging"`
	Neo4j    Neo4j    `yaml:"neo4j"`
}

// Data locates the two dataset variants.
type Data struct {
	Full    string `yaml:"full"`
	Reduced string `yaml:"reduced"`
}

// Cache locates the graph store file.
type Cache struct {
	Path string `yaml:"path"`
}

// Hub names the author every path query starts from.
type Hub struct {
	Name string `yaml:"name"`
}

// Ingest tunes dataset loading.
type Ingest struct {
	Strict bool `yaml:"strict"`
}

// Labeling tunes group labeling. Zero workers means one per CPU.
type Labeling struct {
	Workers int `yaml:"workers"`
}

// Logging selects level and output format ("auto", "text" or "json").
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Neo4j configures the export target.
type Neo4j struct {
	URI            string `yaml:"uri"`
	Database       string `yaml:"database"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	MaxConnections int    `yaml:"max_connections"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Data: Data{
			Full:    "data/full_dblp.json",
			Reduced: "data/reduced_dblp.json",
		},
		Cache:   Cache{Path: ".cache/collabgraph.db"},
		Hub:     Hub{Name: "aris anagnostopoulos"},
		Logging: Logging{Level: "info", Format: "auto"},
		Neo4j:   Neo4j{URI: "bolt://localhost:7687", Database: "neo4j"},
	}
}

// Load builds a Config from defaults, then the YAML file at path (skipped
// when path is empty), then envFiles (".env" when none is given; missing
// files are ignored), then COLLAB_* environment variables. The result is
// validated.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("config: env file %s: %w", f, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields from COLLAB_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DATA_FULL":      &c.Data.Full,
		"DATA_REDUCED":   &c.Data.Reduced,
		"CACHE_PATH":     &c.Cache.Path,
		"HUB_NAME":       &c.Hub.Name,
		"LOG_LEVEL":      &c.Logging.Level,
		"LOG_FORMAT":     &c.Logging.Format,
		"NEO4J_URI":      &c.Neo4j.URI,
		"NEO4J_DATABASE": &c.Neo4j.Database,
		"NEO4J_USERNAME": &c.Neo4j.Username,
		"NEO4J_PASSWORD": &c.Neo4j.Password,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"LABELING_WORKERS":      &c.Labeling.Workers,
		"NEO4J_MAX_CONNECTIONS": &c.Neo4j.MaxConnections,
	}
	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err)
		}
		*dst = n
	}

	if v, ok := lookup(EnvPrefix + "INGEST_STRICT"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sINGEST_STRICT=%q: %v", ErrInvalid, EnvPrefix, v, err)
		}
		c.Ingest.Strict = b
	}

	return nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch {
	case c.Data.Full == "" || c.Data.Reduced == "":
		return fmt.Errorf("%w: both dataset paths are required", ErrInvalid)
	case c.Cache.Path == "":
		return fmt.Errorf("%w: cache path is required", ErrInvalid)
	case strings.TrimSpace(c.Hub.Name) == "":
		return fmt.Errorf("%w: hub name is required", ErrInvalid)
	case c.Labeling.Workers < 0:
		return fmt.Errorf("%w: labeling workers cannot be negative (%d)", ErrInvalid, c.Labeling.Workers)
	case c.Neo4j.MaxConnections < 0:
		return fmt.Errorf("%w: neo4j max_connections cannot be negative (%d)", ErrInvalid, c.Neo4j.MaxConnections)
	}
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "", "auto", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

// DatasetPath returns the dataset file for the reduced or full variant.
func (c *Config) DatasetPath(reduced bool) string {
	if reduced {
		return c.Data.Reduced
	}
	return c.Data.Full
}
