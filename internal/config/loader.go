// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FileName is the configuration file name looked up during path
	// resolution.
	FileName = "dish.json"
	// HomeEnv is the environment variable that, when set, names the
	// directory containing [FileName].
	HomeEnv = "DHIS_HOME"
)

// Load reads, merges, and validates the configuration from all sources
// in the following priority order (first source wins for non-zero
// fields):
//  1. Environment variables (DHIS_USERNAME, DHIS_PASSWORD, DHIS_BASE_URL)
//  2. The dish.json file at the resolved path
//
// Returns a fully populated *Config or an error if the file cannot be
// read or the final config fails validation. A missing or malformed
// file is fatal; callers should terminate rather than retry.
func Load() (*Config, error) {
	return LoadFrom(ResolvePath())
}

// LoadFrom is Load with an explicit file path, used by tests and by
// callers that bypass path resolution.
func LoadFrom(path string) (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFile(path).
		build()
}

// ResolvePath returns the location of dish.json. It checks, in order,
// the directory named by the DHIS_HOME environment variable, then the
// OS user home directory, then falls back to a path relative to the
// working directory.
func ResolvePath() string {
	if home := os.Getenv(HomeEnv); home != "" {
		return filepath.Join(home, FileName)
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, FileName)
	}
	return FileName
}

func parseFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	return &cfg, nil
}

// validate checks that the merged [Config] satisfies the invariants the
// transport layer relies on.
func (c *Config) validate() error {
	if c.DHIS.Username == "" || c.DHIS.Password == "" {
		return ErrMissingCredentials
	}

	return nil
}
