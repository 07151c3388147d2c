// Package config loads the optional session profile that customizes the
// simulated device: prompt identity, host label, home path, and extra
// seed entries layered over the built-in tree.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/demosh/demosh/pkg/demosh"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound)
// and fall back to Default().
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the profile looked up in the working directory when
// no --config flag is given.
const ConfigFileName = "demosh.yaml"

// SeedEntry is one extra node layered over the default tree at startup.
type SeedEntry struct {
	Path    string `yaml:"path"`
	Dir     bool   `yaml:"dir,omitempty"`
	Content string `yaml:"content,omitempty"`
}

// Profile describes the simulated session. Zero-value fields take the
// demosh defaults.
type Profile struct {
	User         string      `yaml:"user"`
	ElevatedUser string      `yaml:"elevated_user,omitempty"`
	Host         string      `yaml:"host"`
	Home         string      `yaml:"home"`
	Seed         []SeedEntry `yaml:"seed,omitempty"`
}

// Default returns the built-in profile.
func Default() *Profile {
	return &Profile{
		User:         demosh.DefaultUser,
		ElevatedUser: demosh.DefaultElevatedUser,
		Host:         demosh.DefaultHost,
		Home:         demosh.DefaultHome,
	}
}

// Load reads and validates a profile from the given file path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", demosh.ErrInvalidConfig, err)
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) applyDefaults() {
	if p.User == "" {
		p.User = demosh.DefaultUser
	}
	if p.ElevatedUser == "" {
		p.ElevatedUser = demosh.DefaultElevatedUser
	}
	if p.Host == "" {
		p.Host = demosh.DefaultHost
	}
	if p.Home == "" {
		p.Home = demosh.DefaultHome
	}
}

// ApplyEnv overlays DEMOSH_* environment variables on the profile. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win, matching godotenv semantics.
func (p *Profile) ApplyEnv() {
	_ = godotenv.Load()
	if v := os.Getenv("DEMOSH_USER"); v != "" {
		p.User = v
	}
	if v := os.Getenv("DEMOSH_ELEVATED_USER"); v != "" {
		p.ElevatedUser = v
	}
	if v := os.Getenv("DEMOSH_HOST"); v != "" {
		p.Host = v
	}
	if v := os.Getenv("DEMOSH_HOME"); v != "" {
		p.Home = v
	}
}

// Validate checks profile invariants. All failures wrap
// demosh.ErrInvalidConfig.
func (p *Profile) Validate() error {
	if !strings.HasPrefix(p.Home, "/") {
		return fmt.Errorf("%w: home %q must be an absolute path", demosh.ErrInvalidConfig, p.Home)
	}
	seen := make(map[string]struct{}, len(p.Seed))
	for _, e := range p.Seed {
		if !strings.HasPrefix(e.Path, "/") {
			return fmt.Errorf("%w: seed path %q must be absolute", demosh.ErrInvalidConfig, e.Path)
		}
		if _, dup := seen[e.Path]; dup {
			return fmt.Errorf("%w: duplicate seed path %q", demosh.ErrInvalidConfig, e.Path)
		}
		seen[e.Path] = struct{}{}
		if e.Dir && e.Content != "" {
			return fmt.Errorf("%w: seed path %q cannot be a directory with content", demosh.ErrInvalidConfig, e.Path)
		}
	}
	return nil
}
