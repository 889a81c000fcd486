/*
File : rocket/config/config.go

Package config loads the optional rocket.yaml settings file that customizes
the REPL's banner, prompt, and color behavior. Grounded in the teacher's
hardcoded BANNER/VERSION/AUTHOR/PROMPT package vars in main/main.go, but
made overridable from a file instead of baked into the binary — the
teacher's gopkg.in/yaml.v3 dependency (transitive-only in go-mix, since
nothing there actually imports it) is what this package promotes to direct
use.
*/
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings a rocket.yaml file may override. Every field
// has a built-in default (see Default) so a missing or partial file still
// produces a usable Config.
type Config struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Prompt  string `yaml:"prompt"`
	Line    string `yaml:"line"`
	Color   *bool  `yaml:"color"`
}

const defaultBanner = `
 ____             _        _
|  _ \ ___   ___ | | _____| |_
| |_) / _ \ / _ \| |/ / _ \ __|
|  _ < (_) | (_) |   <  __/ |_
|_| \_\___/ \___/|_|\_\___|\__|
`

// Default returns the built-in settings used when no rocket.yaml is found,
// matching the teacher's hardcoded BANNER/VERSION/PROMPT/LINE constants.
func Default() *Config {
	on := true
	return &Config{
		Banner:  defaultBanner,
		Version: "v0.1.0",
		Prompt:  "rocket >>> ",
		Line:    "----------------------------------------------------------------",
		Color:   &on,
	}
}

// Load reads and parses path, overlaying whatever fields are present onto
// Default(). A missing file is not an error — it simply yields the
// defaults, per spec: config absence is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ColorEnabled reports whether colorized output should be used, defaulting
// to true when the file didn't set the field explicitly.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
