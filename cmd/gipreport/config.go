// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/gridcf/gipreport/pkg/confopt"
)

type config struct {
	URL        string           `yaml:"url"`
	Sites      []string         `yaml:"sites"`
	Timeout    confopt.Duration `yaml:"timeout"`
	Strict     bool             `yaml:"strict"`
	BinaryPath string           `yaml:"infosites_binary"`
	BDII       string           `yaml:"bdii"`
	VOs        []string         `yaml:"vos"`
}

func defaultConfig() config {
	return config{
		URL:        "ldap://is.grid.iu.edu:2170",
		BDII:       "is.grid.iu.edu:2170",
		BinaryPath: "lcg-infosites",
		VOs:        []string{"mis", "ops", "cms", "atlas"},
	}
}

// loadConfig reads the YAML config at path over the built-in defaults.
// A missing file is not an error: defaults apply, sites come from the CLI.
func loadConfig(path string) (config, error) {
	conf := defaultConfig()

	bs, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, err
	}

	if err := yaml.Unmarshal(bs, &conf); err != nil {
		return conf, fmt.Errorf("parse config '%s': %v", path, err)
	}

	return conf, nil
}
