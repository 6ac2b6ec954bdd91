// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the server configuration, read from an optional YAML file. Keys
// absent from the file keep their defaults.
type config struct {
	Port        int    `yaml:"port"`
	SectionsZip string `yaml:"sectionsZip"`
	RoomsZip    string `yaml:"roomsZip"`
	QueryFile   string `yaml:"queryFile"`
}

func defaultConfig() config {
	return config{
		Port:        310,
		SectionsZip: "pair.zip",
		RoomsZip:    "campus.zip",
		QueryFile:   "test.json",
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	return cfg, nil
}
