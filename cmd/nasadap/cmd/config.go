// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v2"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// Credential is the path to the Earthdata login credential file
	Credential string `json:"credential,omitempty" yaml:"credential,omitempty"`
	// CacheDir is the root directory of the local granule cache
	CacheDir string `json:"cachedir,omitempty" yaml:"cachedir,omitempty"`
	// Concurrency tunes the number of concurrent archive requests
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	// Endpoint overrides the mission's archive endpoint
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	// LogLevel sets the logging level (info, debug or none)
	LogLevel string `json:"loglevel,omitempty" yaml:"loglevel,omitempty"`
}

func newConfig() (*CLIConfig, error) {
	config := CLIConfig{}
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// setNasadapParams fills in unset flags from the configuration.
func (c *CLIConfig) setNasadapParams(flags *flagsT) {
	if flags.root.credFile == "" {
		flags.root.credFile = c.Credential
	}
	if flags.cache.Dir == "" {
		flags.cache.Dir = c.CacheDir
	}
	if flags.core.ConcurrencyFactor == 0 {
		flags.core.ConcurrencyFactor = c.Concurrency
	}
	if flags.core.Endpoint == "" {
		flags.core.Endpoint = c.Endpoint
	}
	if flags.root.logLevel == "info" && c.LogLevel != "" {
		flags.root.logLevel = c.LogLevel
	}
}

// MarshalConfig produces the CLI configuration as a yaml document.
func (c *CLIConfig) MarshalConfig() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *CLIConfig) write(dir string) error {
	bytes, err := c.MarshalConfig()
	if err != nil {
		return fmt.Errorf("serialize config to yaml: %w", err)
	}
	if err = os.MkdirAll(dir, 0777); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}
	pth := filepath.Join(dir, "nasadap.yaml")
	if err = os.WriteFile(pth, bytes, 0666); err != nil {
		return fmt.Errorf("write config file %s: %w", pth, err)
	}
	infoLogger.Println("configuration file created at", pth)
	return nil
}
