// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"errors"
	"fmt"
	"maycharts/chartlog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const AppName = "maycharts"
const configFileName = "chartconfig.yaml"
const configFileVersion = 1

// ErrNewerVersion is returned for configuration files written by a newer release.
// They are not read, so that unknown settings are not lost when writing.
var ErrNewerVersion = errors.New("configuration file from a newer release")

// FileConfig stores the configuration as YAML file in a directory.
type FileConfig struct {
	dir              string
	loaded           bool
	version          VersionConfig
	chartConfig      ChartConfig
	chartConfigMutex sync.Mutex
}

type VersionConfig struct {
	FileVersion int
}

// NewFileConfig creates a configuration stored in dir. The file is read on first access.
func NewFileConfig(dir string) *FileConfig {
	return &FileConfig{
		dir: dir,
		version: VersionConfig{
			FileVersion: configFileVersion,
		},
		chartConfig: NewChartConfig(),
	}
}

// DefaultDir is the configuration directory of the current user.
func DefaultDir() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to determine configuration path: %w", err)
	}
	return filepath.Join(userConfigDir, AppName), nil
}

func (g *FileConfig) GetAppName() string {
	return AppName
}

func (g *FileConfig) fileName() string {
	return filepath.Join(g.dir, configFileName)
}

// Locks access to the configuration and returns a copy which can be modified.
// Unlock needs to be called afterwards, if no error was returned.
func (g *FileConfig) Lock() (*ChartConfig, error) {
	g.chartConfigMutex.Lock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			g.chartConfigMutex.Unlock()
			return nil, err
		}
	}
	chartConfigCopy := g.chartConfig.deepCopy()
	return &chartConfigCopy, nil
}

// Update the configuration and unlock access.
// If the configuration was changed, the configuration will be written before unlocking.
func (g *FileConfig) Unlock(c *ChartConfig) error {
	defer g.chartConfigMutex.Unlock()
	if cmp.Equal(g.chartConfig, *c) {
		return nil
	}
	g.chartConfig = c.deepCopy()
	return g.write()
}

func (g *FileConfig) Copy() (ChartConfig, error) {
	g.chartConfigMutex.Lock()
	defer g.chartConfigMutex.Unlock()
	if !g.loaded {
		err := g.read()
		if err != nil {
			return ChartConfig{}, err
		}
	}
	return g.chartConfig.deepCopy(), nil
}

func (g *FileConfig) read() error {
	fileName := g.fileName()
	file, err := os.ReadFile(fileName)
	if errors.Is(err, os.ErrNotExist) {
		// It is fine if the configuration file does not yet exist.
		chartlog.Logger().Info("configuration file does not yet exist, using defaults", "file", fileName)
		g.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	err = yaml.Unmarshal(file, &g.version)
	if err != nil {
		return fmt.Errorf("failed to parse configuration version: %w", err)
	}
	// Avoid removing new unknown settings if an old release is started with a newer config file.
	if g.version.FileVersion > configFileVersion {
		return fmt.Errorf("%w: version %d instead of %d", ErrNewerVersion, g.version.FileVersion, configFileVersion)
	}
	g.version.FileVersion = configFileVersion
	// Defaults are restored by Sanitize, hidden axes stay nil.
	var chartConfig ChartConfig
	err = yaml.Unmarshal(file, &chartConfig)
	if err != nil {
		return fmt.Errorf("failed to parse chart configuration: %w", err)
	}
	chartConfig.Sanitize()
	g.chartConfig = chartConfig
	g.loaded = true
	chartlog.Logger().Info("configuration read", "file", fileName)
	return nil
}

func (g *FileConfig) write() error {
	err := os.MkdirAll(g.dir, 0700)
	if err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	g.chartConfig.Sanitize()
	stored := g.chartConfig.deepCopy()
	stored.RemoveDefaults()
	fileVersion, err := yaml.Marshal(&g.version)
	if err != nil {
		return fmt.Errorf("error generating configuration version: %w", err)
	}
	fileChartConfig, err := yaml.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("error generating chart configuration: %w", err)
	}

	file := append(fileVersion, fileChartConfig...)
	fileName := g.fileName()
	tmpFileName := fileName + ".tmp"
	// Writing may fail, so we write to a temporary file and replace afterwards.
	err = os.WriteFile(tmpFileName, file, 0600)
	if err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	err = os.Rename(tmpFileName, fileName)
	if err != nil {
		return fmt.Errorf("failed to replace configuration file: %w", err)
	}
	chartlog.Logger().Info("configuration written", "file", fileName)
	return nil
}
