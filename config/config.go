// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package config stores chart settings in a YAML file.
package config

type Config interface {
	GetAppName() string
	Lock() (*ChartConfig, error)
	Unlock(c *ChartConfig) error
	Copy() (ChartConfig, error)
}
