// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package config

import (
	"fmt"
	"image/color"
	"maycharts/indapi"
)

type IndicatorConfig struct {
	IndicatorId indapi.IndicatorId
	Properties  map[string]string `yaml:",omitempty"`
	// Colors as hex strings, an empty string selects the theme color.
	Colors []string `yaml:",omitempty"`
}

func (i *IndicatorConfig) ParseColors() ([]color.NRGBA, error) {
	colors := make([]color.NRGBA, len(i.Colors))
	for j, s := range i.Colors {
		c, err := colorOr(s, color.NRGBA{})
		if err != nil {
			return nil, fmt.Errorf("indicator %s: %w", i.IndicatorId, err)
		}
		colors[j] = c
	}
	return colors, nil
}
