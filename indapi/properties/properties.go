// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package properties

import (
	"maycharts/chartlog"
	"strconv"
)

// SetPositiveValue parses value into n. Invalid values are ignored and logged.
func SetPositiveValue(n *int, key, value string) {
	valInt, err := strconv.Atoi(value)
	if err != nil || valInt <= 0 {
		chartlog.Logger().Warn("invalid indicator property ignored", "key", key, "value", value)
		return
	}
	*n = valInt
}

func Unknown(key string) {
	chartlog.Logger().Warn("unknown indicator property ignored", "key", key)
}
