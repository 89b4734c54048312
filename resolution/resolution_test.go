// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package resolution

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetMonthDuration(t *testing.T) {
	// December has 31 days
	d, _ := getMonthDuration(time.Date(2022, 12, 24, 10, 10, 10, 0, time.UTC))
	assert.Equal(t, float64(44640), d.Minutes())
	// June has 30 days
	d, _ = getMonthDuration(time.Date(2022, 6, 24, 10, 10, 10, 0, time.UTC))
	assert.Equal(t, float64(43200), d.Minutes())
}

func TestGetWeekDuration(t *testing.T) {
	// Normal week.
	d, _ := getWeekDuration(time.Date(2022, 12, 7, 10, 10, 10, 0, time.UTC))
	assert.Equal(t, float64(10080), d.Minutes())
	// Week with DST
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)
	dst := time.Date(2022, 10, 29, 10, 10, 10, 0, loc)
	assert.True(t, dst.IsDST()) // This should use daylight saving time.
	d, _ = getWeekDuration(dst)
	assert.Equal(t, float64(10140), d.Minutes())
}

func TestGetDayDuration(t *testing.T) {
	// Normal day.
	d := getDayDuration(time.Date(2022, 12, 6, 10, 10, 10, 0, time.UTC))
	assert.Equal(t, float64(1440), d.Minutes())
	// Day with DST
	loc, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)
	dst := time.Date(2022, 10, 30, 10, 10, 10, 0, loc)
	d = getDayDuration(dst)
	assert.Equal(t, float64(1500), d.Minutes())
}

func TestNthCandleTime(t *testing.T) {
	r := OneMonth
	d := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	n := r.NthCandleTime(d, 1)
	assert.True(t, n.Equal(time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC)))
	n = r.NthCandleTime(d, 12)
	assert.True(t, n.Equal(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)))
	n = r.NthCandleTime(d, -1)
	assert.True(t, n.Equal(time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC)))
	n = r.NthCandleTime(d, -12)
	assert.True(t, n.Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGetZerothCandleTime(t *testing.T) {
	r := OneMonth
	d := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	n := r.NthCandleTime(d, 0)
	assert.True(t, n.Equal(d))
	r = OneWeek
	d = time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	n = r.NthCandleTime(d, 0)
	assert.True(t, n.Equal(d))
	d2 := time.Date(2022, 1, 5, 0, 0, 0, 0, time.UTC)
	n = r.NthCandleTime(d2, 0)
	assert.True(t, n.Equal(d))
}

func TestToUnitsWeek(t *testing.T) {
	r := OneWeek
	// Use a Monday first (start of week considering stock candles)
	d := time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)
	n := r.ToUnits(d)
	assert.Equal(t, float64(2713), n)
	// Middle of week is at noon on Thursday
	d = time.Date(2022, 1, 6, 12, 0, 0, 0, time.UTC)
	n = r.ToUnits(d)
	assert.Equal(t, float64(2713.5), n)
}

func TestToTimeWeek(t *testing.T) {
	r := OneWeek
	n := r.ToTime(2713)
	assert.True(t, n.Equal(time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)))
	n = r.ToTime(2713.5)
	assert.True(t, n.Equal(time.Date(2022, 1, 6, 12, 0, 0, 0, time.UTC)))
}

func TestToUnitsMonth(t *testing.T) {
	r := OneMonth
	d := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	n := r.ToUnits(d)
	assert.Equal(t, float64(624), n)
	d = time.Date(2022, 3, 16, 12, 0, 0, 0, time.UTC)
	n = r.ToUnits(d)
	assert.Equal(t, float64(626.5), n)
}

func TestToTimeMonth(t *testing.T) {
	r := OneMonth
	n := r.ToTime(624)
	assert.True(t, n.Equal(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)))
	n = r.ToTime(626.5)
	assert.True(t, n.Equal(time.Date(2022, 3, 16, 12, 0, 0, 0, time.UTC)))
}

func TestParse(t *testing.T) {
	for r := range NumResolutions {
		parsed, err := Parse(r.String())
		assert.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	_, err := Parse("2h")
	assert.Error(t, err)
	assert.Equal(t, "invalid", NumResolutions.String())
}

func TestDayUnitsRoundTrip(t *testing.T) {
	d := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	u := OneDay.ToUnits(d)

	assert.Equal(t, u+1, OneDay.ToUnits(OneDay.NthCandleTime(d, 1)))
	assert.True(t, OneDay.ToTime(u).Equal(d))
}

func TestFormatter(t *testing.T) {
	f := Formatter{Resolution: OneDay}
	u := OneDay.ToUnits(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "15 Mar 24", f.FormatValue(u, nil))
	assert.Equal(t, "", f.FormatValue(math.NaN(), nil))

	f.Resolution = FiveMinutes
	u = FiveMinutes.ToUnits(time.Date(2024, 3, 15, 14, 35, 0, 0, time.UTC))
	assert.Equal(t, "14:35", f.FormatValue(u, nil))
}
