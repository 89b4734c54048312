// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package resolution converts between time and candle units, one unit per candle.
package resolution

import (
	"fmt"
	"math"
	"maycharts/stockval"
	"time"
)

type Resolution int32

const (
	OneMinute Resolution = iota
	FiveMinutes
	FifteenMinutes
	ThirtyMinutes
	SixtyMinutes
	OneDay
	OneWeek
	OneMonth
)

const NumResolutions = OneMonth + 1

var names = [NumResolutions]string{"1m", "5m", "15m", "30m", "60m", "1d", "1w", "1mo"}

// Parse returns the resolution named s, e.g. "5m" or "1d".
func Parse(s string) (Resolution, error) {
	for r := range NumResolutions {
		if names[r] == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resolution %q", s)
}

func (r Resolution) String() string {
	if r < 0 || r >= NumResolutions {
		return "invalid"
	}
	return names[r]
}

// FormatString is the time layout of axis labels.
func (r Resolution) FormatString() string {
	switch r {
	case OneMinute, FiveMinutes, FifteenMinutes, ThirtyMinutes, SixtyMinutes:
		return "15:04"
	case OneDay, OneWeek:
		return "02 Jan 06"
	case OneMonth:
		return "Jan 2006"
	default:
		panic("unsupported candle resolution")
	}
}

// Duration of the candle containing context.
func (r Resolution) Duration(context time.Time) time.Duration {
	switch r {
	case OneMinute:
		return time.Minute
	case FiveMinutes:
		return time.Minute * 5
	case FifteenMinutes:
		return time.Minute * 15
	case ThirtyMinutes:
		return time.Minute * 30
	case SixtyMinutes:
		return time.Hour
	case OneDay:
		return getDayDuration(context)
	case OneWeek:
		d, _ := getWeekDuration(context)
		return d
	case OneMonth:
		d, _ := getMonthDuration(context)
		return d
	default:
		panic("unsupported candle resolution")
	}
}

// NthCandleTime returns the start of the candle n candles after the one containing t.
func (r Resolution) NthCandleTime(t time.Time, n int) time.Time {
	// Get 0th candle time first, so that n = 0 works.
	t = r.getRecentCandleStartTime(t)
	if n < 0 {
		for i := 0; i > n; i-- {
			// Go one second back to the previous interval to get the correct duration.
			t = t.Add(-r.Duration(t.Add(-time.Second)))
		}
	}
	for i := 0; i < n; i++ {
		t = t.Add(r.Duration(t))
	}
	return t
}

// ToUnits converts t to candle units. Whole numbers are candle starts.
func (r Resolution) ToUnits(t time.Time) float64 {
	switch r {
	case OneMinute:
		return float64(t.UnixMilli()) / 60000
	case FiveMinutes:
		return float64(t.UnixMilli()) / (60000 * 5)
	case FifteenMinutes:
		return float64(t.UnixMilli()) / (60000 * 15)
	case ThirtyMinutes:
		return float64(t.UnixMilli()) / (60000 * 30)
	case SixtyMinutes:
		return float64(t.UnixMilli()) / (60000 * 60)
	case OneDay:
		return float64(t.Unix()) / (60 * 60 * 24)
	case OneWeek:
		// Jan 1 1970 was a Thursday, we need our weeks to start on Monday.
		// So in this case, we adjust the start and use Monday Jan 5 1970.
		s := time.Date(1970, 1, 5, 0, 0, 0, 0, time.UTC)
		numWeeks := int(t.Sub(s).Hours()) / (24 * 7)
		d, firstDay := getWeekDuration(t)
		return float64(numWeeks) + (t.Sub(firstDay).Seconds() / d.Seconds())
	case OneMonth:
		y, m, _ := t.Date()
		numMonths := (y-1970)*12 + (int(m) - 1)
		d, firstDay := getMonthDuration(t)
		return float64(numMonths) + (t.Sub(firstDay).Seconds() / d.Seconds())
	default:
		panic("unsupported candle resolution")
	}
}

// ToTime is the inverse of ToUnits.
func (r Resolution) ToTime(u float64) time.Time {
	switch r {
	case OneMinute:
		return time.UnixMilli(int64(math.Round(u * 60000))).UTC()
	case FiveMinutes:
		return time.UnixMilli(int64(math.Round(u * 60000 * 5))).UTC()
	case FifteenMinutes:
		return time.UnixMilli(int64(math.Round(u * 60000 * 15))).UTC()
	case ThirtyMinutes:
		return time.UnixMilli(int64(math.Round(u * 60000 * 30))).UTC()
	case SixtyMinutes:
		return time.UnixMilli(int64(math.Round(u * 60000 * 60))).UTC()
	case OneDay:
		return time.Unix(int64(math.Round(u*60*60*24)), 0).UTC()
	case OneWeek:
		// Jan 1 1970 was a Thursday, we need our weeks to start on Monday.
		// So in this case, we adjust the start and use Monday Jan 5 1970.
		firstDay := time.Date(1970, 1, 5+(int(u)*7), 0, 0, 0, 0, time.UTC)
		d, _ := getWeekDuration(firstDay)
		return firstDay.Add(time.Duration((u - float64(int(u))) * float64(d)))
	case OneMonth:
		firstDay := time.Date(1970, time.Month(1+int(u)), 1, 0, 0, 0, 0, time.UTC)
		d, _ := getMonthDuration(firstDay)
		return firstDay.Add(time.Duration((u - float64(int(u))) * float64(d)))
	default:
		panic("unsupported candle resolution")
	}
}

func (r Resolution) getRecentCandleStartTime(t time.Time) time.Time {
	switch r {
	case OneMinute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	case FiveMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/5*5, 0, 0, t.Location())
	case FifteenMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/15*15, 0, 0, t.Location())
	case ThirtyMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()/30*30, 0, 0, t.Location())
	case SixtyMinutes:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case OneDay:
		// We use UTC start of day as normalised start of day-based candles.
		// The broker may use timestamps of closing time, which may even be non-constant.
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case OneWeek:
		// Candlestick weeks start on Mondays. Golang Weeks start on Sundays.
		// We need to adjust the difference.
		weekdayDiff := int(t.Weekday()) - int(time.Monday)
		if weekdayDiff < 0 {
			weekdayDiff = 7 + weekdayDiff
		}
		return time.Date(t.Year(), t.Month(), t.Day()-weekdayDiff, 0, 0, 0, 0, time.UTC)
	case OneMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		panic("unsupported candle resolution")
	}
}

func getDayDuration(t time.Time) time.Duration {
	y := t.Year()
	m := t.Month()
	d := t.Day()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Sub(
		time.Date(y, m, d, 0, 0, 0, 0, t.Location()),
	)
}

func getWeekDuration(t time.Time) (time.Duration, time.Time) {
	// Candlestick weeks start on Mondays. Golang Weeks start on Sundays.
	// We need to adjust the difference.
	weekdayDiff := int(t.Weekday()) - int(time.Monday)
	if weekdayDiff < 0 {
		weekdayDiff = 7 + weekdayDiff
	}
	y, m, d := t.Date()
	d -= weekdayDiff
	s := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return time.Date(y, m, d+7, 0, 0, 0, 0, t.Location()).Sub(s), s
}

func getMonthDuration(t time.Time) (time.Duration, time.Time) {
	// Use "Sub" call so that daylight saving time is considered.
	y := t.Year()
	m := t.Month()
	s := time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location()).Sub(s), s
}

// Formatter labels an X axis in candle units with the candle time.
type Formatter struct {
	Resolution Resolution
}

func (f Formatter) FormatValue(value float64, _ *stockval.AxisModel) string {
	if !stockval.IsFinite(value) {
		return ""
	}
	return f.Resolution.ToTime(value).Format(f.Resolution.FormatString())
}
