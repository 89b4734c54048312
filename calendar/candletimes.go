// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calendar

import (
	"math"
	"maycharts/resolution"
	"maycharts/stockval"
	"time"
)

// CandleTimes returns the start times of count candles beginning at from.
// Intraday candles are within regular trading hours, daily candles are on
// trading days. Weekly and monthly candles start on the first trading day of
// their period.
func (c *TradingCalendar) CandleTimes(res resolution.Resolution, from time.Time, count int) []time.Time {
	if count <= 0 {
		return nil
	}
	from = from.In(c.location)
	times := make([]time.Time, 0, count)
	day := startOfDay(from)
	if trading, _ := c.IsTradingDay(day); !trading {
		day = c.NextTradingDay(day)
	}
	var lastPeriod int
	for len(times) < count {
		switch res {
		case resolution.OneDay:
			if !day.Before(startOfDay(from)) {
				times = append(times, day)
			}
		case resolution.OneWeek, resolution.OneMonth:
			p := period(res, day)
			if p != lastPeriod && !day.Before(startOfDay(from)) {
				times = append(times, day)
			}
			lastPeriod = p
		default:
			s, _ := c.Session(day)
			for t := s.Open; s.Contains(t) && len(times) < count; t = t.Add(res.Duration(t)) {
				if !t.Before(from) {
					times = append(times, t)
				}
			}
		}
		day = c.NextTradingDay(day)
	}
	return times
}

func period(res resolution.Resolution, day time.Time) int {
	if res == resolution.OneWeek {
		y, w := day.ISOWeek()
		return y*100 + w
	}
	return day.Year()*100 + int(day.Month())
}

// IndexFormatter labels X values which are indexes into Times, as used for
// candles without gaps on non-trading days.
type IndexFormatter struct {
	Times  []time.Time
	Layout string
}

func (f IndexFormatter) FormatValue(value float64, _ *stockval.AxisModel) string {
	if !stockval.IsFinite(value) {
		return ""
	}
	i := int(math.Round(value))
	if i < 0 || i >= len(f.Times) {
		return ""
	}
	return f.Times[i].Format(f.Layout)
}
