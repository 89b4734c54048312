// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package calendar knows the trading days of an exchange and creates candle
// times without weekends and holidays.
package calendar

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

const observedHolidayPostfix = "(observed)"

type clockTime struct {
	hours   int
	minutes int
}

func (c clockTime) on(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.hours, c.minutes, 0, 0, day.Location())
}

// Session is the regular trading time of one day.
type Session struct {
	Open    time.Time
	Close   time.Time
	Partial bool
}

func (s Session) Contains(t time.Time) bool {
	return !t.Before(s.Open) && t.Before(s.Close)
}

type TradingCalendar struct {
	location     *time.Location
	calendar     *cal.BusinessCalendar
	open         clockTime
	close        clockTime
	partialClose clockTime
}

// NewNYSECalendar returns the regular trading hours of the New York Stock Exchange.
func NewNYSECalendar() *TradingCalendar {
	// NYSE uses ET, which can be either EST or EDT.
	// Changing to/from daylight saving time does not occur during market hours.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("NYSE time location not supported")
	}
	c := cal.NewBusinessCalendar()
	// Source for bank holidays: https://www.federalreserve.gov/aboutthefed/k8.htm
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	c.Cacheable = true
	return &TradingCalendar{
		location:     loc,
		calendar:     c,
		open:         clockTime{hours: 9, minutes: 30},
		close:        clockTime{hours: 16},
		partialClose: clockTime{hours: 13},
	}
}

func (c *TradingCalendar) Location() *time.Location {
	return c.location
}

// IsHoliday returns whether t is a holiday and its name. Holidays on weekends
// are observed on a weekday, which is marked in the name.
func (c *TradingCalendar) IsHoliday(t time.Time) (bool, string) {
	actual, observed, h := c.calendar.IsHoliday(t.In(c.location))
	switch {
	case actual:
		return true, h.Name
	case observed:
		return true, h.Name + " " + observedHolidayPostfix
	}
	return false, ""
}

func (c *TradingCalendar) IsTradingDay(t time.Time) (trading bool, partial bool) {
	day := t.In(c.location)
	if !c.calendar.IsWorkday(day) {
		return false, false
	}
	// Trading closes early before independence day and christmas, and after thanksgiving.
	if holiday, name := c.IsHoliday(day.AddDate(0, 0, 1)); holiday && (name == us.IndependenceDay.Name || name == us.ChristmasDay.Name) {
		return true, true
	}
	if holiday, name := c.IsHoliday(day.AddDate(0, 0, -1)); holiday && name == us.ThanksgivingDay.Name {
		return true, true
	}
	return true, false
}

// Session returns the trading hours of the day containing t.
func (c *TradingCalendar) Session(t time.Time) (Session, bool) {
	day := t.In(c.location)
	trading, partial := c.IsTradingDay(day)
	if !trading {
		return Session{}, false
	}
	s := Session{Open: c.open.on(day), Close: c.close.on(day), Partial: partial}
	if partial {
		s.Close = c.partialClose.on(day)
	}
	return s, true
}

// NextTradingDay returns midnight of the first trading day after the day containing t.
func (c *TradingCalendar) NextTradingDay(t time.Time) time.Time {
	day := startOfDay(t.In(c.location))
	for {
		day = day.AddDate(0, 0, 1)
		if trading, _ := c.IsTradingDay(day); trading {
			return day
		}
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
