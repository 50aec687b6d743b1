// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

// Calendar arithmetic is closed-form, in the standard library's
// 400/100/4-year cycle style; no code here ever iterates over days or
// months. Day 0 of the epoch day count is 2000-01-01.

// A Date is a proleptic Gregorian calendar date. Year 0 is the year
// conventionally written 1 BC.
type Date struct {
	Year  int // 0..9999
	Month int // 1..12
	Day   int // 1..days in month
}

const (
	// The zero year for internal day counts. Must be 1 mod 400 so that
	// the leap year falls on the last year of every 4-year cycle.
	absoluteZeroYear = -399

	// Day count from absoluteZeroYear-01-01 to 2000-01-01.
	absoluteToEpoch = 876216

	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

const (
	// MinEpochDays is the epoch day count of 0000-01-01.
	MinEpochDays = -730485

	// MaxEpochDays is the epoch day count of 9999-12-31.
	MaxEpochDays = 2921939
)

// daysBefore[m] counts the number of days in a non-leap year before
// month m+1 begins. The entry for m=12 counts the days before January
// of the next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// daysIn returns the number of days in the given month of the given year.
func daysIn(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// daysToYear returns the day count from absoluteZeroYear-01-01 to
// January 1 of the given year.
func daysToYear(year int) int {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y
	return d
}

// DaysFromDate returns the epoch day count of d. It fails with
// ErrOutOfRange when d.Year lies outside 0-9999 and with ErrInvalidDate
// when the month or day does not exist in that year.
func DaysFromDate(d Date) (int, error) {
	if d.Year < 0 || d.Year > 9999 {
		return 0, ErrOutOfRange
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > daysIn(d.Year, d.Month) {
		return 0, ErrInvalidDate
	}
	n := daysToYear(d.Year) + daysBefore[d.Month-1]
	if isLeap(d.Year) && d.Month > 2 {
		n++
	}
	n += d.Day - 1
	return n - absoluteToEpoch, nil
}

// DateFromDays returns the calendar date of the given epoch day count.
// It is total over MinEpochDays..MaxEpochDays and fails with
// ErrOutOfRange outside that span.
func DateFromDays(days int) (Date, error) {
	if days < MinEpochDays || days > MaxEpochDays {
		return Date{}, ErrOutOfRange
	}
	return civilFromDays(days), nil
}

// civilFromDays converts without the public range check. It remains
// exact for a few days on either side of the supported span, which the
// local-view accessors rely on when an offset carries a boundary date
// across year 0 or 9999.
func civilFromDays(days int) Date {
	d := uint64(days + absoluteToEpoch)

	// Account for 400-year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles. The last cycle has one extra leap
	// year, so on the last day of that year d/daysPer100Years is 4
	// instead of 3; cut it back down by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle, with the same end-of-cycle
	// adjustment as for centuries.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year := int(y) + absoluteZeroYear
	day := int(d)

	if isLeap(year) {
		switch {
		case day > 31+29-1:
			// After the leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			return Date{Year: year, Month: 2, Day: 29}
		}
	}

	// Estimate the month assuming every month has 31 days; the
	// estimate is low by at most one month.
	month := day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}
	return Date{Year: year, Month: month + 1, Day: day - begin + 1}
}
