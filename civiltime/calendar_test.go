// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDaysFromDateKnown(t *testing.T) {
	for _, test := range []struct {
		date Date
		want int
	}{
		{Date{2000, 1, 1}, 0},
		{Date{2000, 1, 2}, 1},
		{Date{1999, 12, 31}, -1},
		{Date{2000, 2, 29}, 59},
		{Date{2000, 3, 1}, 60},
		{Date{2000, 12, 31}, 365},
		{Date{2001, 1, 1}, 366},
		{Date{1970, 1, 1}, -10957}, // the Unix epoch
		{Date{0, 1, 1}, MinEpochDays},
		{Date{9999, 12, 31}, MaxEpochDays},
	} {
		got, err := DaysFromDate(test.date)
		if err != nil {
			t.Errorf("DaysFromDate(%v): unexpected error %v", test.date, err)
			continue
		}
		if got != test.want {
			t.Errorf("DaysFromDate(%v) = %d, want %d", test.date, got, test.want)
		}
	}
}

func TestDaysFromDateInvalid(t *testing.T) {
	for _, test := range []struct {
		date Date
		want error
	}{
		{Date{1900, 2, 29}, ErrInvalidDate}, // centuries off the 400 rule are not leap
		{Date{2100, 2, 29}, ErrInvalidDate},
		{Date{2023, 2, 29}, ErrInvalidDate},
		{Date{2023, 4, 31}, ErrInvalidDate},
		{Date{2023, 13, 1}, ErrInvalidDate},
		{Date{2023, 0, 1}, ErrInvalidDate},
		{Date{2023, 6, 0}, ErrInvalidDate},
		{Date{-1, 1, 1}, ErrOutOfRange},
		{Date{10000, 1, 1}, ErrOutOfRange},
	} {
		if _, err := DaysFromDate(test.date); !errors.Is(err, test.want) {
			t.Errorf("DaysFromDate(%v) error = %v, want %v", test.date, err, test.want)
		}
	}
}

func TestDateFromDaysKnown(t *testing.T) {
	for _, test := range []struct {
		days int
		want Date
	}{
		{0, Date{2000, 1, 1}},
		{59, Date{2000, 2, 29}},
		{60, Date{2000, 3, 1}},
		{-10957, Date{1970, 1, 1}},
		{MinEpochDays, Date{0, 1, 1}},
		{MaxEpochDays, Date{9999, 12, 31}},
	} {
		got, err := DateFromDays(test.days)
		if err != nil {
			t.Errorf("DateFromDays(%d): unexpected error %v", test.days, err)
			continue
		}
		if got != test.want {
			t.Errorf("DateFromDays(%d) = %v, want %v", test.days, got, test.want)
		}
	}

	for _, days := range []int{MinEpochDays - 1, MaxEpochDays + 1} {
		if _, err := DateFromDays(days); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("DateFromDays(%d) error = %v, want %v", days, err, ErrOutOfRange)
		}
	}
}

// TestDateDayRoundTrip checks DaysFromDate and DateFromDays are mutual
// inverses across the whole supported span.
func TestDateDayRoundTrip(t *testing.T) {
	for days := MinEpochDays; days <= MaxEpochDays; days += 997 {
		date, err := DateFromDays(days)
		if err != nil {
			t.Fatalf("DateFromDays(%d): %v", days, err)
		}
		back, err := DaysFromDate(date)
		if err != nil {
			t.Fatalf("DaysFromDate(%v): %v", date, err)
		}
		if back != days {
			t.Fatalf("round trip of day %d via %v returned %d", days, date, back)
		}
	}

	// Month boundaries stress the closed-form month estimate.
	for _, year := range []int{0, 1, 399, 400, 1900, 1972, 2000, 2003, 2004, 2100, 9999} {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, daysIn(year, month)} {
				date := Date{year, month, day}
				n, err := DaysFromDate(date)
				if err != nil {
					t.Fatalf("DaysFromDate(%v): %v", date, err)
				}
				got, err := DateFromDays(n)
				if err != nil {
					t.Fatalf("DateFromDays(%d): %v", n, err)
				}
				if diff := cmp.Diff(date, got); diff != "" {
					t.Fatalf("round trip of %v (day %d) mismatch (-want +got):\n%s", date, n, diff)
				}
			}
		}
	}
}

func TestLeapYearRule(t *testing.T) {
	for _, test := range []struct {
		year int
		want bool
	}{
		{0, true}, // year 0 is divisible by 400
		{1, false},
		{4, true},
		{100, false},
		{400, true},
		{1900, false},
		{1972, true},
		{2000, true},
		{2023, false},
		{2024, true},
		{9996, true},
		{9999, false},
	} {
		if got := isLeap(test.year); got != test.want {
			t.Errorf("isLeap(%d) = %v, want %v", test.year, got, test.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	if got := daysIn(2000, 2); got != 29 {
		t.Errorf("daysIn(2000, 2) = %d, want 29", got)
	}
	if got := daysIn(1900, 2); got != 28 {
		t.Errorf("daysIn(1900, 2) = %d, want 28", got)
	}
	if got := daysIn(2023, 6); got != 30 {
		t.Errorf("daysIn(2023, 6) = %d, want 30", got)
	}
	if got := daysIn(2023, 12); got != 31 {
		t.Errorf("daysIn(2023, 12) = %d, want 31", got)
	}
}
