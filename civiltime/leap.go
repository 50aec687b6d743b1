// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

import "math/big"

// Positive leap seconds may occur only at the end of the last calendar
// day of a UTC month, in 1972 or later. Negative leap seconds are not
// modeled.

// checkLeapDay reports whether the given epoch day may legally contain
// an 86401st second.
func checkLeapDay(days int) error {
	d, err := DateFromDays(days)
	if err != nil {
		return err
	}
	if d.Year < 1972 || d.Day != daysIn(d.Year, d.Month) {
		return ErrInvalidLeapSecond
	}
	return nil
}

// InLeapSecond reports whether ts falls within a positive leap second,
// that is, whether its UTC time of day has reached 86400 seconds.
func (ts Timestamp) InLeapSecond() bool {
	return ts.secs.Cmp(secondsPerDay) >= 0
}

// ClampTimeOfDaySeconds discards a partial leap second: a value of
// 86400 or more becomes the greatest decimal below 86400 carrying the
// same precision, so 86400.25 clamps to 86399.99 and a precision-0
// value clamps to 86399. Smaller values pass through unchanged. The
// operation is exact and idempotent.
func ClampTimeOfDaySeconds(s Seconds) Seconds {
	if s.Cmp(secondsPerDay) < 0 {
		return s
	}
	coef := new(big.Int).Mul(big.NewInt(86400), pow10(s.prec))
	coef.Sub(coef, bigOne)
	return Seconds{coef: coef, prec: s.prec}
}

// WithoutLeapSeconds returns ts with any partial leap second clamped
// away. The attached offset is preserved.
func (ts Timestamp) WithoutLeapSeconds() Timestamp {
	out := ts
	out.secs = ClampTimeOfDaySeconds(ts.secs)
	return out
}
