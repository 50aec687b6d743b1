// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

// EpochSeconds returns the seconds elapsed from the epoch to ts as an
// exact decimal, negative for instants before 2000. Any partial leap
// second is clamped away first, so leap seconds never count toward the
// total and the result is monotonic only outside leap-second days.
func (ts Timestamp) EpochSeconds() Seconds {
	return ClampTimeOfDaySeconds(ts.secs).AddInt(int64(ts.days) * 86400)
}

// FromEpochSeconds returns the timestamp at the given decimal distance
// from the epoch, with an explicit zero offset attached. Leap seconds
// are ignored, making it the inverse of EpochSeconds.
//
// A value whose day count falls outside the supported calendar span
// denotes no timestamp; that is a programmer error and FromEpochSeconds
// panics with ErrOutOfRange.
func FromEpochSeconds(seconds Seconds) Timestamp {
	q, rem := seconds.floorDiv(86400)
	if !q.IsInt64() {
		panic(ErrOutOfRange)
	}
	days := q.Int64()
	if days < MinEpochDays || days > MaxEpochDays {
		panic(ErrOutOfRange)
	}
	return Timestamp{days: int(days), secs: rem, hasOffset: true}
}

// Subtract returns the epoch-seconds difference a-b as an exact
// decimal, negative when a precedes b.
func Subtract(a, b Timestamp) Seconds {
	return a.EpochSeconds().Sub(b.EpochSeconds())
}
