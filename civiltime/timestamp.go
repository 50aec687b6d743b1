// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

// A Timestamp is an instant in time together with an attached local
// offset. Timestamps are immutable values; all conversions return new
// ones. The zero value is the epoch instant with no specified offset.
type Timestamp struct {
	days      int
	secs      Seconds
	offset    int // minutes east of UTC; 0 when hasOffset is false
	hasOffset bool
}

// Epoch is 2000-01-01T00:00:00+00:00, day zero of the epoch day count,
// with an explicit zero offset attached.
var Epoch = Timestamp{hasOffset: true}

var secondsPerDay = SecondsOf(86400)

// An Instant is the UTC-relative decomposition of a Timestamp: a day
// count from the epoch, the UTC time of day in seconds, and the
// attached local offset. HasOffset false means UTC with the offset
// left unspecified, which is distinct from an explicit zero offset.
type Instant struct {
	Days      int     // days since 2000-01-01 UTC
	Secs      Seconds // UTC time of day, in [0, 86401)
	Offset    int     // local offset, minutes east of UTC
	HasOffset bool
}

// Equal reports whether i and j match field for field, with seconds
// compared numerically.
func (i Instant) Equal(j Instant) bool {
	return i.Days == j.Days && i.Secs.Equal(j.Secs) &&
		i.HasOffset == j.HasOffset && i.Offset == j.Offset
}

// Instant returns the UTC-relative decomposition of ts.
func (ts Timestamp) Instant() Instant {
	return Instant{Days: ts.days, Secs: ts.secs, Offset: ts.offset, HasOffset: ts.hasOffset}
}

// FromInstant returns the timestamp that i denotes.
//
// An instant denoting no timestamp is a programmer error, not bad
// input, so FromInstant panics rather than returning an error: with
// ErrOutOfRange when i.Days lies outside the supported calendar span,
// with ErrInvalidLeapSecond when i.Secs reaches 86400 on a day that
// cannot end in a leap second, and with ErrInvalidTimeOfDay when
// i.Secs or i.Offset is otherwise out of range. Untrusted input
// should arrive through FromString instead.
func FromInstant(i Instant) Timestamp {
	ts, err := fromInstant(i)
	if err != nil {
		panic(err)
	}
	return ts
}

func fromInstant(i Instant) (Timestamp, error) {
	if i.Days < MinEpochDays || i.Days > MaxEpochDays {
		return Timestamp{}, ErrOutOfRange
	}
	if i.Secs.Sign() < 0 || i.Secs.Cmp(SecondsOf(86401)) >= 0 {
		return Timestamp{}, ErrInvalidTimeOfDay
	}
	if i.Secs.Cmp(secondsPerDay) >= 0 {
		if err := checkLeapDay(i.Days); err != nil {
			return Timestamp{}, err
		}
	}
	off := 0
	if i.HasOffset {
		if i.Offset <= -24*60 || i.Offset >= 24*60 {
			return Timestamp{}, ErrInvalidTimeOfDay
		}
		off = i.Offset
	}
	return Timestamp{days: i.Days, secs: i.Secs, offset: off, hasOffset: i.HasOffset}, nil
}

// EpochDays returns the UTC day count of ts relative to the epoch.
func (ts Timestamp) EpochDays() int { return ts.days }

// UTCTimeOfDaySeconds returns the seconds elapsed since UTC midnight of
// ts's day. The value reaches [86400, 86401) only within a positive
// leap second.
func (ts Timestamp) UTCTimeOfDaySeconds() Seconds { return ts.secs }

// LocalOffsetMinutes returns the attached local offset in minutes east
// of UTC. ok is false when ts is UTC with no specified offset.
func (ts Timestamp) LocalOffsetMinutes() (minutes int, ok bool) {
	return ts.offset, ts.hasOffset
}

// TemporallyEqual reports whether a and b denote the same instant,
// disregarding their attached offsets.
func TemporallyEqual(a, b Timestamp) bool {
	return a.days == b.days && a.secs.Equal(b.secs)
}

// FullyEqual reports whether a and b denote the same instant and carry
// the same attached offset, treating an unspecified offset as distinct
// from an explicit zero one.
func FullyEqual(a, b Timestamp) bool {
	return TemporallyEqual(a, b) && a.hasOffset == b.hasOffset && a.offset == b.offset
}
