// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

// A TimeOfDay is a wall-clock reading. Second lies in [0, 60) except
// within a positive leap second, where it lies in [60, 61).
type TimeOfDay struct {
	Hour   int // 0..23
	Minute int // 0..59
	Second Seconds
}

// A ZoneOffset is a signed displacement of local time from UTC. Sign
// must be +1 whenever Hour and Minute are both zero: there is no
// signed zero offset.
type ZoneOffset struct {
	Sign   int // +1 or -1
	Hour   int // 0..23
	Minute int // 0..59
}

// ZoneOffsetZero is the explicit +00:00 offset.
var ZoneOffsetZero = ZoneOffset{Sign: 1}

// minutes returns the offset as signed minutes east of UTC.
func (o ZoneOffset) minutes() int { return o.Sign * (o.Hour*60 + o.Minute) }

func (o ZoneOffset) valid() bool {
	if o.Hour < 0 || o.Hour > 23 || o.Minute < 0 || o.Minute > 59 {
		return false
	}
	switch o.Sign {
	case 1:
		return true
	case -1:
		return o.Hour != 0 || o.Minute != 0
	}
	return false
}

// zoneOffsetFromMinutes decomposes signed minutes east of UTC into the
// structured form, mapping zero to the unsigned +00:00.
func zoneOffsetFromMinutes(min int) ZoneOffset {
	if min < 0 {
		return ZoneOffset{Sign: -1, Hour: -min / 60, Minute: -min % 60}
	}
	return ZoneOffset{Sign: 1, Hour: min / 60, Minute: min % 60}
}

// FromLocalDateTimeOffset interprets date and tod as a reading of a
// clock running offset ahead of UTC, derives the UTC instant, and
// returns the timestamp with offset attached as local metadata.
//
// It fails with ErrInvalidDate or ErrInvalidTimeOfDay on out-of-range
// fields, with ErrInvalidLeapSecond when tod.Second reaches 60 at a
// position that is not the end of an eligible UTC day, and with
// ErrOutOfRange when the date lies outside years 0-9999 or the offset
// carries the instant beyond them.
func FromLocalDateTimeOffset(date Date, tod TimeOfDay, offset ZoneOffset) (Timestamp, error) {
	days, err := DaysFromDate(date)
	if err != nil {
		return Timestamp{}, err
	}
	if !offset.valid() {
		return Timestamp{}, ErrInvalidTimeOfDay
	}
	if tod.Hour < 0 || tod.Hour > 23 || tod.Minute < 0 || tod.Minute > 59 ||
		tod.Second.Sign() < 0 || tod.Second.Cmp(SecondsOf(61)) >= 0 {
		return Timestamp{}, ErrInvalidTimeOfDay
	}

	off := offset.minutes()
	base := int64(tod.Hour)*3600 + int64(tod.Minute)*60 - int64(off)*60
	u := tod.Second.AddInt(base)
	q, rem := u.floorDiv(86400)

	if tod.Second.Cmp(SecondsOf(60)) >= 0 {
		// A seconds field in [60, 61) is only meaningful where the
		// zone's clock reads the end of a UTC day: subtracting the
		// offset must land exactly on a day boundary, and the day
		// that just ended must be an eligible leap-second day.
		frac := tod.Second.Sub(SecondsOf(60))
		if !rem.Equal(frac) {
			return Timestamp{}, ErrInvalidLeapSecond
		}
		utcDays := days + int(q.Int64()) - 1
		if err := checkLeapDay(utcDays); err != nil {
			return Timestamp{}, err
		}
		return Timestamp{days: utcDays, secs: rem.AddInt(86400), offset: off, hasOffset: true}, nil
	}

	utcDays := days + int(q.Int64())
	if utcDays < MinEpochDays || utcDays > MaxEpochDays {
		return Timestamp{}, ErrOutOfRange
	}
	return Timestamp{days: utcDays, secs: rem, offset: off, hasOffset: true}, nil
}

// UTCDate returns the calendar date of ts in UTC.
func (ts Timestamp) UTCDate() Date { return civilFromDays(ts.days) }

// UTCTimeOfDay returns the time of day of ts in UTC. Within a leap
// second the Second field lies in [60, 61).
func (ts Timestamp) UTCTimeOfDay() TimeOfDay { return timeOfDayFrom(ts.secs) }

// timeOfDayFrom decomposes a time-of-day seconds value in [0, 86401).
func timeOfDayFrom(secs Seconds) TimeOfDay {
	if secs.Cmp(secondsPerDay) >= 0 {
		return TimeOfDay{Hour: 23, Minute: 59, Second: secs.Sub(secondsPerDay).AddInt(60)}
	}
	whole, frac := secs.Floor()
	return TimeOfDay{
		Hour:   int(whole / 3600),
		Minute: int(whole/60) % 60,
		Second: frac.AddInt(whole % 60),
	}
}

// localParts resolves the local day count and wall-clock reading of ts
// under its attached offset, carrying day boundaries. Within a leap
// second the instant is shifted one second back, resolved, and the
// inserted second restored, so a +05:30 zone reads 05:29:60 while UTC
// reads 23:59:60.
func (ts Timestamp) localParts() (int, TimeOfDay) {
	var adj int64
	if ts.hasOffset {
		adj = int64(ts.offset) * 60
	}
	leap := ts.InLeapSecond()
	if leap {
		adj--
	}
	q, rem := ts.secs.AddInt(adj).floorDiv(86400)
	tod := timeOfDayFrom(rem)
	if leap {
		tod.Second = tod.Second.AddInt(1)
	}
	return ts.days + int(q.Int64()), tod
}

// LocalDate returns the calendar date of ts in its attached offset, or
// in UTC when no offset is attached. It fails with ErrOutOfRange when
// the offset carries the date beyond year 0 or 9999.
func (ts Timestamp) LocalDate() (Date, error) {
	days, _ := ts.localParts()
	return DateFromDays(days)
}

// LocalTimeOfDay returns the wall-clock reading of ts in its attached
// offset, or in UTC when no offset is attached.
func (ts Timestamp) LocalTimeOfDay() TimeOfDay {
	_, tod := ts.localParts()
	return tod
}

// LocalOffset returns the attached offset in structured form. ok is
// false when ts is UTC with no specified offset.
func (ts Timestamp) LocalOffset() (ZoneOffset, bool) {
	if !ts.hasOffset {
		return ZoneOffset{}, false
	}
	return zoneOffsetFromMinutes(ts.offset), true
}

// WithLocalOffset returns ts carrying offset as its local metadata.
// The instant itself, day count and time of day included, is
// unchanged. It fails with ErrInvalidTimeOfDay on an invalid offset.
func (ts Timestamp) WithLocalOffset(offset ZoneOffset) (Timestamp, error) {
	if !offset.valid() {
		return Timestamp{}, ErrInvalidTimeOfDay
	}
	out := ts
	out.offset = offset.minutes()
	out.hasOffset = true
	return out, nil
}
