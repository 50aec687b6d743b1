// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

// The textual profile is RFC3339-like:
//
//	[+|-]year "-" MM "-" DD "T" hh ":" mm ":" ss ["." digits] ("Z" | ("+"|"-") hh ":" mm)
//
// The year field is sign-optional and may have fewer or more than four
// digits; years outside 0-9999 parse but fail with ErrOutOfRange. A
// seconds field of 60 is accepted only where an eligible UTC day ends.
// A terminating "Z" leaves the offset unspecified, which is distinct
// from an explicit "+00:00". The letters T and Z may be lower case.

func digit(b byte) bool { return '0' <= b && b <= '9' }

func toInt2(b0, b1 byte) int { return int(b0-'0')*10 + int(b1-'0') }

// FromString parses text in the profile above and returns the
// timestamp it denotes. Syntactic deviations fail with
// ErrMalformedTimestamp; well-formed text whose fields violate
// calendar or leap-second rules fails with ErrInvalidDate,
// ErrInvalidTimeOfDay, ErrInvalidLeapSecond or ErrOutOfRange.
func FromString(text string) (Timestamp, error) {
	return parseTimestamp(text, true)
}

// FromNoLeapSecondsString is FromString with the leap-second allowance
// removed from the grammar: a seconds field of 60 or more is malformed.
func FromNoLeapSecondsString(text string) (Timestamp, error) {
	return parseTimestamp(text, false)
}

func parseTimestamp(s string, allowLeap bool) (Timestamp, error) {
	i := 0
	yearSign := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		if s[i] == '-' {
			yearSign = -1
		}
		i++
	}

	year := 0
	start := i
	for i < len(s) && digit(s[i]) {
		year = year*10 + int(s[i]-'0')
		i++
		if year > 1_000_000_000 {
			return Timestamp{}, ErrOutOfRange
		}
	}
	if i == start {
		return Timestamp{}, ErrMalformedTimestamp
	}
	year *= yearSign

	// "-MM-DDThh:mm:ss" is 15 bytes, and at least one byte of zone
	// designator must follow.
	if len(s)-i < 16 ||
		s[i] != '-' || !digit(s[i+1]) || !digit(s[i+2]) ||
		s[i+3] != '-' || !digit(s[i+4]) || !digit(s[i+5]) ||
		(s[i+6] != 'T' && s[i+6] != 't') ||
		!digit(s[i+7]) || !digit(s[i+8]) || s[i+9] != ':' ||
		!digit(s[i+10]) || !digit(s[i+11]) || s[i+12] != ':' ||
		!digit(s[i+13]) || !digit(s[i+14]) {
		return Timestamp{}, ErrMalformedTimestamp
	}
	date := Date{Year: year, Month: toInt2(s[i+1], s[i+2]), Day: toInt2(s[i+4], s[i+5])}
	hour := toInt2(s[i+7], s[i+8])
	minute := toInt2(s[i+10], s[i+11])
	secStart := i + 13
	i += 15

	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && digit(s[i]) {
			i++
		}
		if i == fracStart {
			return Timestamp{}, ErrMalformedTimestamp
		}
	}
	sec, err := ParseSeconds(s[secStart:i])
	if err != nil {
		return Timestamp{}, err
	}
	if !allowLeap && sec.Cmp(SecondsOf(60)) >= 0 {
		return Timestamp{}, ErrMalformedTimestamp
	}
	tod := TimeOfDay{Hour: hour, Minute: minute, Second: sec}

	if i >= len(s) {
		return Timestamp{}, ErrMalformedTimestamp
	}
	switch s[i] {
	case 'Z', 'z':
		if i != len(s)-1 {
			return Timestamp{}, ErrMalformedTimestamp
		}
		ts, err := FromLocalDateTimeOffset(date, tod, ZoneOffsetZero)
		if err != nil {
			return Timestamp{}, err
		}
		ts.hasOffset = false
		return ts, nil

	case '+', '-':
		if i+6 != len(s) ||
			!digit(s[i+1]) || !digit(s[i+2]) || s[i+3] != ':' ||
			!digit(s[i+4]) || !digit(s[i+5]) {
			return Timestamp{}, ErrMalformedTimestamp
		}
		off := ZoneOffset{Sign: 1, Hour: toInt2(s[i+1], s[i+2]), Minute: toInt2(s[i+4], s[i+5])}
		if s[i] == '-' {
			off.Sign = -1
			if off.Hour == 0 && off.Minute == 0 {
				// "-00:00" is excluded from the profile.
				return Timestamp{}, ErrMalformedTimestamp
			}
		}
		if off.Hour > 23 || off.Minute > 59 {
			return Timestamp{}, ErrMalformedTimestamp
		}
		return FromLocalDateTimeOffset(date, tod, off)
	}
	return Timestamp{}, ErrMalformedTimestamp
}

// MarshalText implements encoding.TextMarshaler using the same profile
// as String.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using FromString.
func (ts *Timestamp) UnmarshalText(b []byte) error {
	v, err := FromString(string(b))
	if err != nil {
		return err
	}
	*ts = v
	return nil
}
