// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

// Failures are reported as typed string constants so that callers can
// compare against a sentinel with errors.Is and switch on the class of
// failure without string matching.

// InvalidError reports a calendar or clock field outside its legal range.
type InvalidError string

// RangeError reports a value outside the supported year span 0 to 9999.
type RangeError string

// ParseError reports text that does not match the timestamp grammar.
type ParseError string

func (e InvalidError) Error() string { return string(e) }
func (e RangeError) Error() string   { return string(e) }
func (e ParseError) Error() string   { return string(e) }

var (
	// ErrInvalidDate reports a nonexistent calendar day, such as
	// February 30 or February 29 of a non-leap year.
	ErrInvalidDate = InvalidError("invalid date")

	// ErrInvalidTimeOfDay reports an hour, minute, second or zone
	// offset field outside its range on a non-leap-second day.
	ErrInvalidTimeOfDay = InvalidError("invalid time of day")

	// ErrInvalidLeapSecond reports a seconds field of 60 or more on a
	// day, or at a position within the day, where no positive leap
	// second can occur.
	ErrInvalidLeapSecond = InvalidError("invalid leap second")

	// ErrOutOfRange reports a day count or year outside years 0-9999.
	ErrOutOfRange = RangeError("out of supported timestamp range")

	// ErrMalformedTimestamp reports textual input that deviates from
	// the RFC3339-like grammar.
	ErrMalformedTimestamp = ParseError("malformed timestamp")
)
