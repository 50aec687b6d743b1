// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

import (
	"errors"
	"testing"
)

func TestParseFormatRoundTrip(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string // "" means the input prints back unchanged
	}{
		{"2000-01-01T00:00:00Z", ""},
		{"2000-01-01T00:00:00+00:00", ""},
		{"2023-06-30T23:59:60.5Z", ""},
		{"2023-01-02T03:04:05.500-08:00", ""},
		{"1969-07-20T20:17:40Z", ""},
		{"0000-01-01T00:00:00Z", ""},
		{"9999-12-31T23:59:59.999999999Z", ""},
		{"2023-12-31T18:29:60.25-05:30", ""},
		{"2023-01-02t03:04:05z", "2023-01-02T03:04:05Z"},
		{"+2023-01-02T03:04:05Z", "2023-01-02T03:04:05Z"},
		{"23-01-02T03:04:05Z", "0023-01-02T03:04:05Z"},
		{"002023-01-02T03:04:05Z", "2023-01-02T03:04:05Z"},
	} {
		ts := mustParse(t, test.in)
		want := test.want
		if want == "" {
			want = test.in
		}
		if got := ts.String(); got != want {
			t.Errorf("FromString(%q).String() = %q, want %q", test.in, got, want)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"2023",
		"2023-01-02",
		"2023-01-02T03:04:05",       // no zone designator
		"2023-01-02 03:04:05Z",      // space separator
		"2023-1-02T03:04:05Z",       // month not two digits
		"2023-01-2T03:04:05Z",       // day not two digits
		"2023-01-02T3:04:05Z",       // hour not two digits
		"2023-01-02T03:04:5Z",       // second not two digits
		"2023-01-02T03:04:05.Z",     // empty fraction
		"2023-01-02T03:04:05,5Z",    // comma fraction
		"2023-01-02T03:04:05ZZ",     // trailing garbage
		"2023-01-02T03:04:05+08",    // short offset
		"2023-01-02T03:04:05+0800",  // missing offset colon
		"2023-01-02T03:04:05-00:00", // signed zero offset
		"2023-01-02T03:04:05+24:00", // offset hour out of range
		"2023-01-02T03:04:05+05:60", // offset minute out of range
	} {
		if _, err := FromString(text); !errors.Is(err, ErrMalformedTimestamp) {
			t.Errorf("FromString(%q): err = %v, want %v", text, err, ErrMalformedTimestamp)
		}
	}
}

func TestParseSemanticErrors(t *testing.T) {
	for _, test := range []struct {
		text string
		want error
	}{
		{"-2023-01-02T03:04:05Z", ErrOutOfRange},
		{"10000-01-01T00:00:00Z", ErrOutOfRange},
		{"99999999999999999999-01-01T00:00:00Z", ErrOutOfRange},
		{"2023-13-01T00:00:00Z", ErrInvalidDate},
		{"2023-02-29T00:00:00Z", ErrInvalidDate},
		{"2023-00-10T00:00:00Z", ErrInvalidDate},
		{"2023-01-02T24:00:00Z", ErrInvalidTimeOfDay},
		{"2023-01-02T03:60:05Z", ErrInvalidTimeOfDay},
		{"2023-01-02T03:04:61Z", ErrInvalidTimeOfDay},
		{"2023-01-02T03:04:60Z", ErrInvalidLeapSecond},
		{"2023-06-30T23:59:60+00:30", ErrInvalidLeapSecond},
	} {
		if _, err := FromString(test.text); !errors.Is(err, test.want) {
			t.Errorf("FromString(%q): err = %v, want %v", test.text, err, test.want)
		}
	}
}

func TestParseNoLeapSeconds(t *testing.T) {
	ts, err := FromNoLeapSecondsString("2023-06-30T23:59:59.999Z")
	if err != nil {
		t.Fatal(err)
	}
	if ts.InLeapSecond() {
		t.Fatal("unexpected leap-second reading")
	}
	for _, text := range []string{
		"2023-06-30T23:59:60Z",
		"2023-06-30T23:59:60.999Z",
		"2023-01-02T03:04:61Z", // out of range either way, but here a grammar error
	} {
		if _, err := FromNoLeapSecondsString(text); !errors.Is(err, ErrMalformedTimestamp) {
			t.Errorf("FromNoLeapSecondsString(%q): err = %v, want %v", text, err, ErrMalformedTimestamp)
		}
	}
}

func TestZDistinctFromExplicitZero(t *testing.T) {
	z := mustParse(t, "2023-01-02T03:04:05Z")
	explicit := mustParse(t, "2023-01-02T03:04:05+00:00")
	if !TemporallyEqual(z, explicit) {
		t.Fatal("Z and +00:00 must denote the same instant")
	}
	if FullyEqual(z, explicit) {
		t.Fatal("Z and +00:00 must remain distinguishable")
	}
	if _, ok := z.LocalOffset(); ok {
		t.Error("Z reading carries an offset")
	}
	if off, ok := explicit.LocalOffset(); !ok || off != ZoneOffsetZero {
		t.Errorf("+00:00 reading: offset = %+v, %v", off, ok)
	}
}

func TestStringPrecision(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"2023-01-02T03:04:05.500Z", "2023-01-02T03:04:05.500Z"},
		{"2023-01-02T03:04:05.0Z", "2023-01-02T03:04:05.0Z"},
		{"2023-01-02T03:04:09.25Z", "2023-01-02T03:04:09.25Z"},
	} {
		if got := mustParse(t, test.in).String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestStringLocalRollover(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		// The wall clock crosses a day, month, or year boundary.
		{"2023-01-01T01:00:00+05:30", ""},
		{"2022-12-31T20:00:00Z", "2022-12-31T20:00:00Z"},
		{"2024-02-29T23:30:00+01:00", ""},
		{"2024-01-01T04:30:00+05:00", ""},
	} {
		want := test.want
		if want == "" {
			want = test.in
		}
		if got := mustParse(t, test.in).String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestTextMarshaling(t *testing.T) {
	in := mustParse(t, "2016-12-31T20:59:60.5-03:00")
	b, err := in.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var out Timestamp
	if err := out.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if !FullyEqual(in, out) {
		t.Fatalf("text round trip lost information: %q", b)
	}
	if err := out.UnmarshalText([]byte("bogus")); !errors.Is(err, ErrMalformedTimestamp) {
		t.Fatalf("UnmarshalText(bogus): err = %v", err)
	}
}
