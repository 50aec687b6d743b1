// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civiltime converts between four exact representations of a
// point in time: a UTC-relative Instant, a proleptic Gregorian
// calendar Date with a TimeOfDay in UTC or in an attached ZoneOffset,
// a decimal count of seconds since the epoch 2000-01-01T00:00:00Z, and
// an RFC3339-like textual form.
//
// Unlike the standard time package, civiltime models positive leap
// seconds: an eligible UTC day (the last day of a month, 1972 or
// later) may contain an 86401st second, written 23:59:60. All
// sub-second quantities are exact decimals (Seconds), never binary
// floating point, so precision survives every conversion and
// round-trip.
//
// A Timestamp carries its local offset as intrinsic metadata. Two
// equivalences are defined over timestamps: TemporallyEqual ignores
// the offset, FullyEqual does not. There is no wall-clock source and
// no time-zone database here; only fixed numeric offsets are modeled.
//
// Everything in this package is a pure function over immutable values
// and is safe for unsynchronized concurrent use.
package civiltime // import "go.civiltime.net/civiltime"
