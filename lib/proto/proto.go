// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proto converts civiltime timestamps to and from the protobuf
// well-known Timestamp message.
//
// The well-known type counts whole seconds and nanoseconds from the
// Unix epoch on a timeline with no leap seconds and no offset
// metadata, so the conversion is lossy in three ways: a reading within
// a positive leap second is clamped to the last representable instant
// of its day, fractional digits beyond the ninth are truncated, and
// any attached zone offset is discarded.
package proto // import "go.civiltime.net/lib/proto"

import (
	"fmt"
	"strconv"
	"strings"

	"google.golang.org/protobuf/types/known/timestamppb"

	"go.civiltime.net/civiltime"
)

// epochToUnix is the span in seconds from the Unix epoch 1970-01-01 to
// the civiltime epoch 2000-01-01.
const epochToUnix = 946684800

// ToProto converts ts to the protobuf well-known form. See the package
// comment for what the conversion discards.
func ToProto(ts civiltime.Timestamp) *timestamppb.Timestamp {
	whole, frac := ts.EpochSeconds().Floor()

	var nanos int32
	if s := frac.String(); len(s) > 2 { // "0.digits"
		digits := s[2:]
		if len(digits) > 9 {
			digits = digits[:9]
		}
		n, _ := strconv.Atoi(digits)
		for i := len(digits); i < 9; i++ {
			n *= 10
		}
		nanos = int32(n)
	}
	return &timestamppb.Timestamp{Seconds: whole + epochToUnix, Nanos: nanos}
}

// FromProto converts a protobuf timestamp to a civiltime one carrying
// an explicit +00:00 offset. It fails with civiltime.ErrOutOfRange
// when the instant lies outside years 0-9999 and with an ordinary
// error when pb violates the well-known type's nanos invariant.
func FromProto(pb *timestamppb.Timestamp) (civiltime.Timestamp, error) {
	if pb.Nanos < 0 || pb.Nanos > 999999999 {
		return civiltime.Timestamp{}, fmt.Errorf("protobuf timestamp has %d nanos", pb.Nanos)
	}
	const (
		minUnix = int64(civiltime.MinEpochDays)*86400 + epochToUnix
		maxUnix = (int64(civiltime.MaxEpochDays)+1)*86400 - 1 + epochToUnix
	)
	if pb.Seconds < minUnix || pb.Seconds > maxUnix {
		return civiltime.Timestamp{}, civiltime.ErrOutOfRange
	}

	secs := civiltime.SecondsOf(pb.Seconds - epochToUnix)
	if digits := strings.TrimRight(fmt.Sprintf("%09d", pb.Nanos), "0"); digits != "" {
		frac, err := civiltime.ParseSeconds("0." + digits)
		if err != nil {
			return civiltime.Timestamp{}, err
		}
		secs = secs.Add(frac)
	}
	return civiltime.FromEpochSeconds(secs), nil
}
