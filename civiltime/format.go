// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package civiltime

import (
	"strconv"
	"strings"
)

// String renders ts in the profile accepted by FromString, using the
// local date, time of day and offset, so text round-trips with the
// fields it was constructed from rather than their UTC normalization.
// An unspecified offset renders as "Z", an explicit zero one as
// "+00:00". The seconds fraction is printed at its stored precision.
func (ts Timestamp) String() string {
	days, tod := ts.localParts()
	d := civilFromDays(days)

	var b strings.Builder
	writeYear(&b, d.Year)
	b.WriteByte('-')
	writePad2(&b, d.Month)
	b.WriteByte('-')
	writePad2(&b, d.Day)
	b.WriteByte('T')
	writePad2(&b, tod.Hour)
	b.WriteByte(':')
	writePad2(&b, tod.Minute)
	b.WriteByte(':')
	sec := tod.Second.String()
	if len(sec) == 1 || sec[1] == '.' {
		b.WriteByte('0')
	}
	b.WriteString(sec)

	if !ts.hasOffset {
		b.WriteByte('Z')
		return b.String()
	}
	off, _ := ts.LocalOffset()
	if off.Sign < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	writePad2(&b, off.Hour)
	b.WriteByte(':')
	writePad2(&b, off.Minute)
	return b.String()
}

func writePad2(b *strings.Builder, v int) {
	b.WriteByte('0' + byte(v/10))
	b.WriteByte('0' + byte(v%10))
}

// writeYear pads to four digits; years beyond 9999, reachable only
// through the local view of an offset timestamp at the calendar edge,
// grow in width as the grammar allows.
func writeYear(b *strings.Builder, year int) {
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	if year > 9999 {
		b.WriteString(strconv.Itoa(year))
		return
	}
	b.WriteByte('0' + byte(year/1000))
	b.WriteByte('0' + byte(year/100%10))
	b.WriteByte('0' + byte(year/10%10))
	b.WriteByte('0' + byte(year%10))
}
