// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package repl provides a read/eval/print loop for inspecting
// timestamps.
//
// It supports readline-style command editing,
// and interrupts through Control-C.
//
// Each input line is parsed as a timestamp and its canonical form,
// calendar breakdown, epoch seconds and leap-second flag are printed.
// The directive ":noleap" toggles the strict grammar in which a
// seconds field of 60 is a syntax error, and ":leap" restores the
// default.
package repl // import "go.civiltime.net/repl"

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"go.civiltime.net/civiltime"
)

// REPL executes a read, parse, print loop. noLeap selects the strict
// grammar as the starting mode.
func REPL(noLeap bool) {
	rl, err := readline.New(">>> ")
	if err != nil {
		PrintError(err)
		return
	}
	defer rl.Close()
	for {
		if err := rep(rl, &noLeap); err != nil {
			if err == readline.ErrInterrupt {
				fmt.Println(err)
				continue
			}
			break
		}
	}
	fmt.Println()
}

// rep reads, parses, and prints one item.
//
// It returns an error (possibly readline.ErrInterrupt)
// only if readline failed. Timestamp errors are printed.
func rep(rl *readline.Instance, noLeap *bool) error {
	line, err := rl.Readline()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return err
	}

	switch line = strings.TrimSpace(line); line {
	case "":
		return nil
	case ":noleap":
		*noLeap = true
		return nil
	case ":leap":
		*noLeap = false
		return nil
	}

	parse := civiltime.FromString
	if *noLeap {
		parse = civiltime.FromNoLeapSecondsString
	}
	ts, err := parse(line)
	if err != nil {
		PrintError(err)
		return nil
	}
	Describe(os.Stdout, ts)
	return nil
}

// Describe writes a multi-line breakdown of ts to w.
func Describe(w io.Writer, ts civiltime.Timestamp) {
	fmt.Fprintln(w, ts)

	date := ts.UTCDate()
	tod := ts.UTCTimeOfDay()
	fmt.Fprintf(w, "  utc          %04d-%02d-%02d %02d:%02d:%s\n",
		date.Year, date.Month, date.Day, tod.Hour, tod.Minute, pad2(tod.Second))

	if off, ok := ts.LocalOffset(); ok {
		tod := ts.LocalTimeOfDay()
		if date, err := ts.LocalDate(); err != nil {
			fmt.Fprintf(w, "  local        (date beyond calendar) %02d:%02d:%s\n",
				tod.Hour, tod.Minute, pad2(tod.Second))
		} else {
			fmt.Fprintf(w, "  local        %04d-%02d-%02d %02d:%02d:%s\n",
				date.Year, date.Month, date.Day, tod.Hour, tod.Minute, pad2(tod.Second))
		}
		sign := "+"
		if off.Sign < 0 {
			sign = "-"
		}
		fmt.Fprintf(w, "  offset       %s%02d:%02d\n", sign, off.Hour, off.Minute)
	}

	fmt.Fprintf(w, "  epoch days   %d\n", ts.EpochDays())
	fmt.Fprintf(w, "  epoch secs   %s\n", ts.EpochSeconds())
	if ts.InLeapSecond() {
		fmt.Fprintln(w, "  leap second")
	}
}

// pad2 renders a seconds value with a two-digit integer part, matching
// the clock fields around it.
func pad2(s civiltime.Seconds) string {
	text := s.String()
	if len(text) == 1 || text[1] == '.' {
		return "0" + text
	}
	return text
}

// PrintError prints the error to stderr.
func PrintError(err error) {
	fmt.Fprintln(os.Stderr, err)
}
