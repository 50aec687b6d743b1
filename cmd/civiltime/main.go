// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The civiltime command parses timestamps and prints their breakdown.
// With no arguments, it starts a read-eval-print loop (REPL) when
// standard input is a terminal, otherwise it reads one timestamp per
// line from standard input.
package main // import "go.civiltime.net/cmd/civiltime"

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"go.civiltime.net/civiltime"
	"go.civiltime.net/repl"
)

// flags
var (
	execText  = flag.String("c", "", "parse and describe the single timestamp `text`")
	epochText = flag.String("epoch", "", "convert epoch `seconds` to a timestamp")
	noLeap    = flag.Bool("noleap", false, "reject leap seconds in the grammar")
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	log.SetPrefix("civiltime: ")
	log.SetFlags(0)
	flag.Parse()

	if *epochText != "" {
		secs, err := civiltime.ParseSeconds(*epochText)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		ts, err := fromEpochSeconds(secs)
		if err != nil {
			repl.PrintError(err)
			return 1
		}
		repl.Describe(os.Stdout, ts)
		return 0
	}

	parse := civiltime.FromString
	if *noLeap {
		parse = civiltime.FromNoLeapSecondsString
	}

	switch {
	case *execText != "":
		return describe(parse, *execText)
	case flag.NArg() > 0:
		for _, arg := range flag.Args() {
			if code := describe(parse, arg); code != 0 {
				return code
			}
		}
	case term.IsTerminal(int(os.Stdin.Fd())):
		fmt.Println("Welcome to civiltime (go.civiltime.net)")
		repl.REPL(*noLeap)
	default:
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if code := describe(parse, line); code != 0 {
				return code
			}
		}
		if err := scanner.Err(); err != nil {
			log.Print(err)
			return 1
		}
	}
	return 0
}

func describe(parse func(string) (civiltime.Timestamp, error), text string) int {
	ts, err := parse(text)
	if err != nil {
		repl.PrintError(fmt.Errorf("%s: %w", text, err))
		return 1
	}
	repl.Describe(os.Stdout, ts)
	return 0
}

// fromEpochSeconds calls the fatal constructor, converting its panic
// into an error for command-line input.
func fromEpochSeconds(secs civiltime.Seconds) (ts civiltime.Timestamp, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	return civiltime.FromEpochSeconds(secs), nil
}
