// Copyright 2025 The Civiltime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starlarktimestamp exposes civiltime timestamps to Starlark
// programs as an immutable value type and a module of constructors.
package starlarktimestamp // import "go.civiltime.net/starlarktimestamp"

import (
	"fmt"
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"go.civiltime.net/civiltime"
)

// ModuleName defines the expected name for this Module when used in the
// starlark runtime.
const ModuleName = "timestamp"

// Module timestamp is a Starlark module of timestamp constructors.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"parse":              starlark.NewBuiltin("parse", parse),
		"parse_no_leap":      starlark.NewBuiltin("parse_no_leap", parseNoLeap),
		"from_epoch_seconds": starlark.NewBuiltin("from_epoch_seconds", fromEpochSeconds),
		"from_local":         starlark.NewBuiltin("from_local", fromLocal),

		"epoch": Timestamp(civiltime.Epoch),
	},
}

// LoadModule loads the timestamp module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

func parse(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x string
	if err := starlark.UnpackArgs("parse", args, kwargs, "x", &x); err != nil {
		return nil, err
	}
	ts, err := civiltime.FromString(x)
	if err != nil {
		return nil, err
	}
	return Timestamp(ts), nil
}

func parseNoLeap(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x string
	if err := starlark.UnpackArgs("parse_no_leap", args, kwargs, "x", &x); err != nil {
		return nil, err
	}
	ts, err := civiltime.FromNoLeapSecondsString(x)
	if err != nil {
		return nil, err
	}
	return Timestamp(ts), nil
}

func fromEpochSeconds(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x secondsArg
	if err := starlark.UnpackPositionalArgs("from_epoch_seconds", args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	ts, err := protect(func() civiltime.Timestamp {
		return civiltime.FromEpochSeconds(x.s)
	})
	if err != nil {
		return nil, err
	}
	return Timestamp(ts), nil
}

func fromLocal(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		year, month, day int
		hour, minute     int
		second           = secondsArg{s: civiltime.SecondsOf(0)}
		offsetMinutes    int
	)
	if err := starlark.UnpackArgs("from_local", args, kwargs,
		"year", &year, "month", &month, "day", &day,
		"hour?", &hour, "minute?", &minute, "second?", &second,
		"offset_minutes?", &offsetMinutes); err != nil {
		return nil, err
	}
	ts, err := civiltime.FromLocalDateTimeOffset(
		civiltime.Date{Year: year, Month: month, Day: day},
		civiltime.TimeOfDay{Hour: hour, Minute: minute, Second: second.s},
		offsetFromMinutes(offsetMinutes))
	if err != nil {
		return nil, err
	}
	return Timestamp(ts), nil
}

// protect converts the panic of a fatal civiltime constructor into an
// ordinary error at the interpreter boundary.
func protect(f func() civiltime.Timestamp) (ts civiltime.Timestamp, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	return f(), nil
}

func offsetFromMinutes(min int) civiltime.ZoneOffset {
	if min < 0 {
		return civiltime.ZoneOffset{Sign: -1, Hour: -min / 60, Minute: -min % 60}
	}
	return civiltime.ZoneOffset{Sign: 1, Hour: min / 60, Minute: min % 60}
}

// secondsArg unpacks a Starlark int or decimal string into an exact
// seconds value.
type secondsArg struct {
	s civiltime.Seconds
}

// assert at compile time that secondsArg implements Unpacker.
var _ starlark.Unpacker = (*secondsArg)(nil)

// Unpack is a custom argument unpacker
func (a *secondsArg) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case starlark.Int:
		i, ok := x.Int64()
		if !ok {
			return fmt.Errorf("int value out of range (want signed 64-bit value)")
		}
		a.s = civiltime.SecondsOf(i)
		return nil
	case starlark.String:
		s, err := civiltime.ParseSeconds(string(x))
		if err != nil {
			return err
		}
		a.s = s
		return nil
	}
	return fmt.Errorf("cannot convert %s to seconds", v.Type())
}

// Timestamp is a Starlark representation of a civiltime timestamp.
type Timestamp civiltime.Timestamp

// String implements the Stringer interface.
func (t Timestamp) String() string { return civiltime.Timestamp(t).String() }

// Type returns "timestamp".
func (t Timestamp) Type() string { return "timestamp" }

// Freeze renders Timestamp immutable. required by starlark.Value
// interface. because Timestamp is already immutable this is a no-op.
func (t Timestamp) Freeze() {}

// Hash returns a function of x such that fully_equal(x, y) =>
// Hash(x) == Hash(y). required by starlark.Value interface.
func (t Timestamp) Hash() (uint32, error) {
	ts := civiltime.Timestamp(t)
	whole, _ := ts.UTCTimeOfDaySeconds().Floor()
	h := uint32(ts.EpochDays())*31 ^ uint32(whole)
	if min, ok := ts.LocalOffsetMinutes(); ok {
		h = h*31 ^ uint32(min+1)
	}
	return h, nil
}

// Truth returns the truth value of an object required by starlark.Value
// interface. every timestamp denotes an instant, so all are true.
func (t Timestamp) Truth() starlark.Bool { return starlark.True }

// CompareSameType implements == and != on Timestamp values under the
// full equivalence, offset metadata included. Ordering operators are
// not defined; compare epoch_seconds instead. required by
// starlark.Comparable interface.
func (t Timestamp) CompareSameType(op syntax.Token, yV starlark.Value, depth int) (bool, error) {
	eq := civiltime.FullyEqual(civiltime.Timestamp(t), civiltime.Timestamp(yV.(Timestamp)))
	switch op {
	case syntax.EQL:
		return eq, nil
	case syntax.NEQ:
		return !eq, nil
	}
	return false, fmt.Errorf("%s %s %s not implemented", t.Type(), op, yV.Type())
}

// Attr gets a value for a string attribute, implementing dot expression
// support. required by starlark.HasAttrs interface.
func (t Timestamp) Attr(name string) (starlark.Value, error) {
	ts := civiltime.Timestamp(t)
	switch name {
	case "epoch_days":
		return starlark.MakeInt(ts.EpochDays()), nil
	case "utc_time_of_day_seconds":
		return starlark.String(ts.UTCTimeOfDaySeconds().String()), nil
	case "local_offset_minutes":
		min, ok := ts.LocalOffsetMinutes()
		if !ok {
			return starlark.None, nil
		}
		return starlark.MakeInt(min), nil
	case "epoch_seconds":
		return starlark.String(ts.EpochSeconds().String()), nil
	case "in_leap_second":
		return starlark.Bool(ts.InLeapSecond()), nil
	case "utc_date":
		return dateStruct(ts.UTCDate()), nil
	case "local_date":
		date, err := ts.LocalDate()
		if err != nil {
			return nil, err
		}
		return dateStruct(date), nil
	case "utc_time_of_day":
		return timeOfDayStruct(ts.UTCTimeOfDay()), nil
	case "local_time_of_day":
		return timeOfDayStruct(ts.LocalTimeOfDay()), nil
	case "local_offset":
		off, ok := ts.LocalOffset()
		if !ok {
			return starlark.None, nil
		}
		return starlarkstruct.FromStringDict(starlark.String("offset"), starlark.StringDict{
			"sign":   starlark.MakeInt(off.Sign),
			"hour":   starlark.MakeInt(off.Hour),
			"minute": starlark.MakeInt(off.Minute),
		}), nil
	}
	return builtinAttr(t, name, timestampMethods)
}

// AttrNames lists available dot expression strings. required by
// starlark.HasAttrs interface.
func (t Timestamp) AttrNames() []string {
	return append(builtinAttrNames(timestampMethods),
		"epoch_days",
		"utc_time_of_day_seconds",
		"local_offset_minutes",
		"epoch_seconds",
		"in_leap_second",
		"utc_date",
		"local_date",
		"utc_time_of_day",
		"local_time_of_day",
		"local_offset",
	)
}

func dateStruct(d civiltime.Date) *starlarkstruct.Struct {
	return starlarkstruct.FromStringDict(starlark.String("date"), starlark.StringDict{
		"year":  starlark.MakeInt(d.Year),
		"month": starlark.MakeInt(d.Month),
		"day":   starlark.MakeInt(d.Day),
	})
}

func timeOfDayStruct(tod civiltime.TimeOfDay) *starlarkstruct.Struct {
	return starlarkstruct.FromStringDict(starlark.String("time_of_day"), starlark.StringDict{
		"hour":   starlark.MakeInt(tod.Hour),
		"minute": starlark.MakeInt(tod.Minute),
		"second": starlark.String(tod.Second.String()),
	})
}

var timestampMethods = map[string]builtinMethod{
	"temporally_equal":     temporallyEqual,
	"fully_equal":          fullyEqual,
	"with_local_offset":    withLocalOffset,
	"without_leap_seconds": withoutLeapSeconds,
	"subtract":             subtract,
}

func unpackTimestamp(fnname string, args starlark.Tuple, kwargs []starlark.Tuple) (civiltime.Timestamp, error) {
	var other Timestamp
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 1, &other); err != nil {
		return civiltime.Timestamp{}, err
	}
	return civiltime.Timestamp(other), nil
}

// assert at compile time that Timestamp implements Unpacker.
var _ starlark.Unpacker = (*Timestamp)(nil)

// Unpack is a custom argument unpacker
func (t *Timestamp) Unpack(v starlark.Value) error {
	x, ok := v.(Timestamp)
	if !ok {
		return fmt.Errorf("cannot convert %s to %s", v.Type(), t.Type())
	}
	*t = x
	return nil
}

func temporallyEqual(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	other, err := unpackTimestamp(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	recv := civiltime.Timestamp(recV.(Timestamp))
	return starlark.Bool(civiltime.TemporallyEqual(recv, other)), nil
}

func fullyEqual(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	other, err := unpackTimestamp(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	recv := civiltime.Timestamp(recV.(Timestamp))
	return starlark.Bool(civiltime.FullyEqual(recv, other)), nil
}

func withLocalOffset(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var min int
	if err := starlark.UnpackArgs(fnname, args, kwargs, "offset_minutes", &min); err != nil {
		return nil, err
	}
	recv := civiltime.Timestamp(recV.(Timestamp))
	ts, err := recv.WithLocalOffset(offsetFromMinutes(min))
	if err != nil {
		return nil, err
	}
	return Timestamp(ts), nil
}

func withoutLeapSeconds(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fnname, args, kwargs, 0); err != nil {
		return nil, err
	}
	recv := civiltime.Timestamp(recV.(Timestamp))
	return Timestamp(recv.WithoutLeapSeconds()), nil
}

func subtract(fnname string, recV starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	other, err := unpackTimestamp(fnname, args, kwargs)
	if err != nil {
		return nil, err
	}
	recv := civiltime.Timestamp(recV.(Timestamp))
	return starlark.String(civiltime.Subtract(recv, other).String()), nil
}

type builtinMethod func(fnname string, recv starlark.Value, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

func builtinAttr(recv starlark.Value, name string, methods map[string]builtinMethod) (starlark.Value, error) {
	method := methods[name]
	if method == nil {
		return nil, nil // no such method
	}

	// Allocate a closure over 'method'.
	impl := func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		return method(b.Name(), b.Receiver(), args, kwargs)
	}
	return starlark.NewBuiltin(name, impl).BindReceiver(recv), nil
}

func builtinAttrNames(methods map[string]builtinMethod) []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
