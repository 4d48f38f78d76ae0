package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tavernkeep/internal/clock"
)

type TimeCommandKind int

const (
	TimeNow TimeCommandKind = iota
	TimeAdd
	TimeSub
)

type TimeCommand struct {
	Kind     TimeCommandKind
	Interval clock.Interval
}

func (TimeCommand) isCommand() {}

func (c TimeCommand) String() string {
	switch c.Kind {
	case TimeAdd:
		return "+" + c.Interval.String()
	case TimeSub:
		return "-" + c.Interval.String()
	default:
		return "time"
	}
}

func (c TimeCommand) Run(ctx context.Context, _ string, meta *AppMeta) (string, error) {
	current := meta.Repository.Time()

	var (
		next clock.Time
		err  error
	)
	switch c.Kind {
	case TimeNow:
		return fmt.Sprintf("It is currently %s.", current.Long()), nil
	case TimeAdd:
		next, err = current.Add(c.Interval)
	case TimeSub:
		next, err = current.Sub(c.Interval)
	}
	if errors.Is(err, clock.ErrOutOfRange) {
		return "", fmt.Errorf("Unable to go back %s from %s.", c.Interval.Long(), current.Long())
	}
	if err != nil {
		return "", err
	}

	meta.Repository.SetTime(ctx, next)

	undo := TimeCommand{Kind: TimeSub, Interval: c.Interval}
	if c.Kind == TimeSub {
		undo.Kind = TimeAdd
	}
	meta.Aliases.Insert(LiteralAlias("undo", "undo "+c.String(), undo))

	return fmt.Sprintf("It is now %s. Use ~undo~ to reverse.", next.Long()), nil
}

func parseTimeCommand(input string, _ *AppMeta) (Command, []Command) {
	switch input {
	case "time", "now", "date":
		return TimeCommand{Kind: TimeNow}, nil
	}

	var kind TimeCommandKind
	switch {
	case strings.HasPrefix(input, "+"):
		kind = TimeAdd
	case strings.HasPrefix(input, "-"):
		kind = TimeSub
	default:
		return nil, nil
	}

	interval, err := clock.ParseInterval(input[1:])
	if err != nil || interval.IsZero() {
		return nil, nil
	}
	return TimeCommand{Kind: kind, Interval: interval}, nil
}

func autocompleteTimeCommand(input string, _ *AppMeta) []Suggestion {
	var out []Suggestion
	for _, s := range []Suggestion{
		{Text: "time", Summary: "get the current time"},
		{Text: "now", Summary: "get the current time"},
		{Text: "date", Summary: "get the current time"},
	} {
		if hasWordPrefix(s.Text, input) {
			out = append(out, s)
		}
	}

	if cmd, _ := parseTimeCommand(input, nil); cmd != nil {
		if tc := cmd.(TimeCommand); tc.Kind != TimeNow {
			verb := "advance"
			if tc.Kind == TimeSub {
				verb = "rewind"
			}
			out = append(out, Suggestion{Text: input, Summary: fmt.Sprintf("%s time by %s", verb, tc.Interval.Long())})
		}
	}
	return out
}
