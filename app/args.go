package app

import (
	"flag"
	"io"
	"slices"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/forge/internal/models"
)

// serialArgs holds the flags of a command invoked as "<cmd> <serial> [flags]".
// urfave/cli stops reading flags at the first positional argument, so the
// arguments after the serial are parsed again against the command's flags.
type serialArgs struct {
	ctx      *cli.Context
	trailing *flag.FlagSet
	serial   string
}

func parseSerialArgs(ctx *cli.Context) (*serialArgs, error) {
	if ctx.NArg() == 0 {
		return nil, errMissingArg.Fmt("serial number")
	}

	set := flag.NewFlagSet(ctx.Command.Name, flag.ContinueOnError)
	set.SetOutput(io.Discard)

	for _, f := range ctx.Command.Flags {
		if err := f.Apply(set); err != nil {
			return nil, err
		}
	}

	err := set.Parse(ctx.Args().Tail())
	if err != nil {
		return nil, errInvalidArgs.Wrap(err)
	}

	if set.NArg() > 0 {
		return nil, errUnexpectedArg.Fmt(set.Arg(0))
	}

	return &serialArgs{
		ctx:      ctx,
		trailing: set,
		serial:   ctx.Args().First(),
	}, nil
}

// trailingValue returns the value of a flag given after the serial under
// any of its names.
func (a *serialArgs) trailingValue(name string) (string, bool) {
	var names []string

	for _, f := range a.ctx.Command.Flags {
		if slices.Contains(f.Names(), name) {
			names = f.Names()
			break
		}
	}

	var (
		value string
		found bool
	)

	a.trailing.Visit(func(f *flag.Flag) {
		if slices.Contains(names, f.Name) {
			value, found = f.Value.String(), true
		}
	})

	return value, found
}

// String returns the flag value, or nil if the flag was not supplied.
func (a *serialArgs) String(name string) *string {
	if v, ok := a.trailingValue(name); ok {
		return models.String(v)
	}

	if a.ctx.IsSet(name) {
		return models.String(a.ctx.String(name))
	}

	return nil
}

func (a *serialArgs) Bool(name string) bool {
	if v, ok := a.trailingValue(name); ok {
		b, _ := strconv.ParseBool(v)
		return b
	}

	return a.ctx.Bool(name)
}
