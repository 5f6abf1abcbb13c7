// Command dephyr solves for functional dependencies and breaks relations up into BCNF or
// 3NF form.
//
//	dephyr [options] DEPS ACTION [ARGS]
//
// DEPS is a .dep file with a line naming the attrs followed by lines like A->BC, a yaml file,
// or the same text separated by commas or semicolons.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dball/dephyr/pkg/dephyr"
)

const usage = `Syntax: %s [options] DEPS ACTION [ARGS]

Actions:
  closure VARS          find the closure of the variables
  candidates            find the candidate keys of the relation
  functional_deps       find all functional dependencies of the relation
  violators BCNF|3NF    find the rules that violate the form
  basis                 find the minimal basis of the relation
  project ELEMS [-f]    project onto a smaller relation; -f retains the full dependencies
  decompose BCNF|3NF    decompose the relation into the form

Options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var (
		verbose      bool
		outputFormat string
	)
	flags := flag.NewFlagSet("dephyr", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "verbose", false, "logs each step to stderr")
	flags.StringVar(&outputFormat, "format", dephyr.FormatText, "output format, text or yaml")
	flags.Usage = func() {
		fmt.Fprintf(stderr, usage, "dephyr")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() < 2 {
		flags.Usage()
		return 1
	}
	req, err := parseRequest(flags.Arg(0), flags.Args()[1:], stderr)
	if err != nil {
		fmt.Fprintf(stderr, "invalid request: %v\n", err)
		flags.Usage()
		return 1
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	solver := dephyr.NewSolver(dephyr.Config{
		Format: outputFormat,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
	})
	if err := solver.Write(stdout, solver.Solve(req)); err != nil {
		fmt.Fprintf(stderr, "could not solve: %v\n", err)
		return 1
	}
	return 0
}

func parseRequest(deps string, args []string, stderr io.Writer) (req dephyr.Request, err error) {
	req.Deps = deps
	req.Action, err = dephyr.ParseAction(args[0])
	if err != nil {
		return
	}
	actionFlags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	actionFlags.SetOutput(stderr)
	if req.Action == dephyr.Project {
		actionFlags.BoolVar(&req.Full, "f", false, "retain full functional dependencies (don't compute minimal basis)")
		actionFlags.BoolVar(&req.Full, "full", false, "retain full functional dependencies (don't compute minimal basis)")
	}
	var rest []string
	for remaining := args[1:]; ; {
		err = actionFlags.Parse(remaining)
		if err != nil {
			return
		}
		if actionFlags.NArg() == 0 {
			break
		}
		// flag stops at the first plain argument; collect it and read on
		rest = append(rest, actionFlags.Arg(0))
		remaining = actionFlags.Args()[1:]
	}
	switch req.Action {
	case dephyr.Closure, dephyr.Project:
		if len(rest) != 1 {
			err = fmt.Errorf("%s takes one argument, the variables", req.Action)
			return
		}
		req.Vars = rest[0]
	case dephyr.Violators, dephyr.Decompose:
		if len(rest) != 1 {
			err = fmt.Errorf("%s takes one argument, BCNF or 3NF", req.Action)
			return
		}
		req.Form, err = dephyr.ParseForm(rest[0])
	default:
		if len(rest) != 0 {
			err = fmt.Errorf("%s takes no arguments", req.Action)
		}
	}
	return
}
