// Package cliopts parses the top-level flags the CLI surface accepts
// ahead of the object token (device, pin, monitor): -V/--Version,
// -j/--json, -p/--pretty. spec.md treats flag handling as external; a
// runnable binary needs a concrete parser, built the way the teacher's
// cmd/testctl hand-rolls flag.FlagSet definitions rather than pulling in
// a CLI framework.
package cliopts

import (
	"flag"
	"fmt"
	"io"
)

// Options holds the parsed top-level flags plus the remaining argument
// vector (the object token and everything after it).
type Options struct {
	Version bool
	JSON    bool
	Pretty  bool
	Args    []string
}

// Parse parses args (normally os.Args[1:]) against a fresh FlagSet so
// repeated calls in tests never collide with flag.CommandLine. usage is
// written to out when parsing fails or -h/--help is given.
func Parse(args []string, out io.Writer) (Options, error) {
	fs := flag.NewFlagSet("dpll", flag.ContinueOnError)
	fs.SetOutput(out)

	var opts Options
	fs.BoolVar(&opts.Version, "V", false, "print version and exit")
	fs.BoolVar(&opts.Version, "Version", false, "print version and exit")
	fs.BoolVar(&opts.JSON, "j", false, "render output as JSON")
	fs.BoolVar(&opts.JSON, "json", false, "render output as JSON")
	fs.BoolVar(&opts.Pretty, "p", false, "pretty-print JSON output")
	fs.BoolVar(&opts.Pretty, "pretty", false, "pretty-print JSON output")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("parsing flags: %w", err)
	}
	opts.Args = fs.Args()
	return opts, nil
}
